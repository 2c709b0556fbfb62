package entity

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil", nil, false},
		{"null", Null{}, false},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"zero", Number(0), false},
		{"nan", Number(math.NaN()), false},
		{"negative", Number(-1), true},
		{"empty text", Text(""), false},
		{"text", Text("0"), true},
		{"empty sequence", Sequence{}, true},
		{"record", NewRecord(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truthy(tt.v); got != tt.want {
				t.Errorf("Truthy(%#v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "bool", Bool(true).Kind().String())
	assert.Equal(t, "record", NewRecord().Kind().String())
	assert.Equal(t, "sequence", Sequence{}.Kind().String())
}

func TestRecord_KeepsInsertionOrder(t *testing.T) {
	rec := NewRecord()
	rec.Set("zeta", Number(1))
	rec.Set("alpha", Number(2))
	rec.Set("zeta", Number(3))

	assert.Equal(t, []string{"zeta", "alpha"}, rec.Keys())
	v, ok := rec.Get("zeta")
	require.True(t, ok)
	assert.Equal(t, Number(3), v)

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"zeta":3,"alpha":2}`, string(data))
	assert.Equal(t, `{"zeta":3,"alpha":2}`, string(data))
}

func TestRecord_Enabled(t *testing.T) {
	rec := NewRecord()
	assert.False(t, rec.Enabled())

	rec.Set(EnabledField, Bool(true))
	assert.True(t, rec.Enabled())

	rec.Set(EnabledField, Number(0))
	assert.False(t, rec.Enabled())
}

func TestClone_IsDeep(t *testing.T) {
	inner := NewRecord()
	inner.Set("name", Text("a"))
	orig := Sequence{inner, Text("x")}

	cp := Clone(orig).(Sequence)
	cp[0].(*Record).Set("name", Text("b"))
	cp[1] = Text("y")

	name, _ := inner.Get("name")
	assert.Equal(t, Text("a"), name)
	assert.Equal(t, Text("x"), orig[1])
}

func TestEqual(t *testing.T) {
	a := NewRecord()
	a.Set("x", Number(1))
	a.Set("y", Sequence{Text("s")})
	b := NewRecord()
	b.Set("y", Sequence{Text("s")})
	b.Set("x", Number(1))

	assert.True(t, Equal(a, b), "field order is ignored")
	assert.True(t, Equal(Null{}, Null{}))
	assert.False(t, Equal(Number(1), Text("1")))
	assert.False(t, Equal(Sequence{Number(1)}, Sequence{Number(1), Number(2)}))

	b.Set("z", Bool(false))
	assert.False(t, Equal(a, b))
}

func TestSequence_Contains(t *testing.T) {
	seq := Sequence{Text("RANDOM"), Number(4)}

	assert.True(t, seq.Contains(Text("RANDOM")))
	assert.True(t, seq.Contains(Number(4)))
	assert.False(t, seq.Contains(Text("4")))
}

func TestFromAny(t *testing.T) {
	v, err := FromAny(map[string]any{
		"b":    []any{true, nil, 2.5},
		"a":    "text",
		"size": int64(3),
		"num":  json.Number("7"),
	})
	require.NoError(t, err)

	rec, ok := v.(*Record)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "num", "size"}, rec.Keys())

	seq, _ := rec.Get("b")
	assert.Equal(t, Sequence{Bool(true), Null{}, Number(2.5)}, seq)
	n, _ := rec.Get("num")
	assert.Equal(t, Number(7), n)
}

func TestFromAny_Unsupported(t *testing.T) {
	_, err := FromAny([]any{struct{}{}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 0")
}

func TestNull_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Sequence{Null{}, Bool(false)})

	require.NoError(t, err)
	assert.Equal(t, `[null,false]`, string(data))
}
