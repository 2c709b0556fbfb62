// Package entity defines the configuration model: values, categories, lookup
// tables and the relationship index.
package entity

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindText
	KindSequence
	KindRecord
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindRecord:
		return "record"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a single setting value. The set of implementations is closed:
// Null, Bool, Number, Text, Sequence and *Record.
type Value interface {
	Kind() Kind
	sealed()
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a boolean setting.
type Bool bool

// Number is a numeric setting. JSON does not distinguish integers.
type Number float64

// Text is a string setting.
type Text string

// Sequence is an ordered list of values (primitives or records).
type Sequence []Value

// Record is a nested object with ordered fields.
type Record struct {
	fields *orderedmap.OrderedMap[string, Value]
}

func (Null) Kind() Kind     { return KindNull }
func (Bool) Kind() Kind     { return KindBool }
func (Number) Kind() Kind   { return KindNumber }
func (Text) Kind() Kind     { return KindText }
func (Sequence) Kind() Kind { return KindSequence }
func (*Record) Kind() Kind  { return KindRecord }

func (Null) sealed()     {}
func (Bool) sealed()     {}
func (Number) sealed()   {}
func (Text) sealed()     {}
func (Sequence) sealed() {}
func (*Record) sealed()  {}

// MarshalJSON encodes the null literal.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{fields: orderedmap.New[string, Value]()}
}

// Get returns the field value and whether the field exists.
func (r *Record) Get(key string) (Value, bool) {
	if r == nil || r.fields == nil {
		return nil, false
	}
	return r.fields.Get(key)
}

// Has reports whether the record has the field.
func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Set stores a field, keeping the position of an existing field.
func (r *Record) Set(key string, v Value) {
	if r.fields == nil {
		r.fields = orderedmap.New[string, Value]()
	}
	r.fields.Set(key, v)
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil || r.fields == nil {
		return 0
	}
	return r.fields.Len()
}

// Keys returns field names in insertion order.
func (r *Record) Keys() []string {
	if r == nil || r.fields == nil {
		return nil
	}
	keys := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Enabled reports whether the record's "enabled" field is truthy.
// A record without the field is disabled.
func (r *Record) Enabled() bool {
	v, ok := r.Get(EnabledField)
	return ok && Truthy(v)
}

// MarshalJSON encodes fields in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil || r.fields == nil {
		return []byte("{}"), nil
	}
	return r.fields.MarshalJSON()
}

// EnabledField is the record field holding the record's own toggle.
const EnabledField = "enabled"

// Truthy follows the loose truthiness the settings format relies on:
// false, 0, NaN, "", null and a missing value are falsy, everything else is truthy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case nil, Null:
		return false
	case Bool:
		return bool(val)
	case Number:
		f := float64(val)
		return f != 0 && !math.IsNaN(f)
	case Text:
		return val != ""
	case Sequence, *Record:
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of v.
func Clone(v Value) Value {
	switch val := v.(type) {
	case Sequence:
		if val == nil {
			return Sequence(nil)
		}
		out := make(Sequence, len(val))
		for i, item := range val {
			out[i] = Clone(item)
		}
		return out
	case *Record:
		out := NewRecord()
		if val == nil || val.fields == nil {
			return out
		}
		for pair := val.fields.Oldest(); pair != nil; pair = pair.Next() {
			out.fields.Set(pair.Key, Clone(pair.Value))
		}
		return out
	default:
		return v
	}
}

// Equal reports deep equality. Record field order is ignored.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case Text:
		bv, ok := b.(Text)
		return ok && av == bv
	case Sequence:
		bv, ok := b.(Sequence)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Record:
		bv, ok := b.(*Record)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, key := range av.Keys() {
			x, _ := av.Get(key)
			y, found := bv.Get(key)
			if !found || !Equal(x, y) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Contains reports whether seq holds an element equal to v.
func (s Sequence) Contains(v Value) bool {
	for _, item := range s {
		if Equal(item, v) {
			return true
		}
	}
	return false
}

// FromAny converts decoded Go values (as produced by encoding/json, TOML or
// viper) into a Value. Map keys are sorted since Go maps carry no order.
func FromAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return Clone(v), nil
	case bool:
		return Bool(v), nil
	case string:
		return Text(v), nil
	case float64:
		return Number(v), nil
	case float32:
		return Number(v), nil
	case int:
		return Number(v), nil
	case int64:
		return Number(v), nil
	case int32:
		return Number(v), nil
	case uint64:
		return Number(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", v.String(), err)
		}
		return Number(f), nil
	case []any:
		seq := make(Sequence, 0, len(v))
		for i, item := range v {
			conv, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			seq = append(seq, conv)
		}
		return seq, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		rec := NewRecord()
		for _, k := range keys {
			conv, err := FromAny(v[k])
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			rec.Set(k, conv)
		}
		return rec, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", raw)
	}
}
