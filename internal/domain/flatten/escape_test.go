package flatten

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/clonecfg/internal/domain/entity"
)

func TestEscapeUnicode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"safe set untouched", "Ab9 _.,/:?*+$()[]{}-", "Ab9 _.,/:?*+$()[]{}-"},
		{"whitespace kept", "a\tb\nc", "a\tb\nc"},
		{"unicode spaces kept", "a\u00a0b\u2003c\u3000d\ufeff", "a\u00a0b\u2003c\u3000d\ufeff"},
		{"next line escaped", "a\u0085b", `a\u0085b`},
		{"zero width space escaped", "a\u200bb", `a\u200bb`},
		{"latin accent", "café", `caf\u00e9`},
		{"punctuation outside set", `a=b&c"d`, `a\u003db\u0026c\u0022d`},
		{"backslash", `a\b`, `a\u005cb`},
		{"astral rune uses surrogate pair", "x😀", `x\ud83d\ude00`},
		{"cjk", "設定", `\u8a2d\u5b9a`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeUnicode(tt.in))
		})
	}
}

func TestEscapeUnicode_NoUnsafeRuneSurvives(t *testing.T) {
	in := "ü€ß<>'\"|~`^%#@!;=&ł日本"
	out := EscapeUnicode(in)

	for _, r := range out {
		assert.True(t, r < 0x80, "non-ascii rune %q survived", r)
	}
	for _, r := range "<>'\"|~`^%#@!;=&" {
		assert.NotContains(t, out, string(r))
	}
	assert.Equal(t, len([]rune(in)), strings.Count(out, `\u`))
}

func TestEscapeSetting_ListFields(t *testing.T) {
	tables := entity.DefaultTables()
	cfg := entity.NewConfiguration()
	list, err := entity.FromAny([]any{
		map[string]any{
			"urlExpression":   "https://exämple.com/.*",
			"urlReplacement":  "",
			"dataExpression":  "ñ",
			"dataReplacement": "ok",
			"comment":         "ü stays",
		},
		"not a record",
	})
	require.NoError(t, err)
	cat := cfg.EnsureCategory("webview")
	cat.Set("webViewUrlDataFilterList", list)

	escapeSetting(tables, cat, "webViewUrlDataFilterList")

	v, _ := cat.Get("webViewUrlDataFilterList")
	items := v.(entity.Sequence)
	rec := items[0].(*entity.Record)
	got := func(field string) entity.Value {
		fv, _ := rec.Get(field)
		return fv
	}
	assert.Equal(t, entity.Text(`https://ex\u00e4mple.com/.*`), got("urlExpression"))
	assert.Equal(t, entity.Text(""), got("urlReplacement"))
	assert.Equal(t, entity.Text(`\u00f1`), got("dataExpression"))
	assert.Equal(t, entity.Text("ok"), got("dataReplacement"))
	assert.Equal(t, entity.Text("ü stays"), got("comment"))
	assert.Equal(t, entity.Text("not a record"), items[1])
}

func TestEscapeSetting_TextKey(t *testing.T) {
	tables := entity.DefaultTables()
	cat := entity.NewCategory("build")
	cat.Set("customBuildPropsFile", entity.Text("ro.product.model=Pixel é"))
	cat.Set("other", entity.Text("é"))

	escapeSetting(tables, cat, "customBuildPropsFile")
	escapeSetting(tables, cat, "other")

	v, _ := cat.Get("customBuildPropsFile")
	assert.Equal(t, entity.Text(`ro.product.model\u003dPixel \u00e9`), v)
	v, _ = cat.Get("other")
	assert.Equal(t, entity.Text("é"), v)
}

func TestEscapeSetting_WrongShapeIgnored(t *testing.T) {
	tables := entity.DefaultTables()
	cat := entity.NewCategory("webview")
	cat.Set("webViewOverrideUrlLoadingList", entity.Text("é"))
	cat.Set("customBuildPropsFile", entity.Number(3))

	escapeSetting(tables, cat, "webViewOverrideUrlLoadingList")
	escapeSetting(tables, cat, "customBuildPropsFile")

	v, _ := cat.Get("webViewOverrideUrlLoadingList")
	assert.Equal(t, entity.Text("é"), v)
	v, _ = cat.Get("customBuildPropsFile")
	assert.Equal(t, entity.Number(3), v)
}

func TestFlatten_EscapesBeforeEmitting(t *testing.T) {
	current := entity.NewConfiguration()
	set(t, current, "webview",
		"webViewOverrideUrlLoadingList", []any{map[string]any{"urlExpression": "ø"}},
	)
	original, index := load(t, current)

	out, err := newSerializer(t).Flatten(current, original, index)

	require.NoError(t, err)
	assertOutput(t, map[string]any{
		"webViewOverrideUrlLoadingList": []any{map[string]any{"urlExpression": `\u00f8`}},
	}, out)
}

func TestFlatten_EscapesChildEmittedByBoolParent(t *testing.T) {
	current := entity.NewConfiguration()
	set(t, current, "build",
		"customBuildProps", true,
		"customBuildPropsFile", "ro.x=é<",
	)
	original, index := load(t, current)

	out, err := newSerializer(t).Flatten(current, original, index)

	require.NoError(t, err)
	got, ok := out.Get("customBuildPropsFile")
	require.True(t, ok)
	assert.Equal(t, entity.Text(`ro.x\u003d\u00e9\u003c`), got)
	parent, _ := out.Get("customBuildProps")
	assert.Equal(t, entity.Bool(true), parent)
}
