package flatten

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/bnema/clonecfg/internal/domain/entity"
)

// EscapeUnicode replaces every rune outside the safe set with \uXXXX.
// The safe set is ASCII letters and digits, whitespace and _.,/:?*+$()[]{}-.
// Runes outside the BMP become a surrogate pair of escapes.
func EscapeUnicode(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isSafeRune(r) {
			b.WriteRune(r)
			continue
		}
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, hi, lo)
			continue
		}
		fmt.Fprintf(&b, `\u%04x`, r)
	}
	return b.String()
}

func isSafeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case isPatternSpace(r):
		return true
	}
	return strings.ContainsRune("_.,/:?*+$()[]{}-", r)
}

// isPatternSpace matches the regular-expression \s class. Unlike
// unicode.IsSpace it excludes U+0085 and includes U+FEFF.
func isPatternSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\u1680',
		'\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

// escapeSetting escapes the text-bearing parts of key in place.
func escapeSetting(tables *entity.Tables, category *entity.Category, key string) {
	v, _ := category.Get(key)

	if fields, ok := tables.EscapeListFields[key]; ok {
		items, isSeq := v.(entity.Sequence)
		if !isSeq {
			return
		}
		for _, item := range items {
			rec, isRec := item.(*entity.Record)
			if !isRec {
				continue
			}
			for _, field := range fields {
				if text, isText := fieldText(rec, field); isText && text != "" {
					rec.Set(field, entity.Text(EscapeUnicode(string(text))))
				}
			}
		}
		return
	}

	for _, target := range tables.EscapeTextKeys {
		if target != key {
			continue
		}
		if text, ok := v.(entity.Text); ok {
			category.Set(key, entity.Text(EscapeUnicode(string(text))))
		}
		return
	}
}

func fieldText(rec *entity.Record, field string) (entity.Text, bool) {
	v, ok := rec.Get(field)
	if !ok {
		return "", false
	}
	text, ok := v.(entity.Text)
	return text, ok
}
