// Package flatten rebuilds the flat settings file from an edited configuration.
package flatten

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bnema/clonecfg/internal/domain/entity"
)

// CustomMarker replaces a custom-option value; the value itself moves to the
// companion key.
const CustomMarker = "CUSTOM"

const customOptionPrefix = "change"

// Serializer flattens configurations using a fixed set of tables.
type Serializer struct {
	tables *entity.Tables
}

// NewSerializer creates a serializer. Every table must be present.
func NewSerializer(tables *entity.Tables) (*Serializer, error) {
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	return &Serializer{tables: tables}, nil
}

// Flatten produces the flat output for current. original supplies pristine
// values for passthrough keys, resets and custom-option detection; index is
// the frozen relationship index. Inputs are never mutated.
func (s *Serializer) Flatten(
	current, original *entity.Configuration,
	index *entity.RelationshipIndex,
) (*entity.FlatOutput, error) {
	if current == nil {
		return nil, fmt.Errorf("%w: current configuration is nil", entity.ErrMalformedConfiguration)
	}
	if original == nil {
		original = entity.NewConfiguration()
	}
	if index == nil {
		index = entity.NewRelationshipIndex()
	}

	work := current.Clone()
	// Parents emit their children's values, so every text must be escaped
	// before the first key is written.
	for _, category := range work.Categories() {
		for _, key := range category.Keys() {
			escapeSetting(s.tables, category, key)
		}
	}

	out := entity.NewFlatOutput()
	for _, category := range work.Categories() {
		pristine, _ := original.Category(category.Name())
		for _, key := range category.Keys() {
			s.emit(out, category, pristine, index, key)
		}
	}
	return out, nil
}

func (s *Serializer) emit(
	out *entity.FlatOutput,
	category, pristine *entity.Category,
	index *entity.RelationshipIndex,
	key string,
) {
	value, _ := category.Get(key)

	if s.tables.IsNonInteractive(key) {
		if orig, ok := pristine.Get(key); ok {
			out.Set(key, entity.Clone(orig))
		}
		return
	}

	if group, ok := s.tables.Composite(key); ok {
		emitComposite(out, category, group, value)
		return
	}

	if owner, ok := s.tables.CompositeOwner(key); ok && category.Has(owner.Key) {
		return
	}

	if hasPresentParent(category, index, key) {
		return
	}

	if rec, ok := value.(*entity.Record); ok {
		emitRecordParent(out, category, index, key, rec)
		return
	}

	if flag, ok := value.(entity.Bool); ok && index.IsParent(key) {
		s.emitBoolParent(out, category, pristine, index, key, bool(flag))
		return
	}

	if s.emitCustomOption(out, pristine, key, value) {
		return
	}

	if seq, ok := value.(entity.Sequence); ok && s.unwrapsSelection(key) {
		if len(seq) > 0 {
			out.Set(key, seq[0])
		}
		return
	}

	out.Set(key, value)
}

// emitComposite writes the toggle and all its members: current values when
// the toggle is exactly true, defaults otherwise.
func emitComposite(out *entity.FlatOutput, category *entity.Category, group entity.CompositeGroup, value entity.Value) {
	on := value == entity.Bool(true)
	out.Set(group.Key, entity.Bool(on))
	for _, m := range group.Members {
		if !on {
			out.Set(m.Key, entity.Clone(m.Default))
			continue
		}
		v, ok := category.Get(m.Key)
		if !ok {
			v = entity.Clone(m.Default)
		}
		if _, isNull := v.(entity.Null); isNull {
			v = entity.Clone(m.Default)
		}
		out.Set(m.Key, v)
	}
}

// hasPresentParent reports whether key is a child whose parent will emit it.
func hasPresentParent(category *entity.Category, index *entity.RelationshipIndex, key string) bool {
	if !index.IsChild(key) {
		return false
	}
	for _, parent := range index.ParentsOf(key) {
		if category.Has(parent) {
			return true
		}
	}
	return false
}

func emitRecordParent(
	out *entity.FlatOutput,
	category *entity.Category,
	index *entity.RelationshipIndex,
	key string,
	rec *entity.Record,
) {
	if !rec.Enabled() {
		out.Set(key, entity.Bool(false))
		return
	}
	out.Set(key, rec)
	for _, child := range index.Children(key) {
		if rec.Has(child) {
			continue
		}
		if v, ok := category.Get(child); ok {
			out.Set(child, v)
		}
	}
}

func (s *Serializer) emitBoolParent(
	out *entity.FlatOutput,
	category, pristine *entity.Category,
	index *entity.RelationshipIndex,
	key string,
	on bool,
) {
	if on {
		out.Set(key, entity.Bool(true))
		for _, child := range index.Children(key) {
			if v, ok := category.Get(child); ok {
				out.Set(child, v)
			}
		}
		return
	}

	if group, ok := s.tables.ResetGroup(key); ok {
		for _, child := range group.Children {
			if orig, found := pristine.Get(child); found {
				out.Set(child, entity.Clone(orig))
			} else {
				out.Set(child, entity.Bool(false))
			}
		}
		return
	}
	out.Set(key, entity.Bool(false))
}

// emitCustomOption writes the CUSTOM marker and companion key when a
// single-choice value is not among the original options.
func (s *Serializer) emitCustomOption(
	out *entity.FlatOutput,
	pristine *entity.Category,
	key string,
	value entity.Value,
) bool {
	if !s.tables.SupportsCustomOption(key) {
		return false
	}
	seq, ok := value.(entity.Sequence)
	if !ok || len(seq) != 1 {
		return false
	}
	origValue, _ := pristine.Get(key)
	options, ok := origValue.(entity.Sequence)
	if !ok || options.Contains(seq[0]) {
		return false
	}
	companion, ok := CompanionKey(key)
	if !ok {
		return false
	}
	out.Set(key, entity.Text(CustomMarker))
	out.Set(companion, seq[0])
	return true
}

// CompanionKey derives the key holding a custom value:
// changeAndroidId -> customAndroidId.
func CompanionKey(key string) (string, bool) {
	if len(key) <= len(customOptionPrefix) {
		return "", false
	}
	rest := key[len(customOptionPrefix):]
	r, size := utf8.DecodeRuneInString(rest)
	return "custom" + string(unicode.ToUpper(r)) + rest[size:], true
}

func (s *Serializer) unwrapsSelection(key string) bool {
	if s.tables.IsCustomEditor(key) {
		return false
	}
	lower := strings.ToLower(key)
	return !strings.Contains(lower, "strings") && !strings.Contains(lower, "filters")
}
