package relationship

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bnema/clonecfg/internal/domain/entity"
)

// StructuralRule makes every record a parent of its own fields.
type StructuralRule struct{}

func (StructuralRule) Name() string { return "structural" }

func (StructuralRule) Infer(category *entity.Category, index *entity.RelationshipIndex) {
	for _, key := range category.Keys() {
		v, _ := category.Get(key)
		rec, ok := v.(*entity.Record)
		if !ok {
			continue
		}
		index.MarkParent(key)
		for _, field := range rec.Keys() {
			if field != entity.EnabledField {
				index.Link(key, field)
			}
		}
	}
}

// NamingRule links a boolean key to every sibling that continues its name
// at a camel-case boundary, e.g. spoofGpsTrack -> spoofGpsTrackPath.
//
// The boundary test only checks that the next rune is unchanged by upper-casing,
// so digits and punctuation also qualify. Downstream grouping depends on this.
type NamingRule struct{}

func (NamingRule) Name() string { return "naming" }

func (NamingRule) Infer(category *entity.Category, index *entity.RelationshipIndex) {
	keys := category.Keys()
	for _, key := range keys {
		v, _ := category.Get(key)
		if _, ok := v.(entity.Bool); !ok {
			continue
		}
		var related []string
		for _, other := range keys {
			if other != key && ContinuesName(key, other) {
				related = append(related, other)
			}
		}
		if len(related) > 0 {
			index.Link(key, related...)
		}
	}
}

// ContinuesName reports whether candidate extends parent with a new camel-case word.
func ContinuesName(parent, candidate string) bool {
	if len(candidate) <= len(parent) || !strings.HasPrefix(candidate, parent) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(candidate[len(parent):])
	return unicode.ToUpper(r) == r
}

// PrefixAliasRule links a parent to siblings sharing an unrelated stem.
type PrefixAliasRule struct {
	Aliases []entity.PrefixAlias
}

func (PrefixAliasRule) Name() string { return "prefix-alias" }

func (r PrefixAliasRule) Infer(category *entity.Category, index *entity.RelationshipIndex) {
	for _, alias := range r.Aliases {
		if !category.Has(alias.Parent) {
			continue
		}
		var children []string
		for _, key := range category.Keys() {
			if key != alias.Parent && strings.HasPrefix(key, alias.Prefix) {
				children = append(children, key)
			}
		}
		if len(children) > 0 {
			index.Link(alias.Parent, children...)
		}
	}
}

// ExplicitGroupRule links hand-maintained parent/children groups.
type ExplicitGroupRule struct {
	Groups []entity.ExplicitGroup
}

func (ExplicitGroupRule) Name() string { return "explicit-group" }

// Prepare adds the parent of every active group that lacks one.
func (r ExplicitGroupRule) Prepare(category *entity.Category) []string {
	var added []string
	for _, g := range r.Groups {
		if category.Has(g.Parent) || !groupActive(category, g) {
			continue
		}
		category.Set(g.Parent, synthesizeParent(category, g))
		added = append(added, g.Parent)
	}
	return added
}

// Infer links active groups. Missing parents are added by Prepare.
func (r ExplicitGroupRule) Infer(category *entity.Category, index *entity.RelationshipIndex) {
	for _, g := range r.Groups {
		if !groupActive(category, g) {
			continue
		}
		index.Link(g.Parent, g.Children...)
	}
}

func groupActive(category *entity.Category, g entity.ExplicitGroup) bool {
	if category.Has(g.Parent) {
		return true
	}
	for _, child := range g.Children {
		if category.Has(child) {
			return true
		}
	}
	return false
}

func synthesizeParent(category *entity.Category, g entity.ExplicitGroup) entity.Value {
	if g.DeriveFrom == "" {
		return entity.Bool(false)
	}
	v, _ := category.Get(g.DeriveFrom)
	seq, ok := v.(entity.Sequence)
	return entity.Bool(ok && len(seq) > 0)
}

const (
	placeholderPrefix = "custom"
	placeholderSuffix = "EnablePlaceholders"
	changePrefix      = "change"
)

// PlaceholderRule attaches custom<X>EnablePlaceholders to change<X>.
type PlaceholderRule struct{}

func (PlaceholderRule) Name() string { return "placeholder" }

func (PlaceholderRule) Infer(category *entity.Category, index *entity.RelationshipIndex) {
	for _, key := range category.Keys() {
		if len(key) < len(placeholderPrefix)+len(placeholderSuffix) ||
			!strings.HasPrefix(key, placeholderPrefix) || !strings.HasSuffix(key, placeholderSuffix) {
			continue
		}
		middle := key[len(placeholderPrefix) : len(key)-len(placeholderSuffix)]
		parent := changePrefix + middle
		if category.Has(parent) {
			index.Link(parent, key)
		}
	}
}
