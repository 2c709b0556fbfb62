package entity

import "slices"

// RelationshipIndex records which settings are parents and which are their
// children. Children keep registration order and are never sorted.
type RelationshipIndex struct {
	parentOrder []string
	parents     map[string]struct{}
	childOrder  []string
	children    map[string]struct{}
	links       map[string][]string
}

// NewRelationshipIndex creates an empty index.
func NewRelationshipIndex() *RelationshipIndex {
	return &RelationshipIndex{
		parents:  make(map[string]struct{}),
		children: make(map[string]struct{}),
		links:    make(map[string][]string),
	}
}

// MarkParent registers key as a parent, even if it has no children.
func (idx *RelationshipIndex) MarkParent(key string) {
	if _, ok := idx.parents[key]; ok {
		return
	}
	idx.parents[key] = struct{}{}
	idx.parentOrder = append(idx.parentOrder, key)
	if _, ok := idx.links[key]; !ok {
		idx.links[key] = nil
	}
}

// Link registers parent and appends children not already linked to it.
func (idx *RelationshipIndex) Link(parent string, children ...string) {
	idx.MarkParent(parent)
	existing := idx.links[parent]
	for _, child := range children {
		if !slices.Contains(existing, child) {
			existing = append(existing, child)
		}
		if _, ok := idx.children[child]; !ok {
			idx.children[child] = struct{}{}
			idx.childOrder = append(idx.childOrder, child)
		}
	}
	idx.links[parent] = existing
}

// IsParent reports whether key was registered as a parent.
func (idx *RelationshipIndex) IsParent(key string) bool {
	if idx == nil {
		return false
	}
	_, ok := idx.parents[key]
	return ok
}

// IsChild reports whether key is a child of any parent.
func (idx *RelationshipIndex) IsChild(key string) bool {
	if idx == nil {
		return false
	}
	_, ok := idx.children[key]
	return ok
}

// Children returns a copy of the children registered for parent.
func (idx *RelationshipIndex) Children(parent string) []string {
	if idx == nil {
		return nil
	}
	return slices.Clone(idx.links[parent])
}

// ParentsOf returns every parent that lists child, in parent registration order.
func (idx *RelationshipIndex) ParentsOf(child string) []string {
	if !idx.IsChild(child) {
		return nil
	}
	var out []string
	for _, parent := range idx.parentOrder {
		if slices.Contains(idx.links[parent], child) {
			out = append(out, parent)
		}
	}
	return out
}

// ParentKeys returns parents in registration order.
func (idx *RelationshipIndex) ParentKeys() []string {
	if idx == nil {
		return nil
	}
	return slices.Clone(idx.parentOrder)
}

// ChildKeys returns children in registration order.
func (idx *RelationshipIndex) ChildKeys() []string {
	if idx == nil {
		return nil
	}
	return slices.Clone(idx.childOrder)
}

// Equal reports whether both indexes hold the same parents, children and
// per-parent child order.
func (idx *RelationshipIndex) Equal(other *RelationshipIndex) bool {
	if idx == nil || other == nil {
		return idx == other
	}
	if len(idx.parents) != len(other.parents) || len(idx.children) != len(other.children) {
		return false
	}
	for parent, children := range idx.links {
		if _, ok := other.parents[parent]; !ok {
			return false
		}
		if !slices.Equal(children, other.links[parent]) {
			return false
		}
	}
	for child := range idx.children {
		if _, ok := other.children[child]; !ok {
			return false
		}
	}
	return true
}
