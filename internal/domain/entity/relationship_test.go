package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelationshipIndex_LinkDeduplicates(t *testing.T) {
	idx := NewRelationshipIndex()
	idx.Link("p", "a", "b")
	idx.Link("p", "b", "c")

	assert.Equal(t, []string{"a", "b", "c"}, idx.Children("p"))
	assert.Equal(t, []string{"p"}, idx.ParentKeys())
	assert.Equal(t, []string{"a", "b", "c"}, idx.ChildKeys())
}

func TestRelationshipIndex_ParentsOf(t *testing.T) {
	idx := NewRelationshipIndex()
	idx.Link("second", "shared")
	idx.Link("first", "shared", "own")

	assert.Equal(t, []string{"second", "first"}, idx.ParentsOf("shared"))
	assert.Equal(t, []string{"first"}, idx.ParentsOf("own"))
	assert.Nil(t, idx.ParentsOf("unknown"))
}

func TestRelationshipIndex_ChildrenIsCopy(t *testing.T) {
	idx := NewRelationshipIndex()
	idx.Link("p", "a")

	children := idx.Children("p")
	children[0] = "mutated"

	assert.Equal(t, []string{"a"}, idx.Children("p"))
}

func TestRelationshipIndex_MarkParentWithoutChildren(t *testing.T) {
	idx := NewRelationshipIndex()
	idx.MarkParent("lonely")

	assert.True(t, idx.IsParent("lonely"))
	assert.Empty(t, idx.Children("lonely"))
	assert.False(t, idx.IsChild("lonely"))
}

func TestRelationshipIndex_Equal(t *testing.T) {
	a := NewRelationshipIndex()
	a.Link("p", "x", "y")
	b := NewRelationshipIndex()
	b.Link("p", "x", "y")
	c := NewRelationshipIndex()
	c.Link("p", "y", "x")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "child order matters")
	assert.False(t, a.Equal(nil))

	var nilIdx *RelationshipIndex
	assert.True(t, nilIdx.Equal(nil))
	assert.False(t, nilIdx.IsParent("p"))
}
