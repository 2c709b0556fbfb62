package entity

import (
	"errors"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrMalformedConfiguration is returned when input is not a category -> key mapping.
var ErrMalformedConfiguration = errors.New("malformed configuration")

// Category is a named, ordered group of settings.
type Category struct {
	name     string
	settings *orderedmap.OrderedMap[string, Value]
}

// NewCategory creates an empty category.
func NewCategory(name string) *Category {
	return &Category{name: name, settings: orderedmap.New[string, Value]()}
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Get returns the setting value and whether the key exists.
func (c *Category) Get(key string) (Value, bool) {
	if c == nil {
		return nil, false
	}
	return c.settings.Get(key)
}

// Has reports whether the category contains the key.
func (c *Category) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Set stores a setting. Existing keys keep their position.
func (c *Category) Set(key string, v Value) {
	c.settings.Set(key, v)
}

// Delete removes a setting.
func (c *Category) Delete(key string) {
	c.settings.Delete(key)
}

// Len returns the number of settings.
func (c *Category) Len() int {
	if c == nil {
		return 0
	}
	return c.settings.Len()
}

// Keys returns setting keys in insertion order.
func (c *Category) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, c.settings.Len())
	for pair := c.settings.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Clone returns a deep copy of the category.
func (c *Category) Clone() *Category {
	out := NewCategory(c.name)
	for pair := c.settings.Oldest(); pair != nil; pair = pair.Next() {
		out.settings.Set(pair.Key, Clone(pair.Value))
	}
	return out
}

// MarshalJSON encodes settings in insertion order.
func (c *Category) MarshalJSON() ([]byte, error) {
	return c.settings.MarshalJSON()
}

// Configuration maps category names to categories, in load order.
type Configuration struct {
	categories *orderedmap.OrderedMap[string, *Category]
}

// NewConfiguration creates an empty configuration.
func NewConfiguration() *Configuration {
	return &Configuration{categories: orderedmap.New[string, *Category]()}
}

// Category returns the named category.
func (c *Configuration) Category(name string) (*Category, bool) {
	if c == nil {
		return nil, false
	}
	return c.categories.Get(name)
}

// EnsureCategory returns the named category, creating it when missing.
func (c *Configuration) EnsureCategory(name string) *Category {
	if cat, ok := c.categories.Get(name); ok {
		return cat
	}
	cat := NewCategory(name)
	c.categories.Set(name, cat)
	return cat
}

// Categories returns categories in load order.
func (c *Configuration) Categories() []*Category {
	if c == nil {
		return nil
	}
	out := make([]*Category, 0, c.categories.Len())
	for pair := c.categories.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Get returns the value stored at (category, key).
func (c *Configuration) Get(category, key string) (Value, bool) {
	cat, ok := c.Category(category)
	if !ok {
		return nil, false
	}
	return cat.Get(key)
}

// Set stores a value at (category, key), creating the category if needed.
func (c *Configuration) Set(category, key string, v Value) {
	c.EnsureCategory(category).Set(key, v)
}

// KeyCount returns the total number of settings across categories.
func (c *Configuration) KeyCount() int {
	n := 0
	for _, cat := range c.Categories() {
		n += cat.Len()
	}
	return n
}

// Clone returns a deep copy of the configuration.
func (c *Configuration) Clone() *Configuration {
	out := NewConfiguration()
	for _, cat := range c.Categories() {
		out.categories.Set(cat.name, cat.Clone())
	}
	return out
}

// MarshalJSON encodes categories in load order.
func (c *Configuration) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	return c.categories.MarshalJSON()
}
