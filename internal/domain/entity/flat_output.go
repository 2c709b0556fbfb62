package entity

import orderedmap "github.com/wk8/go-ordered-map/v2"

// FlatOutput is the category-less key -> value mapping written on save.
// Rewriting a key replaces its value but keeps its first position.
type FlatOutput struct {
	entries *orderedmap.OrderedMap[string, Value]
}

// NewFlatOutput creates an empty output.
func NewFlatOutput() *FlatOutput {
	return &FlatOutput{entries: orderedmap.New[string, Value]()}
}

// Set stores a key.
func (o *FlatOutput) Set(key string, v Value) {
	o.entries.Set(key, v)
}

// Get returns the stored value.
func (o *FlatOutput) Get(key string) (Value, bool) {
	return o.entries.Get(key)
}

// Has reports whether key was emitted.
func (o *FlatOutput) Has(key string) bool {
	_, ok := o.entries.Get(key)
	return ok
}

// Len returns the number of emitted keys.
func (o *FlatOutput) Len() int {
	return o.entries.Len()
}

// Keys returns keys in emission order.
func (o *FlatOutput) Keys() []string {
	keys := make([]string, 0, o.entries.Len())
	for pair := o.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// MarshalJSON encodes the output in emission order.
func (o *FlatOutput) MarshalJSON() ([]byte, error) {
	return o.entries.MarshalJSON()
}
