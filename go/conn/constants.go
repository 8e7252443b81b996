package conn

import (
	"fmt"
	"sort"
)

// Constants is the terminal-side table of named integer constants, loaded
// once per connection. It replaces attribute-style forwarding with explicit
// lookups.
type Constants struct {
	values map[string]int64
}

// NewConstants copies the server-provided map.
func NewConstants(values map[string]int64) *Constants {
	var copied = make(map[string]int64, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Constants{values: copied}
}

// Get returns the named constant.
func (c *Constants) Get(name string) (int64, bool) {
	if c == nil {
		return 0, false
	}
	v, ok := c.values[name]
	return v, ok
}

// MustGet returns the named constant or an error naming it.
func (c *Constants) MustGet(name string) (int64, error) {
	if v, ok := c.Get(name); ok {
		return v, nil
	}
	return 0, fmt.Errorf("terminal constant %q is not defined", name)
}

// Has reports whether the constant exists.
func (c *Constants) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Names returns all constant names, sorted.
func (c *Constants) Names() []string {
	if c == nil {
		return nil
	}
	var names = make([]string, 0, len(c.values))
	for k := range c.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len returns the table size.
func (c *Constants) Len() int {
	if c == nil {
		return 0
	}
	return len(c.values)
}
