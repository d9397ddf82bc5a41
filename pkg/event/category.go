package event

import "sort"

// DefaultColor is the fallback display color for unknown category keys.
const DefaultColor = "#8A8F98"

// Category is a static registry entry controlling display styling.
type Category struct {
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
	Label string `json:"label"`
}

// Registry maps category keys to their styling. The set is fixed per
// dataset.
type Registry map[string]Category

// Lookup resolves a category key, degrading gracefully for unknown keys:
// the raw key becomes the label and the default color applies. An unknown
// reference is never fatal.
func (r Registry) Lookup(key string) Category {
	if c, ok := r[key]; ok {
		return c
	}
	return Category{Color: DefaultColor, Label: key}
}

// Keys returns the registry keys in sorted order for stable display.
func (r Registry) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
