package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// MonthSet holds the months of a document in whichever shape the source
// used. Exactly one of Flat or Nested is populated, matching Shape.
type MonthSet struct {
	Shape  Shape
	Flat   []*FlatMonth
	Nested []*NestedMonth
}

// UnmarshalJSON sniffs the first JSON token to pick the shape: an array is
// the flat layout, an object the nested one.
func (m *MonthSet) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return fmt.Errorf("dataset: months section is empty")
	}
	switch trimmed[0] {
	case '[':
		var flat []*FlatMonth
		if err := json.Unmarshal(data, &flat); err != nil {
			return fmt.Errorf("dataset: flat months: %w", err)
		}
		m.Shape = ShapeFlat
		m.Flat = flat
		m.Nested = nil
		return nil
	case '{':
		var nested map[string]*NestedMonth
		if err := json.Unmarshal(data, &nested); err != nil {
			return fmt.Errorf("dataset: nested months: %w", err)
		}
		months := make([]*NestedMonth, 0, len(nested))
		for slug, month := range nested {
			if month == nil {
				month = &NestedMonth{}
			}
			month.Slug = slug
			months = append(months, month)
		}
		// Calendar order; months with unparseable names sort last by slug.
		sort.SliceStable(months, func(i, j int) bool {
			a, b := months[i].ID(), months[j].ID()
			if a == b {
				return months[i].Slug < months[j].Slug
			}
			if a == "" {
				return false
			}
			if b == "" {
				return true
			}
			return a < b
		})
		m.Shape = ShapeNested
		m.Nested = months
		m.Flat = nil
		return nil
	default:
		return fmt.Errorf("dataset: months must be an array or an object, got %q", trimmed[0])
	}
}

// MarshalJSON writes the months back in their original shape.
func (m *MonthSet) MarshalJSON() ([]byte, error) {
	switch m.Shape {
	case ShapeFlat:
		return json.Marshal(m.Flat)
	case ShapeNested:
		out := make(map[string]*NestedMonth, len(m.Nested))
		for _, month := range m.Nested {
			out[month.Slug] = month
		}
		return json.Marshal(out)
	default:
		return nil, fmt.Errorf("dataset: cannot marshal months with shape %q", m.Shape)
	}
}

// FlatByID returns the flat month with the given id.
func (m *MonthSet) FlatByID(id string) (*FlatMonth, bool) {
	for _, month := range m.Flat {
		if month.ID == id {
			return month, true
		}
	}
	return nil, false
}

// NestedByID returns the nested month with the given YYYY-MM id.
func (m *MonthSet) NestedByID(id string) (*NestedMonth, bool) {
	if id == "" {
		return nil, false
	}
	for _, month := range m.Nested {
		if month.ID() == id {
			return month, true
		}
	}
	return nil, false
}

// IDs lists the month ids in order, skipping months that have no id.
func (m *MonthSet) IDs() []string {
	var ids []string
	switch m.Shape {
	case ShapeFlat:
		for _, month := range m.Flat {
			ids = append(ids, month.ID)
		}
	case ShapeNested:
		for _, month := range m.Nested {
			if id := month.ID(); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
