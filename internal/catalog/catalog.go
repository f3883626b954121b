// Package catalog holds the categorized dork templates.
//
// The shipped table is immutable; Builtin hands out copies so callers may
// merge user-supplied categories without touching the original.
package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCategory is returned when a category id is not in the catalog.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidCatalog is returned when a catalog file fails validation.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Dork is a single named template query.
type Dork struct {
	Name        string `yaml:"name" json:"name"`
	Query       string `yaml:"query" json:"query"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Category groups related templates under an id.
type Category struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Dorks       []Dork `yaml:"dorks" json:"dorks"`
}

func (c Category) clone() Category {
	c.Dorks = append([]Dork(nil), c.Dorks...)
	return c
}

// Catalog is an ordered set of categories.
type Catalog struct {
	categories []Category
}

// New builds a catalog from the given categories, in order.
func New(categories ...Category) *Catalog {
	c := &Catalog{categories: make([]Category, 0, len(categories))}
	for _, cat := range categories {
		c.categories = append(c.categories, cat.clone())
	}
	return c
}

// Builtin returns a fresh copy of the shipped catalog.
func Builtin() *Catalog {
	return New(builtin...)
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// Count returns the total number of templates across all categories.
func (c *Catalog) Count() int {
	n := 0
	for _, cat := range c.categories {
		n += len(cat.Dorks)
	}
	return n
}

// Categories returns a copy of the categories in display order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, 0, len(c.categories))
	for _, cat := range c.categories {
		out = append(out, cat.clone())
	}
	return out
}

// At returns the category at a zero-based display index.
func (c *Catalog) At(i int) (Category, bool) {
	if i < 0 || i >= len(c.categories) {
		return Category{}, false
	}
	return c.categories[i].clone(), true
}

// Category looks a category up by id.
func (c *Catalog) Category(id string) (Category, error) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat.clone(), nil
		}
	}
	return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, id)
}

// Merge returns a new catalog with extra categories folded in. A category
// whose id already exists has its templates appended, and its name and
// description replaced when the extra one sets them. New ids are appended
// at the end.
func (c *Catalog) Merge(extra []Category) *Catalog {
	merged := New(c.categories...)
	for _, add := range extra {
		idx := -1
		for i := range merged.categories {
			if merged.categories[i].ID == add.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			merged.categories = append(merged.categories, add.clone())
			continue
		}
		dst := &merged.categories[idx]
		if add.Name != "" {
			dst.Name = add.Name
		}
		if add.Description != "" {
			dst.Description = add.Description
		}
		dst.Dorks = append(dst.Dorks, add.Dorks...)
	}
	return merged
}

// Validate checks that category ids are present and unique and that every
// template has a name and a query.
func Validate(categories []Category) error {
	seen := make(map[string]bool, len(categories))
	for i, cat := range categories {
		if cat.ID == "" {
			return fmt.Errorf("%w: category %d has no id", ErrInvalidCatalog, i+1)
		}
		if seen[cat.ID] {
			return fmt.Errorf("%w: duplicate category id %q", ErrInvalidCatalog, cat.ID)
		}
		seen[cat.ID] = true
		for j, d := range cat.Dorks {
			if d.Name == "" || d.Query == "" {
				return fmt.Errorf("%w: %s template %d needs a name and a query", ErrInvalidCatalog, cat.ID, j+1)
			}
		}
	}
	return nil
}
