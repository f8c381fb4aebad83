package browse

import (
	"strings"

	"golang.org/x/text/cases"

	"ladle/internal/recipes"
)

// Criteria captures the three independently settable filter dimensions.
// Nil pointers mean "unset": match everything on that dimension.
type Criteria struct {
	Category   *string
	Query      string
	Vegetarian *bool
}

// Matches reports whether a recipe passes all three predicates.
func (c Criteria) Matches(r recipes.Recipe) bool {
	return c.matchesCategory(r) && c.matchesQuery(r) && c.matchesVegetarian(r)
}

// Category matching is exact and case-sensitive; callers are expected to
// pass the catalog's own spelling.
func (c Criteria) matchesCategory(r recipes.Recipe) bool {
	return c.Category == nil || r.Category == *c.Category
}

// Query matching is word-level, case-insensitive, OR-combined: any
// whitespace-separated word of the query appearing inside the recipe name is
// a hit. Blank queries match everything.
func (c Criteria) matchesQuery(r recipes.Recipe) bool {
	if strings.TrimSpace(c.Query) == "" {
		return true
	}
	folder := cases.Fold()
	name := folder.String(r.Name)
	for _, word := range strings.Fields(c.Query) {
		if strings.Contains(name, folder.String(word)) {
			return true
		}
	}
	return false
}

func (c Criteria) matchesVegetarian(r recipes.Recipe) bool {
	return c.Vegetarian == nil || r.Vegetarian == *c.Vegetarian
}

// Filter applies the criteria to a list, preserving order.
func (c Criteria) Filter(entries []recipes.Recipe) []recipes.Recipe {
	out := make([]recipes.Recipe, 0, len(entries))
	for _, entry := range entries {
		if c.Matches(entry) {
			out = append(out, entry)
		}
	}
	return out
}
