package recipes

// Recipe is one catalog entry. Every field except Saved comes verbatim from
// the catalog asset; Saved is overlaid from the favorites store at read time
// and is never part of the asset itself.
type Recipe struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Vegetarian   bool     `json:"isVegetarian"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	CookingTime  string   `json:"cookingTime"`
	ImageRef     string   `json:"imageResId"`
	Description  string   `json:"description"`
	Saved        bool     `json:"isSaved,omitempty"`
}

// Clone returns a copy with its own ingredients slice, so callers holding the
// result never alias catalog-backed data.
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = append([]string(nil), r.Ingredients...)
	return out
}
