package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"ladle/internal/config"
	"ladle/internal/recipes"
)

// WriteCatalog marshals the provided recipes to the config's catalog path.
func WriteCatalog(t testing.TB, cfg *config.Config, entries []recipes.Recipe) {
	t.Helper()

	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("marshal catalog: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Paths.CatalogPath), 0o755); err != nil {
		t.Fatalf("mkdir catalog dir: %v", err)
	}
	if err := os.WriteFile(cfg.Paths.CatalogPath, data, 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
}

// SampleRecipes returns the two-entry catalog used across filter tests.
func SampleRecipes() []recipes.Recipe {
	return []recipes.Recipe{
		{
			ID:           1,
			Name:         "Spaghetti Bolognese",
			Category:     "Main Course",
			Vegetarian:   false,
			Ingredients:  []string{"Spaghetti", "Ground Beef", "Tomato Sauce"},
			Instructions: "Cook spaghetti. Prepare sauce. Combine and serve.",
			CookingTime:  "45 min",
			ImageRef:     "spaghetti_bolognese",
			Description:  "A hearty Italian classic.",
		},
		{
			ID:           2,
			Name:         "Vegetable Stir Fry",
			Category:     "Snack",
			Vegetarian:   true,
			Ingredients:  []string{"Broccoli", "Bell Peppers", "Soy Sauce"},
			Instructions: "Stir fry vegetables. Add sauce. Serve with rice.",
			CookingTime:  "20 min",
			ImageRef:     "vegetable_stir_fry",
			Description:  "Crisp vegetables in a soy glaze.",
		},
	}
}
