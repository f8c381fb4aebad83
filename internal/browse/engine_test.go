package browse_test

import (
	"context"
	"testing"
	"time"

	"ladle/internal/browse"
	"ladle/internal/library"
	"ladle/internal/recipes"
	"ladle/internal/testsupport"
)

func newEngine(t *testing.T) *browse.Engine {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	testsupport.WriteCatalog(t, cfg, testsupport.SampleRecipes())
	store := testsupport.MustOpenStore(t, cfg)
	return browse.NewEngine(library.NewRepository(cfg, store, nil), nil)
}

func ids(entries []recipes.Recipe) []int {
	out := make([]int, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.ID)
	}
	return out
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestVisibleWithoutCriteriaReturnsEverything(t *testing.T) {
	engine := newEngine(t)
	visible, err := engine.Visible(context.Background())
	if err != nil {
		t.Fatalf("Visible: %v", err)
	}
	if len(visible) != 2 {
		t.Fatalf("expected full catalog, got ids %v", ids(visible))
	}
}

func TestCategoryFilter(t *testing.T) {
	engine := newEngine(t)
	ctx := context.Background()

	visible, err := engine.SetCategory(ctx, strPtr("Snack"))
	if err != nil {
		t.Fatalf("SetCategory: %v", err)
	}
	if len(visible) != 1 || visible[0].Name != "Vegetable Stir Fry" {
		t.Fatalf("unexpected filtered list: %v", ids(visible))
	}

	visible, err = engine.SetCategory(ctx, nil)
	if err != nil {
		t.Fatalf("SetCategory nil: %v", err)
	}
	if len(visible) != 2 {
		t.Fatalf("expected clearing the category to restore the full set, got %v", ids(visible))
	}
}

func TestCategoryMatchIsCaseSensitive(t *testing.T) {
	engine := newEngine(t)
	visible, err := engine.SetCategory(context.Background(), strPtr("snack"))
	if err != nil {
		t.Fatalf("SetCategory: %v", err)
	}
	if len(visible) != 0 {
		t.Fatalf("expected no match for lowercased category, got %v", ids(visible))
	}
}

func TestSearchIsWordLevelCaseInsensitiveAnyMatch(t *testing.T) {
	engine := newEngine(t)
	ctx := context.Background()

	tests := []struct {
		query string
		want  []int
	}{
		{"Veg", []int{2}},
		{"veg", []int{2}},
		{"", []int{1, 2}},
		{"   ", []int{1, 2}},
		{"zucchini stir", []int{2}},
		{"SPAGHETTI", []int{1}},
		{"nothing matches this", nil},
	}
	for _, tc := range tests {
		visible, err := engine.SetSearchQuery(ctx, tc.query)
		if err != nil {
			t.Fatalf("SetSearchQuery(%q): %v", tc.query, err)
		}
		got := ids(visible)
		if len(got) != len(tc.want) {
			t.Fatalf("query %q: got %v want %v", tc.query, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("query %q: got %v want %v", tc.query, got, tc.want)
			}
		}
	}
}

func TestVegetarianFilterExactWhenSet(t *testing.T) {
	engine := newEngine(t)
	ctx := context.Background()

	visible, err := engine.SetVegetarian(ctx, boolPtr(true))
	if err != nil {
		t.Fatalf("SetVegetarian: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != 2 {
		t.Fatalf("expected only the vegetarian recipe, got %v", ids(visible))
	}

	visible, err = engine.SetVegetarian(ctx, boolPtr(false))
	if err != nil {
		t.Fatalf("SetVegetarian false: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != 1 {
		t.Fatalf("expected only the non-vegetarian recipe, got %v", ids(visible))
	}

	visible, err = engine.SetVegetarian(ctx, nil)
	if err != nil {
		t.Fatalf("SetVegetarian nil: %v", err)
	}
	if len(visible) != 2 {
		t.Fatalf("expected pass-through when unset, got %v", ids(visible))
	}
}

func TestCombinedFiltersAreANDed(t *testing.T) {
	engine := newEngine(t)
	ctx := context.Background()

	visible, err := engine.SetCategory(ctx, strPtr("Snack"))
	if err != nil {
		t.Fatalf("SetCategory: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != 2 {
		t.Fatalf("after category: got %v", ids(visible))
	}

	visible, err = engine.SetSearchQuery(ctx, "Vegetable")
	if err != nil {
		t.Fatalf("SetSearchQuery: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != 2 {
		t.Fatalf("after category+search: got %v", ids(visible))
	}

	visible, err = engine.SetVegetarian(ctx, boolPtr(false))
	if err != nil {
		t.Fatalf("SetVegetarian: %v", err)
	}
	if len(visible) != 0 {
		t.Fatalf("Snack AND vegetarian=false should match nothing, got %v", ids(visible))
	}
}

func TestResetClearsAllCriteria(t *testing.T) {
	engine := newEngine(t)
	ctx := context.Background()

	if _, err := engine.SetCategory(ctx, strPtr("Snack")); err != nil {
		t.Fatalf("SetCategory: %v", err)
	}
	if _, err := engine.SetVegetarian(ctx, boolPtr(false)); err != nil {
		t.Fatalf("SetVegetarian: %v", err)
	}

	visible, err := engine.Reset(ctx)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(visible) != 2 {
		t.Fatalf("expected reset to restore the full set, got %v", ids(visible))
	}
	if c := engine.Criteria(); c.Category != nil || c.Query != "" || c.Vegetarian != nil {
		t.Fatalf("expected empty criteria, got %+v", c)
	}
}

func TestVisibleByIDHonorsActiveFilters(t *testing.T) {
	engine := newEngine(t)
	ctx := context.Background()

	entry, err := engine.VisibleByID(ctx, 2)
	if err != nil {
		t.Fatalf("VisibleByID: %v", err)
	}
	if entry == nil || entry.Name != "Vegetable Stir Fry" {
		t.Fatalf("unexpected lookup result: %#v", entry)
	}

	// Absent id: none, not an error.
	entry, err = engine.VisibleByID(ctx, 10)
	if err != nil {
		t.Fatalf("VisibleByID absent: %v", err)
	}
	if entry != nil {
		t.Fatalf("expected nil for absent id, got %#v", entry)
	}

	// An id hidden by the criteria is also none.
	if _, err := engine.SetCategory(ctx, strPtr("Snack")); err != nil {
		t.Fatalf("SetCategory: %v", err)
	}
	entry, err = engine.VisibleByID(ctx, 1)
	if err != nil {
		t.Fatalf("VisibleByID hidden: %v", err)
	}
	if entry != nil {
		t.Fatalf("expected nil for filtered-out id, got %#v", entry)
	}
}

func TestSubscribeDeliversLatestValueOnly(t *testing.T) {
	engine := newEngine(t)
	ctx := context.Background()

	sub := engine.Subscribe(ctx)
	defer sub.Close()

	// Three rapid criteria changes; the consumer has not read anything, so
	// only the newest snapshot must remain buffered.
	if _, err := engine.SetCategory(ctx, strPtr("Snack")); err != nil {
		t.Fatalf("SetCategory: %v", err)
	}
	if _, err := engine.SetSearchQuery(ctx, "Vegetable"); err != nil {
		t.Fatalf("SetSearchQuery: %v", err)
	}
	if _, err := engine.SetVegetarian(ctx, boolPtr(false)); err != nil {
		t.Fatalf("SetVegetarian: %v", err)
	}

	select {
	case snap := <-sub.Updates():
		if len(snap.Recipes) != 0 {
			t.Fatalf("expected the final empty result, got %v", ids(snap.Recipes))
		}
	case <-time.After(time.Second):
		t.Fatal("expected a buffered snapshot")
	}

	select {
	case snap, ok := <-sub.Updates():
		if ok {
			t.Fatalf("expected no superseded snapshots, got sequence %d", snap.Sequence)
		}
	default:
	}
}

func TestSubscribeSequencesIncrease(t *testing.T) {
	engine := newEngine(t)
	ctx := context.Background()

	sub := engine.Subscribe(ctx)
	defer sub.Close()

	if _, err := engine.SetSearchQuery(ctx, "Veg"); err != nil {
		t.Fatalf("SetSearchQuery: %v", err)
	}
	first := <-sub.Updates()

	if _, err := engine.SetSearchQuery(ctx, ""); err != nil {
		t.Fatalf("SetSearchQuery: %v", err)
	}
	second := <-sub.Updates()

	if second.Sequence <= first.Sequence {
		t.Fatalf("expected increasing sequences, got %d then %d", first.Sequence, second.Sequence)
	}
}

func TestCloseEndsSubscription(t *testing.T) {
	engine := newEngine(t)
	sub := engine.Subscribe(context.Background())
	sub.Close()

	if _, ok := <-sub.Updates(); ok {
		t.Fatal("expected closed updates channel")
	}

	// Publishing after close must not panic or block.
	if _, err := engine.SetSearchQuery(context.Background(), "Veg"); err != nil {
		t.Fatalf("SetSearchQuery after close: %v", err)
	}
}
