package voice_test

import (
	"errors"
	"testing"

	"ladle/internal/voice"
)

var categories = []string{"Breakfast", "Main Course", "Dessert", "Snack"}

func TestParseGrammar(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  voice.Command
	}{
		{"veg", "veg", voice.Command{Kind: voice.KindSetVegetarian, Vegetarian: true}},
		{"veg uppercase", "VEG", voice.Command{Kind: voice.KindSetVegetarian, Vegetarian: true}},
		{"non veg", "non veg", voice.Command{Kind: voice.KindSetVegetarian, Vegetarian: false}},
		{"nonveg", "nonveg", voice.Command{Kind: voice.KindSetVegetarian, Vegetarian: false}},
		{"favorites", "favorites", voice.Command{Kind: voice.KindShowFavorites}},
		{"favourite british", "Favourite", voice.Command{Kind: voice.KindShowFavorites}},
		{"category exact", "Snack", voice.Command{Kind: voice.KindSetCategory, Category: "Snack"}},
		{"category case-insensitive", "main course", voice.Command{Kind: voice.KindSetCategory, Category: "Main Course"}},
		{"desert mishearing", "desert", voice.Command{Kind: voice.KindSetCategory, Category: "Dessert"}},
		{"all clears", "all", voice.Command{Kind: voice.KindShowAll}},
		{"search dish", "search paneer tikka", voice.Command{Kind: voice.KindSearch, Query: "paneer tikka"}},
		{"search all", "search all", voice.Command{Kind: voice.KindShowAll}},
		{"search veg", "search veg", voice.Command{Kind: voice.KindSetVegetarian, Vegetarian: true}},
		{"search non veg", "search non veg", voice.Command{Kind: voice.KindSetVegetarian, Vegetarian: false}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := voice.Parse(tc.input, categories)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseBareSearchNeedsDish(t *testing.T) {
	_, err := voice.Parse("search", categories)
	if !errors.Is(err, voice.ErrMissingDish) {
		t.Fatalf("expected ErrMissingDish, got %v", err)
	}
	_, err = voice.Parse("search   ", categories)
	if !errors.Is(err, voice.ErrMissingDish) {
		t.Fatalf("expected ErrMissingDish for blank dish, got %v", err)
	}
}

func TestParseUnrecognized(t *testing.T) {
	for _, input := range []string{"", "make me a sandwich", "pasta please"} {
		if _, err := voice.Parse(input, categories); !errors.Is(err, voice.ErrUnrecognized) {
			t.Fatalf("Parse(%q): expected ErrUnrecognized, got %v", input, err)
		}
	}
}
