package voice

import (
	"errors"
	"strings"
)

// Kind identifies what a parsed command asks the caller to do.
type Kind int

const (
	// KindShowAll clears every criterion.
	KindShowAll Kind = iota
	// KindSetVegetarian sets the vegetarian flag and clears the query.
	KindSetVegetarian
	// KindSetCategory selects a category and leaves the other criteria alone.
	KindSetCategory
	// KindSearch sets the free-text query.
	KindSearch
	// KindShowFavorites asks for the saved-recipes view and clears the
	// category and query.
	KindShowFavorites
)

// Command is a parsed criterion change.
type Command struct {
	Kind       Kind
	Category   string // canonical spelling, KindSetCategory only
	Query      string // KindSearch only
	Vegetarian bool   // KindSetVegetarian only
}

// ErrUnrecognized asks the user to rephrase.
var ErrUnrecognized = errors.New(`say "search" followed by the name of the dish`)

// ErrMissingDish is returned for a bare "search" with nothing after it.
var ErrMissingDish = errors.New("please specify a dish name")

// Parse maps a spoken or typed phrase to a Command. Matching is
// case-insensitive; categories supplies the canonical category spellings
// ("All" is implicit). A common mishearing, "desert" for "dessert", is
// normalized before matching.
func Parse(input string, categories []string) (Command, error) {
	phrase := strings.TrimSpace(input)
	if phrase == "" {
		return Command{}, ErrUnrecognized
	}
	if strings.EqualFold(phrase, "desert") {
		phrase = "dessert"
	}

	switch {
	case strings.EqualFold(phrase, "non veg"), strings.EqualFold(phrase, "nonveg"):
		return Command{Kind: KindSetVegetarian, Vegetarian: false}, nil
	case strings.EqualFold(phrase, "veg"):
		return Command{Kind: KindSetVegetarian, Vegetarian: true}, nil
	case isFavoritesWord(phrase):
		return Command{Kind: KindShowFavorites}, nil
	}

	if strings.EqualFold(phrase, "all") {
		return Command{Kind: KindShowAll}, nil
	}
	for _, category := range categories {
		if strings.EqualFold(phrase, category) {
			return Command{Kind: KindSetCategory, Category: category}, nil
		}
	}

	if rest, ok := cutPrefixFold(phrase, "search"); ok {
		dish := strings.TrimSpace(rest)
		switch {
		case dish == "":
			return Command{}, ErrMissingDish
		case strings.EqualFold(dish, "all"):
			return Command{Kind: KindShowAll}, nil
		case strings.EqualFold(dish, "veg"):
			return Command{Kind: KindSetVegetarian, Vegetarian: true}, nil
		case strings.EqualFold(dish, "non veg"), strings.EqualFold(dish, "nonveg"):
			return Command{Kind: KindSetVegetarian, Vegetarian: false}, nil
		default:
			return Command{Kind: KindSearch, Query: dish}, nil
		}
	}

	return Command{}, ErrUnrecognized
}

func isFavoritesWord(phrase string) bool {
	for _, word := range []string{"favorite", "favorites", "favourite", "favourites"} {
		if strings.EqualFold(phrase, word) {
			return true
		}
	}
	return false
}

func cutPrefixFold(phrase, prefix string) (string, bool) {
	if len(phrase) < len(prefix) {
		return "", false
	}
	if !strings.EqualFold(phrase[:len(prefix)], prefix) {
		return "", false
	}
	return phrase[len(prefix):], true
}
