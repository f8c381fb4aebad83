package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"ladle/internal/config"
)

func parseRecipeID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid recipe id %q", arg)
	}
	return id, nil
}

// stdoutIsTerminal gates the rounded table style and the star marker; piped
// output stays plain ASCII.
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// resolveCategory maps user input onto the configured category spelling so
// the engine's case-sensitive match still fires for lower-cased input.
// Unknown input is title-cased and passed through, which simply matches
// nothing for a catalog that doesn't use that category.
func resolveCategory(cfg *config.Config, input string) string {
	trimmed := strings.TrimSpace(input)
	for _, category := range cfg.Browse.Categories {
		if strings.EqualFold(trimmed, category) {
			return category
		}
	}
	return cases.Title(language.English).String(trimmed)
}
