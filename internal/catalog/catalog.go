package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ladle/internal/recipes"
)

// ErrUnavailable marks a missing or malformed catalog asset. Callers should
// surface an empty/error state rather than crash.
var ErrUnavailable = errors.New("recipe catalog unavailable")

//go:embed starter_catalog.json
var starterCatalog []byte

// Load parses the catalog asset at path into recipe records.
//
// A missing file, unparsable JSON, or duplicate recipe ids all wrap
// ErrUnavailable. The saved flag is zeroed even if the asset carries one;
// overlaying it is the repository's job.
func Load(path string) ([]recipes.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %w", ErrUnavailable, path, err)
	}

	var entries []recipes.Recipe
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: parse %q: %w", ErrUnavailable, path, err)
	}

	seen := make(map[int]struct{}, len(entries))
	for i := range entries {
		if _, dup := seen[entries[i].ID]; dup {
			return nil, fmt.Errorf("%w: duplicate recipe id %d in %q", ErrUnavailable, entries[i].ID, path)
		}
		seen[entries[i].ID] = struct{}{}
		entries[i].Saved = false
	}

	return entries, nil
}

// WriteStarter writes the bundled starter catalog to path. It refuses to
// overwrite an existing file.
func WriteStarter(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("catalog already exists at %s", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("check catalog path: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create catalog directory: %w", err)
		}
	}
	if err := os.WriteFile(path, starterCatalog, 0o644); err != nil {
		return fmt.Errorf("write starter catalog: %w", err)
	}
	return nil
}
