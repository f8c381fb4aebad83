package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ladle/internal/catalog"
	"ladle/internal/config"
	"ladle/internal/logging"
	"ladle/internal/recipes"
)

// ErrNotFound marks a recipe id absent from the catalog. Treat it as "no
// data", not a failure.
var ErrNotFound = errors.New("recipe not found")

// FavoriteStore is the persistence surface the repository needs. It is
// satisfied by *favorites.Store.
type FavoriteStore interface {
	Saved(ctx context.Context, recipeID int) (bool, error)
	SetSaved(ctx context.Context, recipeID int, saved bool) error
}

// Repository serves catalog recipes with the saved flag overlaid.
type Repository struct {
	catalogPath string
	store       FavoriteStore
	logger      *slog.Logger
}

// NewRepository wires the repository against a catalog asset and a favorite store.
func NewRepository(cfg *config.Config, store FavoriteStore, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Repository{
		catalogPath: cfg.Paths.CatalogPath,
		store:       store,
		logger:      logger.With(logging.FieldComponent, "library"),
	}
}

// All returns the full catalog with saved flags overlaid. The asset is
// re-read on every call, so a toggle is visible on the next read without any
// cache invalidation.
func (r *Repository) All(ctx context.Context) ([]recipes.Recipe, error) {
	entries, err := catalog.Load(r.catalogPath)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Saved = r.savedFlag(ctx, entries[i].ID)
	}
	return entries, nil
}

// ByID returns the catalog entry with the given id, overlaid, searching the
// unfiltered catalog. Absent ids yield ErrNotFound.
func (r *Repository) ByID(ctx context.Context, id int) (*recipes.Recipe, error) {
	entries, err := catalog.Load(r.catalogPath)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		entry := entries[i].Clone()
		entry.Saved = r.savedFlag(ctx, entry.ID)
		return &entry, nil
	}
	return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// Favorites returns only the recipes whose saved flag is set.
func (r *Repository) Favorites(ctx context.Context) ([]recipes.Recipe, error) {
	entries, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	saved := entries[:0]
	for _, entry := range entries {
		if entry.Saved {
			saved = append(saved, entry)
		}
	}
	return saved, nil
}

// ToggleSaved flips the recipe's saved flag and persists the new value. Two
// toggles restore the original state; callers holding stale lists must
// re-fetch to observe the change.
func (r *Repository) ToggleSaved(ctx context.Context, recipe *recipes.Recipe) error {
	recipe.Saved = !recipe.Saved
	if err := r.store.SetSaved(ctx, recipe.ID, recipe.Saved); err != nil {
		// Roll the in-memory flip back so the caller's view matches the store.
		recipe.Saved = !recipe.Saved
		return fmt.Errorf("persist favorite: %w", err)
	}
	r.logger.Debug("favorite toggled",
		logging.FieldRecipeID, recipe.ID,
		"saved", recipe.Saved)
	return nil
}

// savedFlag reads the overlay, degrading to "not saved" when the store
// misbehaves so a storage fault never takes down a catalog read.
func (r *Repository) savedFlag(ctx context.Context, id int) bool {
	saved, err := r.store.Saved(ctx, id)
	if err != nil {
		r.logger.Warn("favorite read failed, treating as unsaved",
			logging.FieldRecipeID, id,
			"error", err)
		return false
	}
	return saved
}
