package testsupport

import (
	"testing"

	"ladle/internal/config"
	"ladle/internal/favorites"
)

// MustOpenStore opens a favorites.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *favorites.Store {
	t.Helper()

	store, err := favorites.Open(cfg)
	if err != nil {
		t.Fatalf("favorites.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
