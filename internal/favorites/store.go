package favorites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"ladle/internal/config"
)

// ErrLocked is returned by Open when another process holds the store.
var ErrLocked = errors.New("favorites store is already in use")

const schema = `
CREATE TABLE IF NOT EXISTS favorites (
	recipe_id  INTEGER PRIMARY KEY,
	saved      INTEGER NOT NULL,
	updated_at TEXT NOT NULL
);`

// Store manages favorite flags backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the favorites database. It acquires an
// exclusive file lock to uphold the single-writer contract; a held lock
// yields ErrLocked.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.FavoritesDBPath()
	lock := flock.New(dbPath + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire favorites lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("create favorites schema: %w", err)
	}

	return &Store{db: db, path: dbPath, lock: lock}, nil
}

// Saved reports the stored flag for a recipe id. Ids never written read false.
func (s *Store) Saved(ctx context.Context, recipeID int) (bool, error) {
	var saved int
	err := s.db.QueryRowContext(ctx, `SELECT saved FROM favorites WHERE recipe_id = ?`, recipeID).Scan(&saved)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read favorite %d: %w", recipeID, err)
	}
	return saved != 0, nil
}

// SetSaved upserts the flag for a recipe id. The write is durable and visible
// to the next Saved call.
func (s *Store) SetSaved(ctx context.Context, recipeID int, saved bool) error {
	value := 0
	if saved {
		value = 1
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO favorites (recipe_id, saved, updated_at) VALUES (?, ?, ?)
ON CONFLICT(recipe_id) DO UPDATE SET saved = excluded.saved, updated_at = excluded.updated_at`,
		recipeID, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("write favorite %d: %w", recipeID, err)
	}
	return nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database and the file lock.
func (s *Store) Close() error {
	var errs []error
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		}
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil {
			errs = append(errs, fmt.Errorf("release lock: %w", err))
		}
	}
	return errors.Join(errs...)
}
