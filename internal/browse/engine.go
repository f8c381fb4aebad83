package browse

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"ladle/internal/library"
	"ladle/internal/logging"
	"ladle/internal/recipes"
)

// Engine combines the filter criteria with the repository and re-derives the
// visible recipe list whenever any criterion changes.
//
// One engine belongs to one logical owner (a screen session); the criteria
// are only ever written by that owner, while subscribers may consume
// snapshots from anywhere.
type Engine struct {
	mu       sync.Mutex
	repo     *library.Repository
	criteria Criteria
	hub      *hub
	logger   *slog.Logger
}

// NewEngine builds an engine over the repository. The logger may be nil.
func NewEngine(repo *library.Repository, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{
		repo: repo,
		hub:  newHub(),
		logger: logger.With(
			logging.FieldComponent, "browse",
			logging.FieldSessionID, uuid.NewString()),
	}
}

// SetCategory sets or clears the category criterion and recomputes. Nil
// means no category filter.
func (e *Engine) SetCategory(ctx context.Context, category *string) ([]recipes.Recipe, error) {
	e.mu.Lock()
	e.criteria.Category = category
	e.mu.Unlock()
	return e.recompute(ctx)
}

// SetSearchQuery sets the free-text criterion and recomputes. Empty means no
// text filter.
func (e *Engine) SetSearchQuery(ctx context.Context, query string) ([]recipes.Recipe, error) {
	e.mu.Lock()
	e.criteria.Query = query
	e.mu.Unlock()
	return e.recompute(ctx)
}

// SetVegetarian sets or clears the vegetarian criterion and recomputes. Nil
// means no vegetarian filter.
func (e *Engine) SetVegetarian(ctx context.Context, vegetarian *bool) ([]recipes.Recipe, error) {
	e.mu.Lock()
	e.criteria.Vegetarian = vegetarian
	e.mu.Unlock()
	return e.recompute(ctx)
}

// Reset clears all three criteria, as when the owning screen navigates home.
func (e *Engine) Reset(ctx context.Context) ([]recipes.Recipe, error) {
	e.mu.Lock()
	e.criteria = Criteria{}
	e.mu.Unlock()
	return e.recompute(ctx)
}

// Criteria returns the current criteria values.
func (e *Engine) Criteria() Criteria {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.criteria
}

// Visible recomputes and returns the currently visible list without touching
// the criteria. Repository failures propagate to the caller.
func (e *Engine) Visible(ctx context.Context) ([]recipes.Recipe, error) {
	return e.recompute(ctx)
}

// VisibleByID looks a recipe up in the already-filtered visible list. A
// recipe hidden by the active criteria (or absent entirely) yields nil with
// no error; use Repository.ByID for the unfiltered catalog lookup.
func (e *Engine) VisibleByID(ctx context.Context, id int) (*recipes.Recipe, error) {
	visible, err := e.Visible(ctx)
	if err != nil {
		return nil, err
	}
	for i := range visible {
		if visible[i].ID == id {
			entry := visible[i].Clone()
			return &entry, nil
		}
	}
	return nil, nil
}

// Subscription delivers visible-list snapshots to one consumer.
type Subscription struct {
	id     uuid.UUID
	ch     chan Snapshot
	engine *Engine
	once   sync.Once
}

// Updates returns the snapshot channel. It is closed when the subscription
// ends.
func (s *Subscription) Updates() <-chan Snapshot {
	return s.ch
}

// Close detaches the subscription from the engine.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.engine.hub.unsubscribe(s.id)
	})
}

// Subscribe registers a consumer for recomputed lists. The subscription ends
// when Close is called or ctx is cancelled; an abandoned consumer costs the
// engine nothing beyond one buffered snapshot.
func (e *Engine) Subscribe(ctx context.Context) *Subscription {
	sub := &Subscription{
		id:     uuid.New(),
		engine: e,
	}
	sub.ch = e.hub.subscribe(sub.id)
	if ctx != nil && ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			sub.Close()
		}()
	}
	return sub
}

// recompute reads the full list, applies the current criteria, and publishes
// the result. Only the most recent publish is guaranteed to reach consumers.
func (e *Engine) recompute(ctx context.Context) ([]recipes.Recipe, error) {
	e.mu.Lock()
	criteria := e.criteria
	e.mu.Unlock()

	entries, err := e.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	visible := criteria.Filter(entries)
	snap := e.hub.publish(visible)
	e.logger.Debug("visible list recomputed",
		"sequence", snap.Sequence,
		"total", len(entries),
		"visible", len(visible))
	return visible, nil
}
