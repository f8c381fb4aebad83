package browse

import (
	"sync"

	"github.com/google/uuid"

	"ladle/internal/recipes"
)

// Snapshot is one published state of the visible recipe list. Sequence
// numbers increase per publish so consumers can tell fresh results from
// superseded ones.
type Snapshot struct {
	Sequence uint64
	Recipes  []recipes.Recipe
}

// hub broadcasts snapshots to subscribers with latest-value-wins delivery.
type hub struct {
	mu          sync.Mutex
	nextSeq     uint64
	subscribers map[uuid.UUID]chan Snapshot
}

func newHub() *hub {
	return &hub{subscribers: make(map[uuid.UUID]chan Snapshot)}
}

// publish hands the list to every subscriber. A subscriber that has not
// consumed the previous snapshot loses it; only the newest value stays
// buffered.
func (h *hub) publish(entries []recipes.Recipe) Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextSeq++
	snap := Snapshot{Sequence: h.nextSeq, Recipes: entries}
	for _, ch := range h.subscribers {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
	return snap
}

func (h *hub) subscribe(id uuid.UUID) chan Snapshot {
	ch := make(chan Snapshot, 1)
	h.mu.Lock()
	h.subscribers[id] = ch
	h.mu.Unlock()
	return ch
}

func (h *hub) unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	ch, ok := h.subscribers[id]
	if ok {
		delete(h.subscribers, id)
	}
	h.mu.Unlock()
	if ok {
		close(ch)
	}
}
