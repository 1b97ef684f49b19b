package imaging

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Registry keeps open handles by id so they can be addressed across calls.
//
// Registry is safe for concurrent use. The handles it stores are not; callers
// that share a handle between goroutines must serialize access to it.
type Registry struct {
	mu      sync.RWMutex
	handles map[string]*Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handles: make(map[string]*Handle),
	}
}

// Add stores h under a new random id and returns the id.
func (r *Registry) Add(h *Handle) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.handles[id] = h
	r.mu.Unlock()
	return id
}

// Get returns the handle stored under id.
func (r *Registry) Get(id string) (*Handle, error) {
	r.mu.RLock()
	h, ok := r.handles[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: unknown handle %q", ErrNotLoaded, id)
	}
	return h, nil
}

// Release releases the handle stored under id and forgets it.
func (r *Registry) Release(id string) error {
	r.mu.Lock()
	h, ok := r.handles[id]
	delete(r.handles, id)
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: unknown handle %q", ErrNotLoaded, id)
	}
	h.ClearErr()
	return h.Release().Err()
}

// Clear releases every handle and empties the registry.
func (r *Registry) Clear() {
	r.mu.Lock()
	handles := r.handles
	r.handles = make(map[string]*Handle)
	r.mu.Unlock()

	for _, h := range handles {
		if h.state == stateLoaded {
			h.Release()
		}
	}
}

// Len returns the number of stored handles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handles)
}
