// Package inspect exposes registered cells over HTTP for debugging: a
// JSON snapshot of current values and a WebSocket stream of changes.
// Registration is explicit — there is no process-wide registry; create
// one per application and register the cells worth inspecting.
package inspect

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cellkit-dev/cellkit/pkg/cell"
)

// Registry holds named cells for inspection.
type Registry struct {
	mu    sync.RWMutex
	cells map[string]cell.Observable
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{cells: make(map[string]cell.Observable)}
}

// Register adds a cell under its debug name. Registering a second cell
// with the same name is an error.
func (r *Registry) Register(c cell.Observable) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := c.Name()
	if _, exists := r.cells[name]; exists {
		return fmt.Errorf("inspect: cell %q already registered", name)
	}
	r.cells[name] = c
	return nil
}

// Unregister removes the cell with the given name, if present.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cells, name)
}

// Get returns the registered cell with the given name.
func (r *Registry) Get(name string) (cell.Observable, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.cells[name]
	return c, ok
}

// Names lists registered cell names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.cells))
	for name := range r.cells {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns the current value of every registered cell.
func (r *Registry) Snapshot() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make(map[string]any, len(r.cells))
	for name, c := range r.cells {
		snapshot[name] = c.GetAny()
	}
	return snapshot
}

// watchAll subscribes fn to every currently registered cell and returns
// a handle removing all subscriptions. Cells registered afterwards are
// not watched; a streaming client reconnects to pick them up.
func (r *Registry) watchAll(fn func(name string, value any)) cell.Unsubscribe {
	r.mu.RLock()
	defer r.mu.RUnlock()

	unsubs := make([]cell.Unsubscribe, 0, len(r.cells))
	for name, c := range r.cells {
		name, c := name, c
		unsubs = append(unsubs, c.OnChange(func() {
			fn(name, c.GetAny())
		}))
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}
