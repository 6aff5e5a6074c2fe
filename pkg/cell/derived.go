package cell

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Derived is a read-only cell whose value is computed from one or more
// source cells. It recomputes eagerly and synchronously on every source
// notification, re-invoking compute against the current values of all
// sources, then applies the same equality-check/notify discipline as
// Value. There is no coalescing: two source writes in a row mean two
// recomputations.
type Derived[T any] struct {
	id   uint64
	name string

	// compute produces the cell's value from its sources. It must be
	// pure. A panic propagates to the caller of the triggering Set and
	// leaves the cached value at its last good state.
	compute func() T

	// value is the last successfully computed value.
	value T

	// mu protects value.
	mu sync.RWMutex

	equal Equal[T]
	hook  Hook

	subs subscribers[T]

	// computing suppresses re-entrant recomputation when sources are
	// wired in a cycle.
	computing atomic.Bool

	// unsubs detach this cell from its sources on Stop.
	unsubs   []Unsubscribe
	stopOnce sync.Once
}

// NewDerived creates a derived cell over the given sources, computing an
// initial value immediately. Configuration uses the chaining methods
// WithName, WithEquals, and WithHook, applied before the first source
// write:
//
//	total := cell.NewDerived(func() int {
//	    return a.Get() + b.Get()
//	}, a, b).WithName("total")
func NewDerived[T any](compute func() T, sources ...Source) *Derived[T] {
	id := nextID()
	d := &Derived[T]{
		id:      id,
		name:    fmt.Sprintf("cell-%d", id),
		compute: compute,
		value:   compute(),
	}
	for _, src := range sources {
		if src == nil {
			continue
		}
		d.unsubs = append(d.unsubs, src.OnChange(d.recompute))
	}
	return d
}

// WithName sets the cell's debug name and returns the cell.
func (d *Derived[T]) WithName(name string) *Derived[T] {
	d.name = name
	return d
}

// WithEquals sets the equality policy gating downstream notification and
// returns the cell.
func (d *Derived[T]) WithEquals(fn Equal[T]) *Derived[T] {
	d.equal = fn
	return d
}

// WithHook attaches a trace hook and returns the cell.
func (d *Derived[T]) WithHook(h Hook) *Derived[T] {
	d.hook = h
	return d
}

// Get returns the last computed value.
func (d *Derived[T]) Get() T {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.value
}

// Subscribe registers fn to be called with each recomputed value that
// survives the equality check. Same ordering and handle semantics as
// Value.Subscribe.
func (d *Derived[T]) Subscribe(fn func(T)) Unsubscribe {
	return d.subs.add(fn)
}

// Name returns the cell's debug name.
func (d *Derived[T]) Name() string {
	return d.name
}

// ID returns the cell's unique identifier.
func (d *Derived[T]) ID() uint64 {
	return d.id
}

// GetAny returns the current value as an any.
func (d *Derived[T]) GetAny() any {
	return d.Get()
}

// Stop detaches the cell from its sources. The cell keeps its last value
// and stops recomputing. Idempotent. A bare Derived that is simply
// dropped is reclaimed by the garbage collector along with its sources;
// Stop is only needed when the sources outlive the derived cell.
func (d *Derived[T]) Stop() {
	d.stopOnce.Do(func() {
		for _, unsub := range d.unsubs {
			unsub()
		}
		d.unsubs = nil
	})
}

// OnChange registers a value-agnostic change callback. It implements
// Source, allowing derived cells to feed other derived cells and
// effects.
func (d *Derived[T]) OnChange(fn func()) Unsubscribe {
	return d.subs.add(func(T) { fn() })
}

// recompute runs on every source notification.
func (d *Derived[T]) recompute() {
	// A recompute triggered from within this cell's own propagation
	// means the sources form a cycle; running it would recurse forever.
	if !d.computing.CompareAndSwap(false, true) {
		return
	}

	var next T
	func() {
		// Reset the guard even when compute panics, so the cell stays
		// usable at its last good value.
		defer d.computing.Store(false)
		next = d.compute()
	}()

	prev, changed := d.commit(next)
	if d.hook != nil {
		d.hook(Event{Cell: d.name, Op: OpRecompute, Prev: prev, Next: next, Changed: changed})
	}
	if changed {
		d.subs.notify(next)
	}
}

func (d *Derived[T]) commit(next T) (prev T, changed bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	prev = d.value
	if d.equals(prev, next) {
		return prev, false
	}
	d.value = next
	return prev, true
}

func (d *Derived[T]) equals(a, b T) bool {
	if d.equal != nil {
		return d.equal(a, b)
	}
	return defaultEqual(a, b)
}

var _ Readable[int] = (*Derived[int])(nil)
var _ Observable = (*Derived[int])(nil)
