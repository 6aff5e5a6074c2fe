package cell

import (
	"sync"
	"sync/atomic"
)

// Effect subscribes a side-effect callback to one or more cells and
// invokes it once per surviving change on each watched cell,
// synchronously, in the cell's subscriber order. The caller owns the
// effect's lifecycle and releases it with Stop.
type Effect struct {
	id uint64

	// fn is the side-effect callback.
	fn func()

	// stopped gates execution. A callback already on the call stack when
	// Stop is called completes normally; only future notifications are
	// suppressed.
	stopped atomic.Bool

	unsubs   []Unsubscribe
	stopOnce sync.Once
}

// NewEffect subscribes fn to every source and invokes it once
// immediately with the sources' current state.
func NewEffect(fn func(), sources ...Source) *Effect {
	e := newEffect(fn, sources)
	e.invoke()
	return e
}

// NewDeferredEffect subscribes fn to every source without the immediate
// first run; fn fires only when a watched cell changes.
func NewDeferredEffect(fn func(), sources ...Source) *Effect {
	return newEffect(fn, sources)
}

func newEffect(fn func(), sources []Source) *Effect {
	e := &Effect{
		id: nextID(),
		fn: fn,
	}
	for _, src := range sources {
		if src == nil {
			continue
		}
		e.unsubs = append(e.unsubs, src.OnChange(e.invoke))
	}
	return e
}

// ID returns the effect's unique identifier.
func (e *Effect) ID() uint64 {
	return e.id
}

// Active reports whether the effect will still fire on changes.
func (e *Effect) Active() bool {
	return !e.stopped.Load()
}

// Stop removes the effect's registrations from every watched cell. No
// callback fires after Stop returns, even for notification passes
// already snapshotted. Idempotent.
func (e *Effect) Stop() {
	e.stopOnce.Do(func() {
		e.stopped.Store(true)
		for _, unsub := range e.unsubs {
			unsub()
		}
		e.unsubs = nil
	})
}

func (e *Effect) invoke() {
	if e.stopped.Load() {
		return
	}
	e.fn()
}

// Watch subscribes fn to a single cell and invokes it with each new
// value, starting immediately with the current one. It is the typed
// convenience over NewEffect for the common one-cell case:
//
//	e := cell.Watch(count, func(n int) { fmt.Println("count:", n) })
//	defer e.Stop()
func Watch[T any](c Readable[T], fn func(T)) *Effect {
	e := &Effect{id: nextID()}
	e.fn = func() { fn(c.Get()) }
	e.unsubs = append(e.unsubs, c.Subscribe(func(v T) {
		if !e.stopped.Load() {
			fn(v)
		}
	}))
	e.invoke()
	return e
}

// WatchChanges is Watch without the immediate first call; fn fires only
// on changes.
func WatchChanges[T any](c Readable[T], fn func(T)) *Effect {
	e := &Effect{id: nextID()}
	e.fn = func() { fn(c.Get()) }
	e.unsubs = append(e.unsubs, c.Subscribe(func(v T) {
		if !e.stopped.Load() {
			fn(v)
		}
	}))
	return e
}
