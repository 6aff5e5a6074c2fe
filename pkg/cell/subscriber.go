package cell

import (
	"sync"
	"sync/atomic"
)

// Unsubscribe removes a subscription. Calling it more than once is a
// no-op; after the first call the subscription's callback is never
// invoked again, even by a notification pass already under way.
type Unsubscribe func()

// subscription is a single registered callback.
type subscription[T any] struct {
	id     uint64
	fn     func(T)
	active atomic.Bool
}

// subscribers is an ordered callback list shared by Value and Derived.
// Registration order defines notification order and is preserved across
// removals.
type subscribers[T any] struct {
	mu   sync.Mutex
	list []*subscription[T]
}

// add registers fn at the end of the list and returns its removal handle.
func (s *subscribers[T]) add(fn func(T)) Unsubscribe {
	sub := &subscription[T]{id: nextID(), fn: fn}
	sub.active.Store(true)

	s.mu.Lock()
	s.list = append(s.list, sub)
	s.mu.Unlock()

	return func() {
		// CAS makes the handle idempotent and stops any in-flight
		// notification pass from invoking this callback.
		if !sub.active.CompareAndSwap(true, false) {
			return
		}
		s.remove(sub.id)
	}
}

// remove compacts the list in place, preserving registration order for
// the remaining entries.
func (s *subscribers[T]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.list {
		if sub.id == id {
			s.list = append(s.list[:i], s.list[i+1:]...)
			return
		}
	}
}

// notify invokes every active subscriber with v, in registration order.
// It iterates a snapshot so subscribers may subscribe or unsubscribe
// (including themselves) during the pass; entries deactivated mid-pass
// are skipped.
func (s *subscribers[T]) notify(v T) {
	s.mu.Lock()
	snapshot := make([]*subscription[T], len(s.list))
	copy(snapshot, s.list)
	s.mu.Unlock()

	for _, sub := range snapshot {
		if sub.active.Load() {
			sub.fn(v)
		}
	}
}

// len reports the number of registered subscriptions.
func (s *subscribers[T]) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.list)
}
