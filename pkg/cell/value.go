package cell

import (
	"fmt"
	"sync"
)

// Value is a reactive value container. Writes that survive the cell's
// equality policy are pushed synchronously to every subscriber in
// registration order.
type Value[T any] struct {
	id   uint64
	name string

	// value is the current cell value.
	value T

	// mu protects value.
	mu sync.RWMutex

	// equal gates writes. nil means defaultEqual.
	equal Equal[T]

	// hook receives trace events, if set.
	hook Hook

	subs subscribers[T]
}

// NewValue creates a cell holding initial.
func NewValue[T any](initial T, opts ...Option[T]) *Value[T] {
	id := nextID()
	c := resolve(id, opts)
	return &Value[T]{
		id:    id,
		name:  c.name,
		value: initial,
		equal: c.equal,
		hook:  c.hook,
	}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set replaces the value. If the new value equals the current one under
// the cell's equality policy, nothing is committed and no subscriber is
// invoked. Otherwise the value is assigned and every subscriber is
// called with it, synchronously, in registration order.
func (v *Value[T]) Set(next T) {
	prev, changed := v.commit(next)
	v.emit(Event{Cell: v.name, Op: OpSet, Prev: prev, Next: next, Changed: changed})
	if changed {
		v.subs.notify(next)
	}
}

// Update replaces the value with fn(current), applying the same equality
// and notification discipline as Set. fn runs with the cell locked and
// must not call back into the cell.
func (v *Value[T]) Update(fn func(T) T) {
	prev, next, changed := v.commitUpdate(fn)
	v.emit(Event{Cell: v.name, Op: OpSet, Prev: prev, Next: next, Changed: changed})
	if changed {
		v.subs.notify(next)
	}
}

// Subscribe registers fn at the end of the subscriber list and returns
// its removal handle. The handle is idempotent; once called, fn is never
// invoked again, even by a notification pass already in progress.
func (v *Value[T]) Subscribe(fn func(T)) Unsubscribe {
	return v.subs.add(fn)
}

// Name returns the cell's debug name.
func (v *Value[T]) Name() string {
	return v.name
}

// ID returns the cell's unique identifier.
func (v *Value[T]) ID() uint64 {
	return v.id
}

// GetAny returns the current value as an any. Part of the Observable
// surface consumed by debug tooling.
func (v *Value[T]) GetAny() any {
	return v.Get()
}

// SetAny sets the value from an any, returning *TypeMismatchError when
// the dynamic type does not match T.
func (v *Value[T]) SetAny(value any) error {
	typed, ok := value.(T)
	if !ok {
		var zero T
		return &TypeMismatchError{
			Cell: v.name,
			Want: fmt.Sprintf("%T", zero),
			Got:  fmt.Sprintf("%T", value),
		}
	}
	v.Set(typed)
	return nil
}

// OnChange registers a value-agnostic change callback. It implements
// Source; Derived cells, Effects, and debug tooling subscribe through
// it.
func (v *Value[T]) OnChange(fn func()) Unsubscribe {
	return v.subs.add(func(T) { fn() })
}

// commit assigns next if it differs from the current value under the
// equality policy. The deferred unlock keeps the cell usable when a
// custom equality function panics; the value is untouched in that case.
func (v *Value[T]) commit(next T) (prev T, changed bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	prev = v.value
	if v.equals(prev, next) {
		return prev, false
	}
	v.value = next
	return prev, true
}

// commitUpdate is commit for the function form of Set.
func (v *Value[T]) commitUpdate(fn func(T) T) (prev, next T, changed bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	prev = v.value
	next = fn(prev)
	if v.equals(prev, next) {
		return prev, next, false
	}
	v.value = next
	return prev, next, true
}

// emit delivers a trace event if a hook is attached.
func (v *Value[T]) emit(ev Event) {
	if v.hook != nil {
		v.hook(ev)
	}
}

// equals applies the configured equality policy.
func (v *Value[T]) equals(a, b T) bool {
	if v.equal != nil {
		return v.equal(a, b)
	}
	return defaultEqual(a, b)
}

var _ Writable[int] = (*Value[int])(nil)
var _ Observable = (*Value[int])(nil)
