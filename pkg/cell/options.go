package cell

import "fmt"

// Option configures a Value or Persistent cell at construction time.
type Option[T any] func(*config[T])

// config holds resolved construction options.
type config[T any] struct {
	name      string
	equal     Equal[T]
	hook      Hook
	onPersist func(*PersistError)
}

// WithName sets the cell's debug name, used in trace events, error
// messages, and the inspector. The default is "cell-<id>" from a
// package-local counter.
func WithName[T any](name string) Option[T] {
	return func(c *config[T]) {
		c.name = name
	}
}

// WithEquals sets the cell's equality policy. The default uses == for
// primitive types and reflect.DeepEqual for everything else.
func WithEquals[T any](fn Equal[T]) Option[T] {
	return func(c *config[T]) {
		c.equal = fn
	}
}

// WithHook attaches a trace hook receiving an Event for every operation
// on the cell. See Hook for delivery guarantees.
func WithHook[T any](h Hook) Option[T] {
	return func(c *config[T]) {
		c.hook = h
	}
}

// WithOnPersistError sets the callback invoked when a Persistent cell's
// hydration or write-through fails. Without it, persistence failures are
// only visible through the trace hook. Ignored on plain Value cells.
func WithOnPersistError[T any](fn func(*PersistError)) Option[T] {
	return func(c *config[T]) {
		c.onPersist = fn
	}
}

// resolve applies opts and fills defaults.
func resolve[T any](id uint64, opts []Option[T]) config[T] {
	var c config[T]
	for _, opt := range opts {
		opt(&c)
	}
	if c.name == "" {
		c.name = fmt.Sprintf("cell-%d", id)
	}
	return c
}
