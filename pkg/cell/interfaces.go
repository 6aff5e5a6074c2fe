package cell

// Source is any cell that can feed a Derived cell or an Effect; Value,
// Derived, and Persistent all qualify.
type Source interface {
	// OnChange registers a value-agnostic change callback and returns
	// its removal handle. The callback shares the cell's one subscriber
	// list with typed Subscribe callbacks, so ordering holds across
	// both kinds.
	OnChange(fn func()) Unsubscribe
}

// Readable exposes read-only access to a reactive value.
type Readable[T any] interface {
	Source

	// Get returns the current value. No side effects; never fails.
	Get() T

	// Subscribe registers fn to be called with each new value.
	Subscribe(fn func(T)) Unsubscribe
}

// Writable exposes read/write access to a reactive value.
type Writable[T any] interface {
	Readable[T]

	// Set replaces the value, notifying subscribers on real change.
	Set(v T)

	// Update replaces the value with fn(current).
	Update(fn func(T) T)
}

// Observable is the type-erased surface consumed by debug tooling such
// as the inspector. Value, Derived, and Persistent implement it.
type Observable interface {
	Source

	// Name returns the cell's debug name.
	Name() string

	// GetAny returns the current value as an any.
	GetAny() any
}
