package cell

// SliceCell wraps Value[[]T] with copy-on-write slice operations. Like
// MapCell, mutations build a fresh slice rather than editing the backing
// array of a value someone may have read.
type SliceCell[T any] struct {
	*Value[[]T]
}

// NewSlice creates a SliceCell. A nil initial slice becomes an empty one.
func NewSlice[T any](initial []T, opts ...Option[[]T]) *SliceCell[T] {
	if initial == nil {
		initial = []T{}
	}
	return &SliceCell[T]{NewValue(initial, opts...)}
}

// Append adds items to the end of the slice.
func (c *SliceCell[T]) Append(items ...T) {
	c.Update(func(current []T) []T {
		next := make([]T, 0, len(current)+len(items))
		next = append(next, current...)
		return append(next, items...)
	})
}

// RemoveAt removes the item at index i. Out-of-range indexes commit no
// change.
func (c *SliceCell[T]) RemoveAt(i int) {
	c.Update(func(current []T) []T {
		if i < 0 || i >= len(current) {
			return current
		}
		next := make([]T, 0, len(current)-1)
		next = append(next, current[:i]...)
		return append(next, current[i+1:]...)
	})
}

// SetAt replaces the item at index i. Out-of-range indexes commit no
// change.
func (c *SliceCell[T]) SetAt(i int, item T) {
	c.Update(func(current []T) []T {
		if i < 0 || i >= len(current) {
			return current
		}
		next := make([]T, len(current))
		copy(next, current)
		next[i] = item
		return next
	})
}

// Filter keeps only items for which keep returns true.
func (c *SliceCell[T]) Filter(keep func(T) bool) {
	c.Update(func(current []T) []T {
		next := make([]T, 0, len(current))
		for _, item := range current {
			if keep(item) {
				next = append(next, item)
			}
		}
		return next
	})
}

// Len returns the number of items.
func (c *SliceCell[T]) Len() int {
	return len(c.Get())
}

// Clear removes all items.
func (c *SliceCell[T]) Clear() {
	c.Set([]T{})
}
