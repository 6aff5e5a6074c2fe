package cell

// MapCell wraps Value[map[K]V] with copy-on-write map operations. Every
// mutation builds a fresh map, so the equality check sees a real change
// and callers holding the previous map are never surprised. This is the
// supported alternative to mutating a map returned by Get in place,
// which bypasses change detection.
type MapCell[K comparable, V any] struct {
	*Value[map[K]V]
}

// NewMap creates a MapCell. A nil initial map becomes an empty one.
func NewMap[K comparable, V any](initial map[K]V, opts ...Option[map[K]V]) *MapCell[K, V] {
	if initial == nil {
		initial = make(map[K]V)
	}
	return &MapCell[K, V]{NewValue(initial, opts...)}
}

// SetKey sets a key-value pair.
func (c *MapCell[K, V]) SetKey(key K, value V) {
	c.Update(func(m map[K]V) map[K]V {
		next := make(map[K]V, len(m)+1)
		for k, v := range m {
			next[k] = v
		}
		next[key] = value
		return next
	})
}

// RemoveKey removes a key. No change is committed if the key is absent.
func (c *MapCell[K, V]) RemoveKey(key K) {
	c.Update(func(m map[K]V) map[K]V {
		if _, ok := m[key]; !ok {
			return m
		}
		next := make(map[K]V, len(m))
		for k, v := range m {
			if k != key {
				next[k] = v
			}
		}
		return next
	})
}

// UpdateKey replaces the value for key with fn(current). Does nothing if
// the key is absent.
func (c *MapCell[K, V]) UpdateKey(key K, fn func(V) V) {
	c.Update(func(m map[K]V) map[K]V {
		v, ok := m[key]
		if !ok {
			return m
		}
		next := make(map[K]V, len(m))
		for k, val := range m {
			next[k] = val
		}
		next[key] = fn(v)
		return next
	})
}

// GetKey returns the value for key and whether it exists.
func (c *MapCell[K, V]) GetKey(key K) (V, bool) {
	v, ok := c.Get()[key]
	return v, ok
}

// HasKey reports whether key exists.
func (c *MapCell[K, V]) HasKey(key K) bool {
	_, ok := c.GetKey(key)
	return ok
}

// Len returns the number of keys.
func (c *MapCell[K, V]) Len() int {
	return len(c.Get())
}

// Clear removes all keys.
func (c *MapCell[K, V]) Clear() {
	c.Set(make(map[K]V))
}
