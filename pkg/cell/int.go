package cell

// IntCell wraps Value[int] with convenience methods for counters.
type IntCell struct {
	*Value[int]
}

// NewInt creates an IntCell with the given initial value.
func NewInt(initial int, opts ...Option[int]) *IntCell {
	return &IntCell{NewValue(initial, opts...)}
}

// Inc increments the value by 1.
func (c *IntCell) Inc() {
	c.Update(func(n int) int { return n + 1 })
}

// Dec decrements the value by 1.
func (c *IntCell) Dec() {
	c.Update(func(n int) int { return n - 1 })
}

// Add adds n to the value.
func (c *IntCell) Add(n int) {
	c.Update(func(v int) int { return v + n })
}

// Sub subtracts n from the value.
func (c *IntCell) Sub(n int) {
	c.Update(func(v int) int { return v - n })
}
