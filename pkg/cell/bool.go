package cell

// BoolCell wraps Value[bool] with convenience methods for flags.
type BoolCell struct {
	*Value[bool]
}

// NewBool creates a BoolCell with the given initial value.
func NewBool(initial bool, opts ...Option[bool]) *BoolCell {
	return &BoolCell{NewValue(initial, opts...)}
}

// Toggle inverts the value.
func (c *BoolCell) Toggle() {
	c.Update(func(b bool) bool { return !b })
}

// SetTrue sets the value to true.
func (c *BoolCell) SetTrue() {
	c.Set(true)
}

// SetFalse sets the value to false.
func (c *BoolCell) SetFalse() {
	c.Set(false)
}
