package cell

import "fmt"

// PersistError reports a persistence failure on a Persistent cell.
// Persistence failures are non-fatal: the in-memory value and subscriber
// notifications are unaffected, and no retry is performed.
type PersistError struct {
	// Op is "read" (hydration) or "write" (write-through).
	Op string

	// Key is the storage key involved.
	Key string

	// Err is the underlying adapter or serialization error.
	Err error
}

// Error implements the error interface.
func (e *PersistError) Error() string {
	return fmt.Sprintf("cell: persist %s %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *PersistError) Unwrap() error {
	return e.Err
}

// TypeMismatchError is returned by SetAny when the supplied value's
// dynamic type does not match the cell's value type.
type TypeMismatchError struct {
	// Cell is the cell's debug name.
	Cell string

	// Want and Got are the expected and supplied type names.
	Want string
	Got  string
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cell: %s: cannot set %s value on %s cell", e.Cell, e.Got, e.Want)
}
