package cell

import "sync/atomic"

// idCounter is the source of unique IDs for cells, effects, and
// subscriptions. IDs exist for debug naming and subscription bookkeeping;
// they carry no cross-process meaning.
var idCounter uint64

// nextID returns the next unique ID. IDs are monotonically increasing
// and never reused.
func nextID() uint64 {
	return atomic.AddUint64(&idCounter, 1)
}
