package cell

// Op identifies the operation a trace Event describes.
type Op uint8

const (
	// OpSet is a Set or Update call on a Value or Persistent cell.
	// Emitted for every call, including ones suppressed by the equality
	// policy; Event.Changed distinguishes the two.
	OpSet Op = iota

	// OpRecompute is a Derived cell recomputation triggered by a source
	// notification.
	OpRecompute

	// OpHydrate is a Persistent cell reading its stored value during
	// construction.
	OpHydrate

	// OpPersist is a Persistent cell writing through to its adapter.
	OpPersist
)

// String returns the operation name for labels and log output.
func (o Op) String() string {
	switch o {
	case OpSet:
		return "set"
	case OpRecompute:
		return "recompute"
	case OpHydrate:
		return "hydrate"
	case OpPersist:
		return "persist"
	default:
		return "unknown"
	}
}

// Event is a trace record for a single cell operation. Events are
// delivered synchronously on the mutating goroutine, after the value is
// committed and before subscribers are notified.
type Event struct {
	// Cell is the cell's debug name.
	Cell string

	// Op is the operation that produced this event.
	Op Op

	// Prev and Next are the values before and after the operation.
	// For OpHydrate, Prev is the supplied default and Next the value the
	// cell settled on.
	Prev any
	Next any

	// Changed reports whether the operation survived the equality check
	// and subscribers were (or are about to be) notified.
	Changed bool

	// Err carries the persistence failure for OpHydrate and OpPersist
	// events; nil otherwise.
	Err error
}

// Hook receives trace events for a cell. Hooks observe; they cannot veto
// or alter the operation. A hook must not call Set on the cell it is
// observing from inside the hook body.
type Hook func(Event)

// Hooks fans an event out to several hooks in order. nil entries are
// skipped.
func Hooks(hooks ...Hook) Hook {
	return func(ev Event) {
		for _, h := range hooks {
			if h != nil {
				h(ev)
			}
		}
	}
}
