package cell

import "encoding/json"

// Adapter is the key/value storage contract consumed by Persistent
// cells. A memory map, a file-backed store, or a remote object store may
// all satisfy it; implementations live outside this package.
//
// Read reports ok=false for a missing key without error. Write replaces
// the stored value.
type Adapter interface {
	Read(key string) (data []byte, ok bool, err error)
	Write(key string, data []byte) error
}

// Persistent is a Value that rehydrates from an Adapter on construction
// and writes through on every committed change. Values are serialized as
// JSON.
//
// Write ordering: the adapter write happens before subscriber
// notification, so a subscriber reading storage observes the new value.
// A failed write is non-fatal: the in-memory value is still committed
// and subscribers are still notified; the failure is reported through
// the WithOnPersistError callback and the trace hook. No retries.
type Persistent[T any] struct {
	*Value[T]

	adapter Adapter
	key     string
	onErr   func(*PersistError)
}

// NewPersistent creates a persistent cell for key. If the adapter holds
// a value for key and it deserializes into T, the cell starts with it;
// otherwise the cell starts with initial and writes it through
// immediately. Hydration failure never aborts construction: the cell
// falls back to initial and the failure is reported through the
// WithOnPersistError callback as a read error.
func NewPersistent[T any](adapter Adapter, key string, initial T, opts ...Option[T]) *Persistent[T] {
	id := nextID()
	c := resolve(id, opts)
	p := &Persistent[T]{
		Value: &Value[T]{
			id:    id,
			name:  c.name,
			value: initial,
			equal: c.equal,
			hook:  c.hook,
		},
		adapter: adapter,
		key:     key,
		onErr:   c.onPersist,
	}
	p.hydrate(initial)
	return p
}

// Set replaces the value with write-through. Same equality and
// notification discipline as Value.Set.
func (p *Persistent[T]) Set(next T) {
	prev, changed := p.commit(next)
	p.emit(Event{Cell: p.name, Op: OpSet, Prev: prev, Next: next, Changed: changed})
	if changed {
		p.persist(next)
		p.subs.notify(next)
	}
}

// Update replaces the value with fn(current), with write-through.
func (p *Persistent[T]) Update(fn func(T) T) {
	prev, next, changed := p.commitUpdate(fn)
	p.emit(Event{Cell: p.name, Op: OpSet, Prev: prev, Next: next, Changed: changed})
	if changed {
		p.persist(next)
		p.subs.notify(next)
	}
}

// SetAny sets the value from an any, with write-through.
func (p *Persistent[T]) SetAny(value any) error {
	typed, ok := value.(T)
	if !ok {
		return p.Value.SetAny(value) // produces the TypeMismatchError
	}
	p.Set(typed)
	return nil
}

// Key returns the storage key.
func (p *Persistent[T]) Key() string {
	return p.key
}

// hydrate resolves the cell's starting value against storage. The cell
// has no subscribers yet, so no notification discipline applies here.
func (p *Persistent[T]) hydrate(initial T) {
	data, ok, err := p.adapter.Read(p.key)
	if err != nil {
		p.report("read", err)
		p.emit(Event{Cell: p.name, Op: OpHydrate, Prev: initial, Next: initial, Err: err})
		p.persist(initial)
		return
	}
	if ok {
		var stored T
		err := json.Unmarshal(data, &stored)
		if err == nil {
			p.mu.Lock()
			p.value = stored
			p.mu.Unlock()
			p.emit(Event{Cell: p.name, Op: OpHydrate, Prev: initial, Next: stored, Changed: true})
			return
		}
		// Stored bytes don't deserialize into T: reported like an
		// adapter read failure, then fall back and overwrite them.
		p.report("read", err)
		p.emit(Event{Cell: p.name, Op: OpHydrate, Prev: initial, Next: initial, Err: err})
		p.persist(initial)
		return
	}
	p.emit(Event{Cell: p.name, Op: OpHydrate, Prev: initial, Next: initial})
	p.persist(initial)
}

// persist writes v through to the adapter, reporting failure without
// affecting the reactive contract.
func (p *Persistent[T]) persist(v T) {
	data, err := json.Marshal(v)
	if err == nil {
		err = p.adapter.Write(p.key, data)
	}
	if err != nil {
		p.report("write", err)
		p.emit(Event{Cell: p.name, Op: OpPersist, Next: v, Err: err})
		return
	}
	p.emit(Event{Cell: p.name, Op: OpPersist, Next: v, Changed: true})
}

func (p *Persistent[T]) report(op string, err error) {
	if p.onErr != nil {
		p.onErr(&PersistError{Op: op, Key: p.key, Err: err})
	}
}

var _ Writable[int] = (*Persistent[int])(nil)
var _ Observable = (*Persistent[int])(nil)
