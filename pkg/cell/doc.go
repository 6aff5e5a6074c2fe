// Package cell provides reactive value containers with synchronous
// change propagation.
//
// The model is explicit: cells do not track dependencies automatically.
// A Derived cell names its sources, and an Effect names the cells it
// watches. Subscribers are invoked synchronously, in registration order,
// on the goroutine that performed the write.
//
// # Core Types
//
// Value[T] holds a mutable value:
//
//	count := cell.NewValue(0)
//	count.Get()                                // read
//	count.Set(5)                               // write (notifies on change)
//	count.Update(func(n int) int { return n + 1 })
//
// Derived[T] is a read-only cell computed from source cells:
//
//	total := cell.NewDerived(func() int {
//	    return a.Get() + b.Get()
//	}, a, b)
//
// Effect runs a side-effect callback when watched cells change:
//
//	e := cell.NewEffect(func() {
//	    fmt.Println("count is", count.Get())
//	}, count)
//	defer e.Stop()
//
// Persistent[T] is a Value[T] that rehydrates from an Adapter on
// construction and writes through on every committed change:
//
//	theme := cell.NewPersistent[string](store, "theme", "light")
//
// # Change Detection
//
// A write only notifies subscribers when the new value is unequal to the
// current one under the cell's equality policy. The default policy uses
// == for primitive types and reflect.DeepEqual otherwise; see Identity,
// DeepEqual, and WithEquals.
//
// Callers must not mutate container values returned by Get in place:
// in-place mutation bypasses the equality check and breaks the
// notify-only-on-real-change contract. Use Update, or the copy-on-write
// helpers on MapCell and SliceCell.
//
// # Reentrancy
//
// Notification runs on the writer's call stack. A subscriber may call Set
// on the cell that is notifying it; the nested write performs its own
// full notification pass against the then-current subscriber list. There
// is no queueing or coalescing, so application code is responsible for
// ensuring such loops terminate (the equality gate stops loops that
// converge to a fixed point).
//
// # Thread Safety
//
// Cell state is mutex-guarded, so cells may be shared across goroutines,
// but propagation itself is synchronous: Set returns only after every
// subscriber, derived recomputation, and effect callback has completed.
package cell
