package cell

import "testing"

func TestEffectRunsImmediately(t *testing.T) {
	count := NewValue(0)
	runs := 0

	e := NewEffect(func() { runs++ }, count)
	defer e.Stop()

	if runs != 1 {
		t.Errorf("expected immediate run, got %d", runs)
	}
}

func TestDeferredEffectWaitsForChange(t *testing.T) {
	count := NewValue(0)
	runs := 0

	e := NewDeferredEffect(func() { runs++ }, count)
	defer e.Stop()

	if runs != 0 {
		t.Errorf("deferred effect must not run at construction, got %d", runs)
	}

	count.Set(1)
	if runs != 1 {
		t.Errorf("expected 1 run after change, got %d", runs)
	}
}

func TestEffectLifecycle(t *testing.T) {
	count := NewValue(0)
	runs := 0

	e := NewDeferredEffect(func() { runs++ }, count)

	count.Set(1)
	if runs != 1 {
		t.Fatalf("expected 1 run, got %d", runs)
	}

	e.Stop()
	count.Set(2)
	if runs != 1 {
		t.Errorf("stopped effect fired, runs = %d", runs)
	}
	if e.Active() {
		t.Errorf("Active() should be false after Stop")
	}
}

func TestEffectStopIdempotent(t *testing.T) {
	count := NewValue(0)
	e := NewDeferredEffect(func() {}, count)
	e.Stop()
	e.Stop() // must not panic or double-remove
}

func TestEffectMultipleSources(t *testing.T) {
	a := NewValue(0)
	b := NewValue(0)
	runs := 0

	e := NewDeferredEffect(func() { runs++ }, a, b)
	defer e.Stop()

	a.Set(1)
	b.Set(1)
	if runs != 2 {
		t.Errorf("expected one run per source change, got %d", runs)
	}

	// Suppressed writes don't fire the effect.
	a.Set(1)
	if runs != 2 {
		t.Errorf("no-op set fired the effect, runs = %d", runs)
	}
}

func TestEffectStopFromInsideCallback(t *testing.T) {
	count := NewValue(0)
	runs := 0

	var e *Effect
	e = NewDeferredEffect(func() {
		runs++
		e.Stop()
	}, count)

	count.Set(1)
	count.Set(2)
	if runs != 1 {
		t.Errorf("effect stopped inside callback still fired, runs = %d", runs)
	}
}

func TestWatch(t *testing.T) {
	count := NewValue(10)
	var seen []int

	e := Watch[int](count, func(v int) { seen = append(seen, v) })
	defer e.Stop()

	count.Set(20)

	if len(seen) != 2 || seen[0] != 10 || seen[1] != 20 {
		t.Errorf("expected [10 20], got %v", seen)
	}
}

func TestWatchChanges(t *testing.T) {
	count := NewValue(10)
	var seen []int

	e := WatchChanges[int](count, func(v int) { seen = append(seen, v) })

	count.Set(20)
	e.Stop()
	count.Set(30)

	if len(seen) != 1 || seen[0] != 20 {
		t.Errorf("expected [20], got %v", seen)
	}
}

func TestWatchDerived(t *testing.T) {
	n := NewValue(2)
	double := NewDerived(func() int { return n.Get() * 2 }, n)
	var seen []int

	e := WatchChanges[int](double, func(v int) { seen = append(seen, v) })
	defer e.Stop()

	n.Set(5)
	if len(seen) != 1 || seen[0] != 10 {
		t.Errorf("expected [10], got %v", seen)
	}
}
