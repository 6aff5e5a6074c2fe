package cell

import "testing"

func TestIntCell(t *testing.T) {
	n := NewInt(0)
	n.Inc()
	n.Inc()
	n.Dec()
	n.Add(10)
	n.Sub(4)
	if n.Get() != 7 {
		t.Errorf("expected 7, got %d", n.Get())
	}
}

func TestBoolCell(t *testing.T) {
	b := NewBool(false)
	calls := 0
	b.Subscribe(func(bool) { calls++ })

	b.Toggle()
	if !b.Get() {
		t.Errorf("expected true after toggle")
	}
	b.SetTrue() // no-op
	if calls != 1 {
		t.Errorf("SetTrue on true value should not notify, got %d calls", calls)
	}
	b.SetFalse()
	if b.Get() || calls != 2 {
		t.Errorf("expected false with 2 calls, got %v / %d", b.Get(), calls)
	}
}

func TestMapCellCopyOnWrite(t *testing.T) {
	users := NewMap[string, int](nil)
	users.SetKey("alice", 1)

	before := users.Get()
	users.SetKey("bob", 2)

	// The earlier snapshot must be untouched.
	if len(before) != 1 {
		t.Errorf("previous snapshot mutated: %v", before)
	}
	if users.Len() != 2 {
		t.Errorf("expected 2 keys, got %d", users.Len())
	}
	if v, ok := users.GetKey("bob"); !ok || v != 2 {
		t.Errorf("GetKey(bob) = %d, %v", v, ok)
	}
}

func TestMapCellRemoveAbsentKeyIsNoOp(t *testing.T) {
	users := NewMap[string, int](map[string]int{"alice": 1})
	calls := 0
	users.Subscribe(func(map[string]int) { calls++ })

	users.RemoveKey("bob")
	if calls != 0 {
		t.Errorf("removing absent key should not notify, got %d", calls)
	}

	users.RemoveKey("alice")
	if calls != 1 || users.HasKey("alice") {
		t.Errorf("expected alice removed with 1 notification, calls=%d", calls)
	}
}

func TestMapCellUpdateKey(t *testing.T) {
	scores := NewMap[string, int](map[string]int{"a": 1})
	scores.UpdateKey("a", func(n int) int { return n + 10 })
	scores.UpdateKey("missing", func(n int) int { return n + 10 })

	if v, _ := scores.GetKey("a"); v != 11 {
		t.Errorf("expected 11, got %d", v)
	}
	if scores.Len() != 1 {
		t.Errorf("UpdateKey on missing key must not insert, len=%d", scores.Len())
	}
}

func TestSliceCell(t *testing.T) {
	items := NewSlice[int](nil)
	items.Append(1, 2, 3)

	before := items.Get()
	items.SetAt(1, 20)
	if before[1] != 2 {
		t.Errorf("previous snapshot mutated: %v", before)
	}

	items.RemoveAt(0)
	items.Filter(func(n int) bool { return n > 3 })

	got := items.Get()
	if len(got) != 1 || got[0] != 20 {
		t.Errorf("expected [20], got %v", got)
	}

	items.Clear()
	if items.Len() != 0 {
		t.Errorf("expected empty after Clear, got %v", items.Get())
	}
}

func TestSliceCellOutOfRangeIsNoOp(t *testing.T) {
	items := NewSlice([]int{1})
	calls := 0
	items.Subscribe(func([]int) { calls++ })

	items.RemoveAt(5)
	items.SetAt(-1, 9)
	if calls != 0 {
		t.Errorf("out-of-range ops should not notify, got %d", calls)
	}
}
