package storage

import (
	"testing"

	"github.com/cellkit-dev/cellkit/pkg/cell"
)

func TestDirRoundTrip(t *testing.T) {
	d, err := NewDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewDir: %v", err)
	}

	if _, ok, err := d.Read("missing"); ok || err != nil {
		t.Errorf("missing key: ok=%v err=%v", ok, err)
	}

	if err := d.Write("theme", []byte(`"dark"`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, ok, err := d.Read("theme")
	if err != nil || !ok || string(data) != `"dark"` {
		t.Errorf("read = %q, %v, %v", data, ok, err)
	}

	// Overwrite.
	if err := d.Write("theme", []byte(`"light"`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	data, _, _ = d.Read("theme")
	if string(data) != `"light"` {
		t.Errorf("after overwrite read = %q", data)
	}
}

func TestDirAwkwardKeys(t *testing.T) {
	d, err := NewDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewDir: %v", err)
	}

	key := "user/42:settings?=x"
	if err := d.Write(key, []byte("v")); err != nil {
		t.Fatalf("write awkward key: %v", err)
	}
	data, ok, err := d.Read(key)
	if err != nil || !ok || string(data) != "v" {
		t.Errorf("read awkward key = %q, %v, %v", data, ok, err)
	}

	keys, err := d.Keys()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != key {
		t.Errorf("keys = %v, want [%q]", keys, key)
	}
}

func TestDirDelete(t *testing.T) {
	d, err := NewDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewDir: %v", err)
	}
	d.Write("k", []byte("v"))

	if err := d.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := d.Delete("k"); err != nil {
		t.Errorf("deleting absent key should succeed, got %v", err)
	}
	if _, ok, _ := d.Read("k"); ok {
		t.Errorf("key still present after delete")
	}
}

func TestDirBacksPersistentCell(t *testing.T) {
	root := t.TempDir()

	d, err := NewDir(root)
	if err != nil {
		t.Fatalf("NewDir: %v", err)
	}
	first := cell.NewPersistent[int](d, "count", 10)
	first.Set(25)

	// A fresh store over the same directory rehydrates the value.
	d2, err := NewDir(root)
	if err != nil {
		t.Fatalf("NewDir: %v", err)
	}
	second := cell.NewPersistent[int](d2, "count", 0)
	if second.Get() != 25 {
		t.Errorf("rehydrated %d, want 25", second.Get())
	}
}
