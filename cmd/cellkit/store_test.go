package main

import (
	"bytes"
	"strings"
	"testing"
)

func runStore(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := storeCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStoreSetGetList(t *testing.T) {
	dir := t.TempDir()

	if _, err := runStore(t, "--dir", dir, "set", "theme", `"dark"`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := runStore(t, "--dir", dir, "set", "count", "5"); err != nil {
		t.Fatalf("set: %v", err)
	}

	out, err := runStore(t, "--dir", dir, "get", "theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if strings.TrimSpace(out) != `"dark"` {
		t.Errorf("get output = %q", out)
	}

	out, err = runStore(t, "--dir", dir, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.TrimSpace(out) != "count\ntheme" {
		t.Errorf("list output = %q", out)
	}
}

func TestStoreDeleteAndMissing(t *testing.T) {
	dir := t.TempDir()

	runStore(t, "--dir", dir, "set", "k", "1")
	if _, err := runStore(t, "--dir", dir, "delete", "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := runStore(t, "--dir", dir, "get", "k"); err == nil {
		t.Errorf("get of deleted key should fail")
	}
}

func TestStoreRequiresBackend(t *testing.T) {
	if _, err := runStore(t, "get", "k"); err == nil {
		t.Errorf("expected error without --dir or --badger")
	}
}
