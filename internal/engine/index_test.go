package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIndexAddPrependsAndIndexReadSorts(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, indexFileName), []byte{}, 0644); err != nil {
		t.Fatalf("seed index: %v", err)
	}

	for _, e := range []string{"root/zeta", "root/alpha", "root/mu"} {
		if err := indexAdd(dir, e); err != nil {
			t.Fatalf("indexAdd(%q): %v", e, err)
		}
	}

	raw, err := os.ReadFile(filepath.Join(dir, indexFileName))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if got, want := string(raw), "root/mu\nroot/alpha\nroot/zeta\n"; got != want {
		t.Fatalf("index file = %q, want newest first %q", got, want)
	}

	entries, err := indexRead(dir)
	if err != nil {
		t.Fatalf("indexRead: %v", err)
	}
	want := []string{"root/alpha", "root/mu", "root/zeta"}
	if len(entries) != len(want) {
		t.Fatalf("indexRead = %v, want %v", entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Fatalf("indexRead()[%d] = %q, want %q", i, entries[i], want[i])
		}
	}
}

func TestIndexRemove(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, indexFileName), []byte{}, 0644); err != nil {
		t.Fatalf("seed index: %v", err)
	}
	for _, e := range []string{"root/a", "root/b", "root/c"} {
		if err := indexAdd(dir, e); err != nil {
			t.Fatalf("indexAdd: %v", err)
		}
	}

	found, err := indexRemove(dir, "root/b")
	if err != nil {
		t.Fatalf("indexRemove: %v", err)
	}
	if !found {
		t.Fatalf("indexRemove(root/b) found = false, want true")
	}

	entries, err := indexRead(dir)
	if err != nil {
		t.Fatalf("indexRead: %v", err)
	}
	for _, e := range entries {
		if e == "root/b" {
			t.Fatalf("root/b still present after removal: %v", entries)
		}
	}

	found, err = indexRemove(dir, "root/does-not-exist")
	if err != nil {
		t.Fatalf("indexRemove missing: %v", err)
	}
	if found {
		t.Fatalf("indexRemove(missing) found = true, want false")
	}
}
