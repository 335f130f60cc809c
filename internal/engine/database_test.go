package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateAndOpen(t *testing.T) {
	dbpath := filepath.Join(t.TempDir(), "framedb")

	db, err := Create(dbpath)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if db.Current() != RootName {
		t.Fatalf("Current() = %q, want %q", db.Current(), RootName)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db2, err := Open(dbpath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db2.Close()
	if db2.Current() != RootName {
		t.Fatalf("reopened Current() = %q, want %q", db2.Current(), RootName)
	}
}

func TestCreateTwiceFails(t *testing.T) {
	dbpath := filepath.Join(t.TempDir(), "framedb")
	db, err := Create(dbpath)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	db.Close()

	if _, err := Create(dbpath); !Is(err, KindAlreadyExists) {
		t.Fatalf("second Create error = %v, want KindAlreadyExists", err)
	}
}

func TestOpenMissingFails(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope")); !Is(err, KindNotFound) {
		t.Fatalf("Open missing error = %v, want KindNotFound", err)
	}
}

func TestOpenRestoresCursorFromHistory(t *testing.T) {
	dbpath := filepath.Join(t.TempDir(), "framedb")
	db, err := Create(dbpath)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := db.Push("child", "hello"); err != nil {
		t.Fatalf("Push: %v", err)
	}
	db.Close()

	db2, err := Open(dbpath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db2.Close()
	if want := "root/child"; db2.Current() != want {
		t.Fatalf("Current() = %q, want %q", db2.Current(), want)
	}
}

func TestOpenFailsWhenHistoryCursorNodeMissing(t *testing.T) {
	dbpath := filepath.Join(t.TempDir(), "framedb")
	db, err := Create(dbpath)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := db.Push("child", "hello"); err != nil {
		t.Fatalf("Push: %v", err)
	}
	db.Close()

	// Remove the node directly, leaving history still pointing at it.
	if err := os.RemoveAll(filepath.Join(dbpath, "root", "child")); err != nil {
		t.Fatalf("RemoveAll: %v", err)
	}

	if _, err := Open(dbpath); !Is(err, KindCorrupt) {
		t.Fatalf("Open with missing history cursor node error = %v, want KindCorrupt", err)
	}
}
