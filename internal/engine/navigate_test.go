package engine

import (
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *Database {
	t.Helper()
	dbpath := filepath.Join(t.TempDir(), "framedb")
	db, err := Create(dbpath)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPushUpDown(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.Push("alpha", "first note"); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if got, want := db.Current(), "root/alpha"; got != want {
		t.Fatalf("Current() = %q, want %q", got, want)
	}

	if err := db.Up(); err != nil {
		t.Fatalf("Up: %v", err)
	}
	if got, want := db.Current(), RootName; got != want {
		t.Fatalf("Current() after Up = %q, want %q", got, want)
	}

	if err := db.Down("alpha"); err != nil {
		t.Fatalf("Down: %v", err)
	}
	if got, want := db.Current(), "root/alpha"; got != want {
		t.Fatalf("Current() after Down = %q, want %q", got, want)
	}
}

func TestUpAtRootFails(t *testing.T) {
	db := newTestDB(t)
	if err := db.Up(); !Is(err, KindAtRoot) {
		t.Fatalf("Up() at root = %v, want KindAtRoot", err)
	}
}

func TestDownMissingFails(t *testing.T) {
	db := newTestDB(t)
	if err := db.Down("nope"); !Is(err, KindNotFound) {
		t.Fatalf("Down() missing = %v, want KindNotFound", err)
	}
}

func TestPushInvalidNameFails(t *testing.T) {
	db := newTestDB(t)
	for _, bad := range []string{"", ".", "..", "a/b"} {
		if _, err := db.Push(bad, "msg"); !Is(err, KindInvalidName) {
			t.Fatalf("Push(%q) = %v, want KindInvalidName", bad, err)
		}
	}
}

func TestSwitchIsRelativeToRootNotCursor(t *testing.T) {
	db := newTestDB(t)
	if _, err := db.Push("alpha", "a"); err != nil {
		t.Fatalf("Push alpha: %v", err)
	}
	if _, err := db.Push("beta", "b"); err != nil {
		t.Fatalf("Push beta: %v", err)
	}
	// cursor is now root/alpha/beta; switch targets are relative to dbpath root.
	if err := db.Switch("root/alpha"); err != nil {
		t.Fatalf("Switch: %v", err)
	}
	if got, want := db.Current(), "root/alpha"; got != want {
		t.Fatalf("Current() = %q, want %q", got, want)
	}
}

func TestDeleteCannotRemoveRoot(t *testing.T) {
	db := newTestDB(t)
	if _, err := db.Delete(RootName); !Is(err, KindCannotDeleteRoot) {
		t.Fatalf("Delete(root) = %v, want KindCannotDeleteRoot", err)
	}
}

func TestDeleteResetsCursorWhenInsideDeletedSubtree(t *testing.T) {
	db := newTestDB(t)
	if _, err := db.Push("alpha", "a"); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if _, err := db.Push("beta", "b"); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := db.Up(); err != nil {
		t.Fatalf("Up: %v", err)
	}
	if err := db.Up(); err != nil {
		t.Fatalf("Up: %v", err)
	}
	// cursor back at root; delete the alpha subtree the cursor used to be in.
	if _, err := db.Delete("root/alpha"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, want := db.Current(), RootName; got != want {
		t.Fatalf("Current() = %q, want %q", got, want)
	}

	if _, err := db.Push("gamma", "g"); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := db.Switch("root/gamma"); err != nil {
		t.Fatalf("Switch: %v", err)
	}
	if _, err := db.Delete("root/gamma"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, want := db.Current(), RootName; got != want {
		t.Fatalf("Current() after deleting own node = %q, want %q", got, want)
	}
}

func TestPop(t *testing.T) {
	db := newTestDB(t)
	if _, err := db.Push("alpha", "a"); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if _, err := db.Pop(); err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if got, want := db.Current(), RootName; got != want {
		t.Fatalf("Current() after Pop = %q, want %q", got, want)
	}
	if db.nodeExists("root/alpha") {
		t.Fatalf("root/alpha should have been deleted by Pop")
	}
}

func TestPopAtRootFails(t *testing.T) {
	db := newTestDB(t)
	if _, err := db.Pop(); !Is(err, KindAtRoot) {
		t.Fatalf("Pop() at root = %v, want KindAtRoot", err)
	}
}
