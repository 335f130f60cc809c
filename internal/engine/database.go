// Package engine implements frame's filesystem-backed hierarchical note
// store: a tree of directories ("nodes"), each holding an info file and a
// payload file, navigated through an explicit cursor rather than the
// process's working directory.
package engine

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const rootPlaceholderPayload = "ENTER YOUR NOTES HERE"

// Database is a handle to an open frame database. It is not safe for
// concurrent use from multiple goroutines; the spec's concurrency model is
// single-threaded, synchronous access, same as the original frm_t handle.
type Database struct {
	// DBPath is the absolute filesystem path to the database root directory.
	DBPath string
	// cursor is the current node's path relative to DBPath, e.g. "root" or
	// "root/project/task". Explicit field instead of process-global chdir,
	// per the redesign guidance: a library used from a long-running process
	// must not rely on os.Chdir, which is global to the whole process.
	cursor string

	lock *flock.Flock
}

// Create initializes a new database at dbpath, which must not already
// exist. It creates the root node, seeds an empty index, and records root
// as the first history entry. Grounded on frm.c's frm_create.
func Create(dbpath string) (*Database, error) {
	if err := os.Mkdir(dbpath, 0777); err != nil {
		if os.IsExist(err) {
			return nil, newErr("Create", KindAlreadyExists, dbpath, err)
		}
		return nil, newErr("Create", KindIOError, dbpath, err)
	}

	now := time.Now()
	if _, err := createNode(dbpath, RootName, rootPlaceholderPayload, now); err != nil {
		return nil, err
	}
	if err := writeFile("Create", filepath.Join(dbpath, indexFileName), ""); err != nil {
		return nil, err
	}
	if err := historyAppend(dbpath, RootName); err != nil {
		return nil, err
	}

	return Open(dbpath)
}

// Open opens an existing database at dbpath and restores the cursor to the
// most recently visited node recorded in history, defaulting to root if
// history is empty. The recorded node must exist on disk: per spec.md
// §4.5/§4.6, a history entry pointing at a node that is no longer there is
// reported as KindCorrupt rather than silently falling back to root.
// Grounded on frm.c's frm_init.
func Open(dbpath string) (*Database, error) {
	abs, err := filepath.Abs(dbpath)
	if err != nil {
		return nil, newErr("Open", KindIOError, dbpath, err)
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return nil, newErr("Open", KindNotFound, abs, err)
	}

	fl, err := acquireLock(abs, 5*time.Second)
	if err != nil {
		return nil, err
	}

	cursor := RootName
	if hist, err := historyRead(abs, 1); err == nil && len(hist) > 0 && hist[0] != "" {
		cursor = hist[0]
	}
	if _, err := os.Stat(filepath.Join(abs, filepath.FromSlash(cursor))); err != nil {
		fl.Unlock()
		return nil, newErr("Open", KindCorrupt, cursor, err)
	}

	return &Database{DBPath: abs, cursor: cursor, lock: fl}, nil
}

// Close releases the database's advisory lock. It does not flush anything:
// every mutating operation writes through immediately.
func (db *Database) Close() error {
	if db.lock == nil {
		return nil
	}
	if err := db.lock.Unlock(); err != nil {
		return newErr("Close", KindIOError, db.DBPath, err)
	}
	return nil
}

// Current returns the cursor's node path, relative to the database root
// (e.g. "root" or "root/project/task"). Grounded on frm.c's frm_current.
func (db *Database) Current() string {
	return db.cursor
}

// CurrentDir returns the absolute filesystem directory of the cursor node.
func (db *Database) CurrentDir() string {
	return db.fsPath(db.cursor)
}

// nodeExists reports whether a node directory exists at the given node path.
func (db *Database) nodeExists(nodePath string) bool {
	info, err := os.Stat(db.fsPath(nodePath))
	return err == nil && info.IsDir()
}
