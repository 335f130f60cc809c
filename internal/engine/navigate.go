package engine

import (
	"errors"
	"os"
	"strings"
	"time"
)

var errIndexEntryMissing = errors.New("index entry not found for deleted node")

// Push creates a new child node named name under the cursor, writes message
// as its payload, and moves the cursor to it. Grounded on frm.c's frm_push.
//
// Index/history write failures after the node directory is created
// successfully are not rolled back — the node exists either way, and the
// caller is told via the returned warning whether the index/history entry
// was recorded. This matches frm_push, which treats index_add failure as a
// warning and proceeds.
func (db *Database) Push(name, message string) (warning error, err error) {
	if err := validateName("Push", name); err != nil {
		return nil, err
	}

	newPath := join(db.cursor, name)
	if _, err := createNode(db.CurrentDir(), name, message, time.Now()); err != nil {
		return nil, err
	}

	if err := historyAppend(db.DBPath, newPath); err != nil {
		warning = err
	}
	if err := indexAdd(db.DBPath, newPath); err != nil {
		warning = err
	}

	db.cursor = newPath
	return warning, nil
}

// Up moves the cursor to its parent node. Returns a KindAtRoot error when
// already at root. Grounded on frm.c's frm_up.
func (db *Database) Up() error {
	parent, atRoot := parentPath(db.cursor)
	if atRoot {
		return newErr("Up", KindAtRoot, db.cursor, nil)
	}
	if err := historyAppend(db.DBPath, parent); err != nil {
		return err
	}
	db.cursor = parent
	return nil
}

// Down moves the cursor to a direct child of the current node named target.
// Grounded on frm.c's frm_down.
func (db *Database) Down(target string) error {
	if err := validateName("Down", target); err != nil {
		return err
	}
	newPath := join(db.cursor, target)
	if !db.nodeExists(newPath) {
		return newErr("Down", KindNotFound, newPath, nil)
	}
	if err := historyAppend(db.DBPath, newPath); err != nil {
		return err
	}
	db.cursor = newPath
	return nil
}

// Switch moves the cursor to target, a node path given relative to the
// database root (not relative to the cursor). Grounded on frm.c's
// frm_switch, which chdir's to dbpath before chdir'ing to target.
func (db *Database) Switch(target string) error {
	if err := validateNodePath("Switch", target); err != nil {
		return err
	}
	if !db.nodeExists(target) {
		return newErr("Switch", KindNotFound, target, nil)
	}
	if err := historyAppend(db.DBPath, target); err != nil {
		return err
	}
	db.cursor = target
	return nil
}

// Pop deletes the current node and moves the cursor to its parent. Grounded
// on frm.c's frm_pop: get the current path, move up, then delete the old
// path. Popping root fails with KindAtRoot, same as Up would.
func (db *Database) Pop() (warning error, err error) {
	oldPath := db.cursor
	if err := db.Up(); err != nil {
		return nil, err
	}
	return db.Delete(oldPath)
}

// Delete removes the node at target (a node path relative to the database
// root) and its entire subtree, and removes its index entry. Deleting root
// is refused. If the cursor is target or inside target's subtree, the
// cursor resets to root and that reset is recorded in history — an explicit
// resolution of the original's silent behavior (frm_delete never checked
// whether the caller's cursor pointed into the deleted subtree).
func (db *Database) Delete(target string) (warning error, err error) {
	if err := validateNodePath("Delete", target); err != nil {
		return nil, err
	}
	if target == RootName {
		return nil, newErr("Delete", KindCannotDeleteRoot, target, nil)
	}
	if !db.nodeExists(target) {
		return nil, newErr("Delete", KindNotFound, target, nil)
	}

	if err := os.RemoveAll(db.fsPath(target)); err != nil {
		return nil, newErr("Delete", KindIOError, target, err)
	}

	if found, err := indexRemove(db.DBPath, target); err != nil {
		warning = err
	} else if !found {
		warning = newErr("Delete", KindCorrupt, target, errIndexEntryMissing)
	}

	if db.cursor == target || strings.HasPrefix(db.cursor, target+"/") {
		if err := historyAppend(db.DBPath, RootName); err != nil {
			warning = err
		}
		db.cursor = RootName
	}

	return warning, nil
}
