package engine

import (
	"path/filepath"
	"time"
)

// Payload returns the current node's payload text. Grounded on frm.c's
// frm_payload.
func (db *Database) Payload() (string, error) {
	return readPayload(db.CurrentDir())
}

// PayloadReplace overwrites the current node's payload and refreshes its
// mtime. Grounded on frm.c's frm_payload_replace.
func (db *Database) PayloadReplace(message string) error {
	if err := writePayload(db.CurrentDir(), message); err != nil {
		return err
	}
	return touchInfo(db.CurrentDir(), time.Now())
}

// PayloadAppend appends message (separated by a newline) to the current
// node's payload and refreshes its mtime. Grounded on frm.c's
// frm_payload_append.
func (db *Database) PayloadAppend(message string) error {
	current, err := readPayload(db.CurrentDir())
	if err != nil && !Is(err, KindNotFound) {
		return err
	}
	if err := writePayload(db.CurrentDir(), current+"\n"+message); err != nil {
		return err
	}
	return touchInfo(db.CurrentDir(), time.Now())
}

// PayloadPath returns the absolute filesystem path of the current node's
// payload file, for callers (like an editor invocation) that want to open
// it directly. Grounded on frm.c's frm_payload_fname.
func (db *Database) PayloadPath() string {
	return filepath.Join(db.fsPath(db.cursor), payloadFileName)
}

// Info returns the current node's metadata.
func (db *Database) Info() (Info, error) {
	return readInfo(db.CurrentDir())
}

// InfoAt returns the metadata of an arbitrary node, addressed the same
// root-relative way as Switch and Delete, rather than the cursor's own node.
// Used by list/match to annotate each entry with its own mtime.
func (db *Database) InfoAt(nodePath string) (Info, error) {
	if err := validateNodePath("InfoAt", nodePath); err != nil {
		return Info{}, err
	}
	return readInfo(db.fsPath(nodePath))
}

// History returns up to count most recent history entries, newest first.
// count < 0 returns the full history. Grounded on frm.c's frm_history.
func (db *Database) History(count int) ([]string, error) {
	return historyRead(db.DBPath, count)
}
