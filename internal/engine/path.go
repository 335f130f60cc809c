package engine

import (
	"path/filepath"
	"strings"
)

// RootName is the name of the tree's root node, created by Create.
const RootName = "root"

// validateName rejects anything that cannot be a single path segment: empty
// names, names containing a path separator, and "." or "..".
func validateName(op, name string) error {
	if name == "" {
		return newErr(op, KindInvalidName, name, nil)
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return newErr(op, KindInvalidName, name, nil)
	}
	if name == "." || name == ".." {
		return newErr(op, KindInvalidName, name, nil)
	}
	return nil
}

// validateNodePath rejects a multi-segment node path (used for switch/delete
// targets and match scopes) that escapes the tree: a leading "/" (absolute)
// or a "." segment anywhere, mirroring removedir's guard in the original.
func validateNodePath(op, nodePath string) error {
	if nodePath == "" {
		return newErr(op, KindInvalidName, nodePath, nil)
	}
	if strings.HasPrefix(nodePath, "/") {
		return newErr(op, KindInvalidName, nodePath, nil)
	}
	for _, seg := range strings.Split(nodePath, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return newErr(op, KindInvalidName, nodePath, nil)
		}
	}
	return nil
}

// fsPath converts a slash-separated node path (e.g. "root/a/b") into the
// absolute filesystem directory that backs it.
func (db *Database) fsPath(nodePath string) string {
	segs := strings.Split(nodePath, "/")
	parts := append([]string{db.DBPath}, segs...)
	return filepath.Join(parts...)
}

// parentPath returns the node path's parent node path, and whether the node
// is the root (which has no parent).
func parentPath(nodePath string) (parent string, atRoot bool) {
	idx := strings.LastIndex(nodePath, "/")
	if idx < 0 {
		return "", true
	}
	return nodePath[:idx], false
}

// join appends a name segment to a node path.
func join(nodePath, name string) string {
	if nodePath == "" {
		return name
	}
	return nodePath + "/" + name
}
