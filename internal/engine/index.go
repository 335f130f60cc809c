package engine

import (
	"path/filepath"
	"sort"
	"strings"
)

const indexFileName = "index"

// indexAdd prepends entry to the flat index file. Grounded on frm.c's
// index_add: read the whole file, write entry + "\n" + old contents back.
func indexAdd(dbpath, entry string) error {
	path := filepath.Join(dbpath, indexFileName)
	existing, err := readFile("indexAdd", path)
	if err != nil {
		return err
	}
	return writeFile("indexAdd", path, entry+"\n"+existing)
}

// indexRemove rewrites the index file with every line equal to entry
// dropped, via atomic temp-file-and-rename, matching index_remove. It
// returns found=false (no error) when entry was not present, so callers can
// surface it as a warning exactly as the original does.
func indexRemove(dbpath, entry string) (found bool, err error) {
	path := filepath.Join(dbpath, indexFileName)
	existing, err := readFile("indexRemove", path)
	if err != nil {
		return false, err
	}

	var kept []string
	for _, line := range splitLines(existing) {
		if line == entry {
			found = true
			continue
		}
		kept = append(kept, line)
	}

	out := ""
	if len(kept) > 0 {
		out = strings.Join(kept, "\n") + "\n"
	}
	if err := atomicReplace("indexRemove", path, out); err != nil {
		return found, err
	}
	return found, nil
}

// indexRead returns every index entry, sorted lexicographically (qsort over
// strcmp in the original's index_read).
func indexRead(dbpath string) ([]string, error) {
	path := filepath.Join(dbpath, indexFileName)
	data, err := readFile("indexRead", path)
	if err != nil {
		return nil, err
	}
	lines := splitLines(data)
	sort.Strings(lines)
	return lines, nil
}

// splitLines splits newline-delimited file content into lines, discarding a
// single trailing empty element from a terminating newline. Empty lines
// elsewhere in the content are kept.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "\n")
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
