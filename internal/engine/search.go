package engine

import "strings"

// MatchInvert, when passed to Match/MatchFromRoot, inverts the search term
// test (nodes whose path does NOT contain the term are returned instead of
// nodes whose path does). Grounded on frm.c's FRM_MATCH_INVERT flag.
const MatchInvert = 1 << 0

// match returns every index entry whose path contains scope as a substring
// and whose term-containment test equals invert==false (or its negation
// when the invert flag is set). Both tests are substring, not prefix,
// matches — grounded on frm.c's match(): scope_match is unconditional
// (strstr(path, from)), term_match is XORed with FRM_MATCH_INVERT.
func (db *Database) match(scope, term string, flags uint32) ([]string, error) {
	index, err := indexRead(db.DBPath)
	if err != nil {
		return nil, err
	}
	invert := flags&MatchInvert != 0

	var results []string
	for _, entry := range index {
		if !strings.Contains(entry, scope) {
			continue
		}
		found := strings.Contains(entry, term)
		if invert {
			found = !found
		}
		if found {
			results = append(results, entry)
		}
	}
	return results, nil
}

// List returns every index entry scoped to the current node's subtree.
// Grounded on frm.c's frm_list (match with an empty search term, scoped to
// the current node).
func (db *Database) List() ([]string, error) {
	return db.match(db.cursor, "", 0)
}

// Match returns every index entry under the current node whose path
// contains term (or does not, if flags has MatchInvert set). Grounded on
// frm.c's frm_match.
func (db *Database) Match(term string, flags uint32) ([]string, error) {
	return db.match(db.cursor, term, flags)
}

// MatchFromRoot is Match scoped to the whole tree instead of the current
// node's subtree. Grounded on frm.c's frm_match_from_root.
func (db *Database) MatchFromRoot(term string, flags uint32) ([]string, error) {
	return db.match(RootName, term, flags)
}
