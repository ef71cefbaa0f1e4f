package bib

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
)

// Resolution is the outcome of looking up a citation set across an ordered
// database list.
type Resolution struct {
	// Entries holds the resolved entry texts in output order: databases in
	// consultation order, keys sorted within each database, then one
	// placeholder per missing key.
	Entries []string
	// Missing lists the keys no database could satisfy, sorted.
	Missing []string
}

// Resolve looks up every required key across dbs in order. A key satisfied by
// an earlier database is never looked up again; keys left over after the last
// database turn into placeholder comment lines.
func Resolve(required map[string]bool, dbs []*Database) Resolution {
	remaining := make(map[string]bool, len(required))
	for key := range required {
		remaining[key] = true
	}

	var res Resolution
	for _, db := range dbs {
		if len(remaining) == 0 {
			break
		}

		var found []string
		for key := range remaining {
			if _, ok := db.Entries[key]; ok {
				found = append(found, key)
			}
		}
		if len(found) == 0 {
			continue
		}
		sort.Strings(found)

		log.Info("found entries", "count", len(found), "file", filepath.Base(db.Path))
		for _, key := range found {
			res.Entries = append(res.Entries, db.Entries[key])
			delete(remaining, key)
		}
	}

	if len(remaining) > 0 {
		for key := range remaining {
			res.Missing = append(res.Missing, key)
		}
		sort.Strings(res.Missing)
		log.Warn("entries not found in any bibliography", "keys", res.Missing)
		for _, key := range res.Missing {
			res.Entries = append(res.Entries, fmt.Sprintf("%% [Entry for %s not found in any .bib file]", key))
		}
	}

	return res
}
