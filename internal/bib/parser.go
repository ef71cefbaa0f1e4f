package bib

import (
	"os"
	"regexp"
	"strings"
)

// Database holds the entries parsed from one .bib file, keyed by citation
// key. Entry text is kept verbatim from its @type{ marker through the
// balanced closing brace. A key defined twice keeps the last definition.
type Database struct {
	Path    string
	Entries map[string]string
}

// entryHeader matches the start of a BibTeX record: @type{key, with the key
// running up to the first comma or whitespace.
var entryHeader = regexp.MustCompile(`@(\w+)\s*\{\s*([^,\s]+)\s*,`)

// ParseFile reads and parses one bibliography database.
func ParseFile(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data)), nil
}

// Parse extracts every well-formed entry from content. Blank lines and
// whole-line comments are dropped first; a truncated entry is skipped without
// aborting the rest of the document.
func Parse(path, content string) *Database {
	db := &Database{Path: path, Entries: make(map[string]string)}
	text := dropComments(content)

	pos := 0
	for pos < len(text) {
		loc := entryHeader.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}

		start := pos + loc[0]
		key := text[pos+loc[4] : pos+loc[5]]

		end := scanEntry(text, start)
		if end > start {
			db.Entries[key] = text[start:end]
			pos = end
		} else {
			// Unterminated entry: step past its header and keep seeking.
			pos += loc[1]
		}
	}

	return db
}

// scanEntry walks forward from an entry's @ marker counting brace depth and
// returns the offset just past the brace that closes the entry, or start when
// the braces never balance.
func scanEntry(text string, start int) int {
	depth := 0
	inEntry := false
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
			inEntry = true
		case '}':
			depth--
			if depth == 0 && inEntry {
				return i + 1
			}
		}
	}
	return start
}

// dropComments trims every line and removes the blank and whole-line-comment
// ones before entry scanning. Filtering is line-granular only: a % inside an
// entry body is data.
func dropComments(content string) string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "%") {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
