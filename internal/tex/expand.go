package tex

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultMaxDepth bounds include nesting so a pathological project turns into
// an inline marker instead of unbounded recursion.
const DefaultMaxDepth = 64

// maxLineBytes is the longest single source line the expander accepts.
// Generated TikZ paths and data tables run far past bufio's default token
// size, and such lines are legal input.
const maxLineBytes = 16 * 1024 * 1024

// Expander flattens a document and everything it includes into a single
// ordered line sequence.
type Expander struct {
	MaxDepth int
}

// NewExpander creates an expander with the default depth bound.
func NewExpander() *Expander {
	return &Expander{MaxDepth: DefaultMaxDepth}
}

// Expand reads path and recursively splices every include directive in place,
// returning the flattened lines. Structural problems (cycles, missing or
// unreadable files, excessive nesting) become inline marker lines rather than
// errors, so the result is always as complete as possible.
func (e *Expander) Expand(path string) []string {
	visited := make(map[string]bool)
	return e.expand(path, visited, filepath.Dir(path), 0)
}

// expand processes one file. The visited set is shared across the whole call
// tree: a path enters it once and stays, so any repeated reference yields a
// marker instead of a descent. baseDir is the directory of the file being
// read; each recursive call re-derives it so includes resolve relative to the
// file containing them.
func (e *Expander) expand(path string, visited map[string]bool, baseDir string, depth int) []string {
	canonical := canonicalPath(path)

	if visited[canonical] {
		log.Warn("circular include detected", "path", path)
		return []string{fmt.Sprintf("%% [CIRCULAR INCLUDE: %s]", path)}
	}
	if depth > e.MaxDepth {
		log.Warn("include depth limit reached", "path", path, "depth", depth)
		return []string{fmt.Sprintf("%% [MAX INCLUDE DEPTH: %s]", path)}
	}
	visited[canonical] = true

	file, err := os.Open(path)
	if err != nil {
		log.Error("error reading file", "path", path, "err", err)
		return []string{fmt.Sprintf("%% [ERROR READING FILE: %s - %v]", path, err)}
	}
	defer file.Close()

	var content []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()

		name, ok := MatchInclude(StripComments(line))
		if !ok {
			content = append(content, line)
			continue
		}

		if !strings.HasSuffix(name, ".tex") {
			name += ".tex"
		}
		target := name
		if !filepath.IsAbs(target) {
			target = filepath.Join(baseDir, target)
		}

		if _, err := os.Stat(target); err != nil {
			log.Warn("missing include file", "path", target)
			content = append(content, fmt.Sprintf("%% [MISSING FILE: %s]", target))
			continue
		}

		log.Debug("including", "path", target)
		content = append(content, e.expand(target, visited, filepath.Dir(target), depth+1)...)
	}
	if err := scanner.Err(); err != nil {
		// Lines read so far are kept; the marker stands in for the rest.
		log.Error("error reading file", "path", path, "err", err)
		content = append(content, fmt.Sprintf("%% [ERROR READING FILE: %s - %v]", path, err))
	}

	return content
}

// canonicalPath resolves path for visited-set identity so the same file is
// recognized through symlinks and relative spellings.
func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
