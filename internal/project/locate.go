package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// documentMarker identifies a file that can serve as the compilation entry
// point.
const documentMarker = `\begin{document}`

// canonicalNames are entry-point file names preferred when several candidates
// qualify.
var canonicalNames = map[string]bool{
	"main.tex":    true,
	"paper.tex":   true,
	"article.tex": true,
}

// FindMainFile locates the entry-point document under dir: the .tex file
// whose content contains \begin{document}. Ties between several candidates
// are settled by ChooseMainFile; no candidate at all is an error.
func FindMainFile(dir string) (string, error) {
	texFiles, candidates := scanTexFiles(dir)
	if len(candidates) == 0 {
		if len(texFiles) > 0 {
			log.Info("no .tex file contains a document environment", "found", texFiles)
		}
		return "", fmt.Errorf("no main .tex file found in %s", dir)
	}
	return ChooseMainFile(candidates), nil
}

// FindCandidates returns every .tex file under dir containing a document
// environment, in walk order.
func FindCandidates(dir string) []string {
	_, candidates := scanTexFiles(dir)
	return candidates
}

// ChooseMainFile settles between several candidates: the first canonically
// named one wins, then the shallowest path.
func ChooseMainFile(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	if len(candidates) == 1 {
		return candidates[0]
	}

	log.Warn("multiple main file candidates", "files", candidates)
	for _, candidate := range candidates {
		if canonicalNames[strings.ToLower(filepath.Base(candidate))] {
			return candidate
		}
	}

	best := candidates[0]
	for _, candidate := range candidates[1:] {
		if pathDepth(candidate) < pathDepth(best) {
			best = candidate
		}
	}
	return best
}

// FindBibFiles returns every .bib file under dir, in walk order.
func FindBibFiles(dir string) []string {
	var bibs []string
	walkFiles(dir, ".bib", func(path string) {
		bibs = append(bibs, path)
	})
	return bibs
}

// scanTexFiles walks dir once and splits the .tex files it finds into all
// files and those that qualify as an entry point. Unreadable files are
// warned about and skipped.
func scanTexFiles(dir string) (texFiles, candidates []string) {
	walkFiles(dir, ".tex", func(path string) {
		texFiles = append(texFiles, path)

		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("could not read candidate", "path", path, "err", err)
			return
		}
		if strings.Contains(string(data), documentMarker) {
			candidates = append(candidates, path)
		}
	})
	return texFiles, candidates
}

// walkFiles calls fn for every file under dir whose name carries the given
// extension. Dot-directories are skipped; unreadable subtrees are logged and
// skipped rather than failing the walk.
func walkFiles(dir, ext string, fn func(path string)) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("skipping unreadable path", "path", path, "err", err)
			return nil
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(strings.ToLower(d.Name()), ext) {
			fn(path)
		}
		return nil
	})
}

func pathDepth(path string) int {
	return strings.Count(filepath.Clean(path), string(filepath.Separator))
}
