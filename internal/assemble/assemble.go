package assemble

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// bibHeader delimits the bibliography block appended to the flattened
// document.
const bibHeader = `% === Bibliography Entries for LLM Reference ===
% The following BibTeX entries correspond to citations in the document.
% This section is added for LLM tools to understand the references.`

// noBibMarker stands in for the bibliography block when there are no entries
// to carry.
const noBibMarker = `% === No Bibliography Entries Found ===`

// Document is a flattened project ready to be written out.
type Document struct {
	Lines      []string
	BibEntries []string
}

// Render produces the final file content: the flattened lines, two blank
// lines, then the bibliography block with each entry followed by a blank
// line, or the no-entries marker.
func (d *Document) Render() string {
	var b strings.Builder
	for _, line := range d.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("\n\n")

	if len(d.BibEntries) == 0 {
		b.WriteString(noBibMarker)
		b.WriteByte('\n')
		return b.String()
	}

	b.WriteString(bibHeader)
	b.WriteString("\n\n")
	for _, entry := range d.BibEntries {
		b.WriteString(entry)
		b.WriteString("\n\n")
	}
	return b.String()
}

// OutputPath returns the target the document should be written to: the
// explicit override when set, otherwise <stem>_expanded.tex next to the main
// file.
func OutputPath(mainFile, override string) string {
	if override != "" {
		return override
	}
	base := filepath.Base(mainFile)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(mainFile), stem+"_expanded.tex")
}

// Write renders doc to path; "-" writes to stdout instead of a file.
func Write(doc *Document, path string) error {
	content := doc.Render()

	if path == "-" {
		_, err := os.Stdout.WriteString(content)
		return err
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	log.Info("wrote expanded file", "path", path)
	return nil
}
