package ui

import (
	"fmt"
	"strings"
)

// Summary describes one completed run for terminal display.
type Summary struct {
	MainFile  string
	Output    string
	Lines     int
	Citations int
	BibFiles  int
	Missing   []string
}

// Render returns the styled report printed after a successful run.
func (s Summary) Render() string {
	var b strings.Builder

	b.WriteString(styles.Done.Render("✓ wrote " + s.Output))
	b.WriteString("\n")
	b.WriteString(styles.Label.Render("  main file "))
	b.WriteString(styles.Path.Render(s.MainFile))
	b.WriteString("\n")
	b.WriteString(styles.Label.Render(fmt.Sprintf("  %d lines • %d citations • %d bib files", s.Lines, s.Citations, s.BibFiles)))

	if len(s.Missing) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Warn.Render("  missing entries: " + strings.Join(s.Missing, ", ")))
	}

	return b.String()
}
