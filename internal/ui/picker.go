package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// pickerModel is the Bubble Tea model for choosing between several main-file
// candidates
type pickerModel struct {
	candidates []string
	filtered   []string
	textInput  textinput.Model
	cursor     int
	choice     string
	quitting   bool
}

// newPickerModel creates a picker over the given candidate paths
func newPickerModel(candidates []string) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return pickerModel{
		candidates: candidates,
		filtered:   candidates,
		textInput:  ti,
	}
}

// Init implements tea.Model
func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.textInput.Width = msg.Width - 4
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.cursor < len(m.filtered) {
				m.choice = m.filtered[m.cursor]
				return m, tea.Quit
			}
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
		}
	}

	prevQuery := m.textInput.Value()
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	if m.textInput.Value() != prevQuery {
		m.filtered = filterCandidates(m.candidates, m.textInput.Value())
		m.cursor = min(m.cursor, max(0, len(m.filtered)-1))
	}

	return m, cmd
}

// View implements tea.Model
func (m pickerModel) View() string {
	if m.quitting || m.choice != "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Multiple main file candidates"))
	b.WriteString("\n\n")

	for i, candidate := range m.filtered {
		if i == m.cursor {
			b.WriteString(styles.Cursor.Render("▶ "))
			b.WriteString(styles.Selected.Render(styles.Path.Render(candidate)))
		} else {
			b.WriteString("  ")
			b.WriteString(styles.Path.Render(candidate))
		}
		b.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(styles.Dim.Render("  no matches"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Dim.Render(fmt.Sprintf("%d/%d", len(m.filtered), len(m.candidates))))
	b.WriteString(styles.Dim.Render(" • Enter choose • ESC keep default"))
	b.WriteString("\n")
	b.WriteString(m.textInput.View())

	return b.String()
}

// filterCandidates keeps the candidates containing every whitespace-separated
// query word, case-insensitively
func filterCandidates(candidates []string, query string) []string {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return candidates
	}

	var filtered []string
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		matches := true
		for _, word := range words {
			if !strings.Contains(lower, word) {
				matches = false
				break
			}
		}
		if matches {
			filtered = append(filtered, candidate)
		}
	}
	return filtered
}

// stdoutCaptured reports whether stdout is a pipe or file rather than a
// terminal, i.e. the expanded document itself is going there.
func stdoutCaptured() bool {
	fi, err := os.Stdout.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice == 0
}

// getTTY returns the streams the picker should run on. When stdout is
// captured, both sides are opened on the controlling terminal so the picker
// never writes into the output stream.
func getTTY() (in, out *os.File, cleanup func()) {
	if !stdoutCaptured() {
		return os.Stdin, os.Stdout, func() {}
	}

	var opened []*os.File
	tty := func(flag int, fallback *os.File) *os.File {
		f, err := os.OpenFile("/dev/tty", flag, 0)
		if err != nil {
			return fallback
		}
		opened = append(opened, f)
		return f
	}

	out = tty(os.O_WRONLY, os.Stderr)
	in = tty(os.O_RDONLY, os.Stdin)

	// Color detection must probe the terminal, not the captured stdout
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(out))

	return in, out, func() {
		for _, f := range opened {
			f.Close()
		}
	}
}

// PickMainFile lets the user choose between several main-file candidates.
// Cancelling, or any failure to start the picker (no TTY), falls back to the
// heuristic choice.
func PickMainFile(candidates []string, fallback string) string {
	ttyIn, ttyOut, cleanup := getTTY()
	defer cleanup()

	p := tea.NewProgram(newPickerModel(candidates), tea.WithAltScreen(), tea.WithOutput(ttyOut), tea.WithInput(ttyIn))
	finalModel, err := p.Run()
	if err != nil {
		log.Warn("picker unavailable, keeping heuristic choice", "err", err)
		return fallback
	}

	result := finalModel.(pickerModel)
	if result.choice == "" {
		return fallback
	}
	return result.choice
}
