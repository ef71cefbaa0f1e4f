package ui

import "github.com/charmbracelet/lipgloss"

// StyleManager encapsulates the terminal styles shared by the candidate
// picker and the run summary
type StyleManager struct {
	// Picker styles
	Title    lipgloss.Style
	Path     lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Dim      lipgloss.Style

	// Summary styles
	Done  lipgloss.Style
	Label lipgloss.Style
	Warn  lipgloss.Style
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Title:    lipgloss.NewStyle().Bold(true),
		Path:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Done:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Global style manager instance
var styles = DefaultStyles()
