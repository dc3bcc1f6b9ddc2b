package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/supportkit/logtriage/internal/domain"
)

// Styles holds the lipgloss styles for terminal output.
var Styles = struct {
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
}{
	Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),             // Cyan
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // Orange
	Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red bold

	Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Value:  lipgloss.NewStyle().Bold(true),
}

// LevelStyle returns the style for a severity level.
func LevelStyle(level domain.Level) lipgloss.Style {
	switch level {
	case domain.LevelWarning:
		return Styles.Warning
	case domain.LevelError:
		return Styles.Error
	default:
		return Styles.Info
	}
}
