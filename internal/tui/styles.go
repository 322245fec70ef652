package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains the lipgloss styles used by the preview.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style
	Help   lipgloss.Style
	Border lipgloss.Style
}

// DefaultStyles builds the preview styles.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true),
		Label:  lipgloss.NewStyle().Width(28),
		Value:  lipgloss.NewStyle().Bold(true),
		Muted:  lipgloss.NewStyle().Faint(true),
		Help:   lipgloss.NewStyle().Faint(true).MarginTop(1),
		Border: lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).Padding(0, 1),
	}
}

// Swatch renders a colored block for a hex color.
func Swatch(hex string, width int) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", width))
}
