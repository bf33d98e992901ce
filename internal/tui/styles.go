package tui

import (
	"launchpad/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles used by the frame renderer
type Styles struct {
	Panel    lipgloss.Style
	Title    lipgloss.Style
	Label    lipgloss.Style
	Checked  lipgloss.Style
	Selected lipgloss.Style
	Button   lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
}

// NewStyles builds styles from a configured theme
func NewStyles(theme config.Theme) Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Border)).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Primary)),
		Label: lipgloss.NewStyle(),
		Checked: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Success)),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Emphasis)),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Info)).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Info)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)),
	}
}
