package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatusBar is the line under the panels. While a background task is
// active it shows a spinner in front of the text.
type StatusBar struct {
	text    string
	style   lipgloss.Style
	spinner spinner.Model
	active  bool
}

// NewStatusBar creates an idle status bar
func NewStatusBar(style lipgloss.Style) *StatusBar {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = style

	return &StatusBar{
		style:   style,
		spinner: s,
	}
}

// SetActive starts or stops the spinner. The returned command drives the
// animation and must be handed to the program.
func (s *StatusBar) SetActive(active bool) tea.Cmd {
	s.active = active
	if active {
		return s.spinner.Tick
	}
	return nil
}

// Active reports whether the spinner is running
func (s *StatusBar) Active() bool { return s.active }

// SetText replaces the status text
func (s *StatusBar) SetText(text string) {
	s.text = text
}

// Text returns the status text
func (s *StatusBar) Text() string { return s.text }

// Update advances the spinner
func (s *StatusBar) Update(msg tea.Msg) tea.Cmd {
	if !s.active {
		return nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return cmd
}

// View renders the bar, or nothing when there is nothing to show
func (s *StatusBar) View() string {
	if s.text == "" && !s.active {
		return ""
	}
	if s.active {
		return s.style.Render(s.spinner.View() + " " + s.text)
	}
	return s.style.Render(s.text)
}
