package main

import "github.com/charmbracelet/lipgloss"

// Colors used by the board.
var (
	colorPrimary  = lipgloss.Color("#7571F9")
	colorMuted    = lipgloss.Color("#606060")
	colorText     = lipgloss.Color("#FAFAFA")
	colorPending  = lipgloss.Color("#FFA500")
	colorDone     = lipgloss.Color("#04B575")
	colorFailed   = lipgloss.Color("#FF5555")
	colorCanceled = lipgloss.Color("#A0A0A0")
)

// Styles holds the lipgloss styles for the board view.
type Styles struct {
	Title    lipgloss.Style
	Cursor   lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Pending  lipgloss.Style
	Done     lipgloss.Style
	Failed   lipgloss.Style
	Canceled lipgloss.Style
	ErrText  lipgloss.Style
}

// DefaultStyles returns the default board styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 1),
		Cursor:   lipgloss.NewStyle().Foreground(colorPrimary),
		Item:     lipgloss.NewStyle().Foreground(colorText),
		Selected: lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(colorPending),
		Done:     lipgloss.NewStyle().Foreground(colorDone),
		Failed:   lipgloss.NewStyle().Foreground(colorFailed),
		Canceled: lipgloss.NewStyle().Foreground(colorCanceled),
		ErrText:  lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
	}
}
