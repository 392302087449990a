package tui

import "github.com/charmbracelet/lipgloss"

// Column widths of a holder row.
const (
	colWidthMarker  = 2
	colWidthAddress = 44
	colWidthBalance = 28
)

// chromeHeight is the number of rows used by the header and footer.
const chromeHeight = 5

const minListHeight = 3

var (
	// TitleStyle renders the application title.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	// HeaderStyle renders column headings.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	// SubtleStyle renders help text and secondary information.
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// InfoStyle renders transient progress messages.
	InfoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	// ErrorStyle renders failures.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	// SelectedStyle highlights the selected row.
	SelectedStyle = lipgloss.NewStyle().Reverse(true)

	// ValueStyle renders balances.
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)
