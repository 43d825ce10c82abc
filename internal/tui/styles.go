package tui

import "github.com/charmbracelet/lipgloss"

// Console palette.
var (
	ColorNavy   = lipgloss.Color("17")
	ColorWhite  = lipgloss.Color("255")
	ColorGrey   = lipgloss.Color("244")
	ColorDim    = lipgloss.Color("240")
	ColorGreen  = lipgloss.Color("42")
	ColorRed    = lipgloss.Color("196")
	ColorOrange = lipgloss.Color("208")
	ColorBlue   = lipgloss.Color("39")
	ColorPurple = lipgloss.Color("135")
)

var (
	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorDim)

	activeSectionStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorBlue)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWhite)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorGrey).
				Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Background(ColorNavy).
				Foreground(ColorWhite).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorDim)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(ColorGrey)

	cardValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	runningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen)

	stoppedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRed)

	unknownStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGrey)

	gainStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	lossStyle = lipgloss.NewStyle().Foreground(ColorRed)

	successNoticeStyle = lipgloss.NewStyle().
				Bold(true).
				Background(ColorGreen).
				Foreground(lipgloss.Color("232"))

	errorNoticeStyle = lipgloss.NewStyle().
				Bold(true).
				Background(ColorRed).
				Foreground(ColorWhite)

	statusLineStyle = lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorWhite)

	pollErrorStyle = lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorOrange)
)
