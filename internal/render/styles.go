package render

import "github.com/charmbracelet/lipgloss"

var (
	red  = lipgloss.Color("#B91C1C")
	gold = lipgloss.Color("#FACC15")
	ink  = lipgloss.Color("#1F2937")
	mute = lipgloss.Color("#6B7280")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(gold).
			Background(red).
			Padding(0, 2).
			MarginBottom(1)

	scrollStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(gold).
			Background(red).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(gold).
			Padding(1, 1)

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(gold).
			Background(red).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(gold).
			Padding(0, 2)

	cardStyle = lipgloss.NewStyle().
			Foreground(gold).
			Background(red).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(gold).
			Width(6).
			Align(lipgloss.Center)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(red).
			Padding(1, 2).
			Width(48)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(red)

	verseStyle = lipgloss.NewStyle().
			Foreground(ink).
			Italic(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mute)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)
)

// Title renders a page heading.
func Title(s string) string {
	return titleStyle.Render(s)
}

// Error renders a user-facing error line.
func Error(s string) string {
	return errorStyle.Render(s)
}

// Muted renders secondary text.
func Muted(s string) string {
	return mutedStyle.Render(s)
}
