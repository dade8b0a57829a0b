package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/chunlian/internal/model"
)

// vertical stacks the characters of s one per line, as on a hanging scroll.
func vertical(s string) string {
	runes := []rune(strings.TrimSpace(s))
	lines := make([]string, len(runes))
	for i, r := range runes {
		lines[i] = string(r)
	}
	return strings.Join(lines, "\n")
}

// Couplet draws the horizontal banner over two vertical scrolls. The upper
// line hangs on the right, as it does on a door.
func Couplet(c model.CoupletResult) string {
	banner := bannerStyle.Render(c.Horizontal)
	upper := scrollStyle.Render(vertical(c.Upper))
	lower := scrollStyle.Render(vertical(c.Lower))

	scrolls := lipgloss.JoinHorizontal(lipgloss.Top, lower, strings.Repeat(" ", 8), upper)
	width := lipgloss.Width(scrolls)

	out := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, banner),
		"",
		scrolls,
	)
	if c.Explanation != "" {
		out += "\n\n" + headingStyle.Render("寓意") + "\n" + lipgloss.NewStyle().Width(width).Render(c.Explanation)
	}
	return out
}
