package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/chunlian/internal/model"
	"github.com/ziadkadry99/chunlian/internal/session"
)

// trigramLabel returns the symbol and name shown for t. Unknown symbols
// fall back to the fallback's symbol; an empty name falls back to its name.
func trigramLabel(t, fallback model.Trigram) (symbol, name string) {
	symbol = t.Or(fallback).Symbol()
	name = string(t)
	if name == "" {
		name = string(fallback)
	}
	return symbol, name
}

// CardGrid draws the face-down cards in two rows, numbered from 1.
func CardGrid(v session.FortuneView) string {
	const perRow = session.CardCount / 2

	var rows []string
	for row := 0; row < 2; row++ {
		var cards []string
		for col := 0; col < perRow; col++ {
			i := row*perRow + col
			face := fmt.Sprintf("🐴\n%d", i+1)
			style := cardStyle
			if i == v.Selected {
				style = selectedCardStyle
				if v.State == session.FortuneDrawing {
					face = "…\n求签"
				}
			}
			cards = append(cards, style.Render(face))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// CardHeader renders the trigrams and title of a revealed card.
func CardHeader(c model.FortuneCard) string {
	upSym, upName := trigramLabel(c.UpperTrigram, model.TrigramQian)
	lowSym, lowName := trigramLabel(c.LowerTrigram, model.TrigramKun)

	trigrams := fmt.Sprintf("上卦 %s %s    下卦 %s %s", upSym, upName, lowSym, lowName)
	return lipgloss.JoinVertical(lipgloss.Center,
		mutedStyle.Render(trigrams),
		"",
		titleStyle.Render(c.Title),
	)
}

// Card renders a revealed card with its verse in one block.
func Card(c model.FortuneCard) string {
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		CardHeader(c),
		verseStyle.Render(strings.Join(VerseLines(c.Content), "\n")),
	))
}

// Interpretation renders the detailed reading of a card.
func Interpretation(c model.FortuneCard) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render("大师解签"),
		"",
		fmt.Sprintf("%s  %s", c.Type.Emoji(), headingStyle.Render(c.Title)),
		"",
		headingStyle.Render("签文"),
		verseStyle.Render(c.Content),
		"",
		headingStyle.Render("解曰"),
		c.Blessing,
	)
	return panelStyle.Render(body)
}

// VerseLines splits a verse into display lines, breaking after Chinese
// clause punctuation when the model returned a single line.
func VerseLines(content string) []string {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	if strings.Contains(content, "\n") {
		var lines []string
		for _, l := range strings.Split(content, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, l)
			}
		}
		return lines
	}

	var lines []string
	var cur strings.Builder
	for _, r := range content {
		cur.WriteRune(r)
		switch r {
		case '，', '。', '；', '！', '？':
			lines = append(lines, cur.String())
			cur.Reset()
		}
	}
	if rest := strings.TrimSpace(cur.String()); rest != "" {
		lines = append(lines, rest)
	}
	return lines
}
