package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// barPainter paints header and command bar segments on one background.
// Lipgloss resets the background after every styled run, so each word and
// every gap between them is painted separately to keep the bar unbroken.
type barPainter struct {
	bg lipgloss.Color
}

func newBarPainter(color string) barPainter {
	return barPainter{bg: lipgloss.Color(color)}
}

// paint renders text in style on the bar background, spaces included.
func (p barPainter) paint(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	styled := style.Background(p.bg)
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = styled.Render(w)
		}
	}
	return strings.Join(words, p.gap(1))
}

// fill renders literal text with only the background.
func (p barPainter) fill(text string) string {
	return lipgloss.NewStyle().Background(p.bg).Render(text)
}

func (p barPainter) gap(n int) string {
	return p.fill(strings.Repeat(" ", n))
}

func (p barPainter) join(parts []string, sep string) string {
	return strings.Join(parts, sep)
}
