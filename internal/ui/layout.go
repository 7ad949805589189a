package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutSplitWidth is the minimum width for the list plus side panel.
	LayoutSplitWidth = 110
)

// Log display limits.
const (
	// LogTailLines is how many session log lines the log view reads.
	LogTailLines = 2000
)

// Timing constants.
const (
	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = time.Second
)

// renderBox draws a rounded border with a title in the top edge. Content is
// clipped to the inner height.
func (m Model) renderBox(title, content string, width, height int, focused bool) string {
	if width < 4 || height < 2 {
		return content
	}
	border := m.theme.Faint
	if focused {
		border = m.theme.Accent
	}
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(border))
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Secondary)).Bold(true)

	innerWidth := width - 2
	innerHeight := height - 2

	label := ""
	if title != "" {
		label = " " + truncate(title, innerWidth-2) + " "
	}
	fill := innerWidth - lipgloss.Width(label) - 1
	if fill < 0 {
		fill = 0
	}
	top := borderStyle.Render("╭─") + titleStyle.Render(label) + borderStyle.Render(strings.Repeat("─", fill)+"╮")
	bottom := borderStyle.Render("╰" + strings.Repeat("─", innerWidth) + "╯")

	lines := strings.Split(content, "\n")
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}

	side := borderStyle.Render("│")
	body := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth)
	var b strings.Builder
	b.WriteString(top)
	b.WriteString("\n")
	for _, line := range lines {
		b.WriteString(side)
		b.WriteString(body.Render(line))
		b.WriteString(side)
		b.WriteString("\n")
	}
	b.WriteString(bottom)
	return b.String()
}
