package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	items []key.Binding
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	k := m.keys

	sections := []helpSection{
		{title: "Views", items: []key.Binding{k.ViewHouses, k.ViewCharacters, k.ViewSpells, k.ViewLog, k.Escape}},
		{title: "Navigation", items: []key.Binding{k.Down, k.Up, k.Top, k.Bottom, k.HalfPageDown, k.HalfPageUp, k.Confirm}},
		{title: "Characters", items: []key.Binding{k.Search, k.CycleHouse, k.CycleChip, k.ClearFilter}},
		{title: "Character", items: []key.Binding{
			k.ChipStudent, k.ChipStaff, k.ChipDead, k.ChipSpecies, k.ChipGender,
			k.Portrait, k.CopyURL, k.OpenURL,
		}},
		{title: "Log", items: []key.Binding{k.ToggleFollow}},
		{title: "General", items: []key.Binding{k.Help, k.Quit}},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning)).Width(12)
	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			h := item.Help()
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
