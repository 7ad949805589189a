package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sortinghat/internal/catalog"
)

type housesState struct {
	cursor int
}

// handleHousesKey processes keyboard input for the house picker.
func (m Model) handleHousesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	houses := catalog.Houses()
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.houses.cursor < len(houses)-1 {
			m.houses.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.houses.cursor > 0 {
			m.houses.cursor--
		}
	case key.Matches(msg, m.keys.Confirm):
		h := houses[m.houses.cursor]
		m.selectHouse(h)
		m.setFilter(catalog.Filter{House: catalog.OnlyHouse(h)})
		m.currentView = ViewCharacters
	case key.Matches(msg, m.keys.ClearFilter):
		m.selectHouse(catalog.HouseNone)
	}
	return m, nil
}

// renderHouses renders the house list beside the highlighted house's page.
func (m Model) renderHouses() string {
	houses := catalog.Houses()
	height := m.contentHeight()

	listWidth := 24
	if m.width < LayoutSplitWidth {
		listWidth = maxInt(m.width/3, 16)
	}
	pageWidth := maxInt(m.width-listWidth, 10)

	styles := m.theme.Styles()
	var list strings.Builder
	for i, h := range houses {
		name := padRight(string(h), listWidth-6)
		marker := "  "
		if h == m.snapshot.SelectedHouse {
			marker = "● "
		}
		if i == m.houses.cursor {
			list.WriteString(styles.Selected.Render(marker + name))
		} else {
			color := lipgloss.NewStyle().Foreground(lipgloss.Color(HouseColor(string(h))))
			list.WriteString(color.Render(marker + name))
		}
		list.WriteString("\n")
	}
	list.WriteString("\n")
	list.WriteString(styles.FaintText.Render("enter: choose\nx: no house"))

	left := m.renderBox("Houses", list.String(), listWidth, height, true)
	right := m.renderBox("", m.renderHousePage(houses[m.houses.cursor], pageWidth-4), pageWidth, height, false)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderHousePage(h catalog.House, width int) string {
	theme := ResolveTheme(h)
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Secondary)).Bold(true).Render(string(h)))
	b.WriteString("\n")
	b.WriteString(styles.GradientBar(minInt(width, 40)))
	b.WriteString("\n\n")

	if info, ok := catalog.InfoFor(h); ok {
		b.WriteString(styles.FaintText.Render(info.Motto))
		b.WriteString("\n\n")
		b.WriteString(houseField(styles, "Founder", info.Founder))
		b.WriteString(houseField(styles, "Animal", info.Animal))
		b.WriteString(houseField(styles, "Values", info.Values))
	}

	if rec, ok := m.snapshot.HouseRecord(h); ok {
		if rec.HouseColours != "" {
			b.WriteString(houseField(styles, "Colours", rec.HouseColours))
		}
	}

	if m.snapshot.Loaded {
		members := catalog.Apply(m.snapshot.Characters, catalog.Filter{House: catalog.OnlyHouse(h)})
		b.WriteString(houseField(styles, "Members", fmt.Sprintf("%d known", len(members))))
	}
	return b.String()
}

func houseField(styles Styles, label, value string) string {
	return styles.MutedText.Render(padRight(label, 10)) + styles.Text.Render(orDash(value)) + "\n"
}
