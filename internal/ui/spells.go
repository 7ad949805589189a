package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type spellsState struct {
	viewport viewport.Model
	dirty    bool
}

func newSpellsState() spellsState {
	return spellsState{viewport: viewport.New(0, 0), dirty: true}
}

func (m *Model) resizeSpells() {
	m.spells.viewport.Width = maxInt(m.width-4, 1)
	m.spells.viewport.Height = maxInt(m.contentHeight()-2, 1)
	m.spells.dirty = true
	m.updateSpellsViewport()
}

// updateSpellsViewport re-renders the spell list when data or size changed.
func (m *Model) updateSpellsViewport() {
	if !m.spells.dirty || !m.ready {
		return
	}
	m.spells.viewport.SetContent(m.renderSpellContent())
	m.spells.dirty = false
}

func (m Model) renderSpellContent() string {
	styles := m.theme.Styles()
	if !m.snapshot.Loaded {
		return styles.MutedText.Render("Loading spells...")
	}
	if len(m.snapshot.Spells) == 0 {
		return styles.MutedText.Render("No spells.")
	}
	width := maxInt(m.width-6, 10)
	var b strings.Builder
	for i, sp := range m.snapshot.Spells {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.AccentText.Bold(true).Render(sp.Name))
		b.WriteString("\n")
		b.WriteString(styles.Text.Width(width).Render(sp.Description))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) handleSpellsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vp := &m.spells.viewport
	switch {
	case key.Matches(msg, m.keys.Down):
		vp.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		vp.ScrollUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		vp.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		vp.HalfPageUp()
	case key.Matches(msg, m.keys.Top):
		vp.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		vp.GotoBottom()
	}
	return m, nil
}

func (m Model) renderSpells() string {
	m.updateSpellsViewport()
	title := fmt.Sprintf("Spells · %d", len(m.snapshot.Spells))
	return m.renderBox(title, m.spells.viewport.View(), m.width, m.contentHeight(), true)
}
