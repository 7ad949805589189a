package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sortinghat/internal/catalog"
	"github.com/five82/sortinghat/internal/hpapi"
)

// charactersState holds the list view: the active filter, the search box
// and the filtered rows.
type charactersState struct {
	filter    catalog.Filter
	search    textinput.Model
	searching bool
	visible   []hpapi.Character
	cursor    int
	offset    int
}

func newCharactersState(f catalog.Filter) charactersState {
	ti := textinput.New()
	ti.Placeholder = "Search name or actor..."
	ti.Prompt = "/ "
	ti.CharLimit = 60
	ti.SetValue(f.Search)
	return charactersState{filter: f, search: ti}
}

// refilter recomputes the visible rows from the full list, keeping the
// cursor on the same character when it survives the new filter.
func (m *Model) refilter() {
	c := &m.characters
	var selectedID string
	if c.cursor >= 0 && c.cursor < len(c.visible) {
		selectedID = c.visible[c.cursor].ID
	}

	c.visible = catalog.Apply(m.snapshot.Characters, c.filter)

	c.cursor = 0
	for i, ch := range c.visible {
		if ch.ID == selectedID {
			c.cursor = i
			break
		}
	}
	c.offset = clamp(c.offset, 0, maxInt(len(c.visible)-1, 0))
}

// setFilter replaces the filter and resets the list position.
func (m *Model) setFilter(f catalog.Filter) {
	m.characters.filter = f
	m.characters.search.SetValue(f.Search)
	m.characters.cursor = 0
	m.characters.offset = 0
	m.refilter()
}

func (m Model) selectedCharacter() *hpapi.Character {
	c := m.characters
	if c.cursor < 0 || c.cursor >= len(c.visible) {
		return nil
	}
	ch := c.visible[c.cursor]
	return &ch
}

// handleCharactersKey processes keyboard input for the list view.
func (m Model) handleCharactersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := &m.characters
	count := len(c.visible)

	switch {
	case key.Matches(msg, m.keys.Search):
		c.searching = true
		return m, c.search.Focus()

	case key.Matches(msg, m.keys.CycleHouse):
		c.filter.House = c.filter.House.Next()
		m.refilter()

	case key.Matches(msg, m.keys.CycleChip):
		c.filter.Chip = c.filter.Chip.NextBasic()
		m.refilter()

	case key.Matches(msg, m.keys.ClearFilter):
		m.setFilter(c.filter.Clear())

	case key.Matches(msg, m.keys.Escape):
		if c.filter.Search != "" {
			c.filter.Search = ""
			c.search.SetValue("")
			m.refilter()
		}

	case key.Matches(msg, m.keys.Confirm):
		if ch := m.selectedCharacter(); ch != nil {
			return m, m.openDetail(ch.ID, ViewCharacters)
		}

	case key.Matches(msg, m.keys.Down):
		if c.cursor < count-1 {
			c.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if c.cursor > 0 {
			c.cursor--
		}
	case key.Matches(msg, m.keys.Top):
		c.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		c.cursor = maxInt(count-1, 0)
	case key.Matches(msg, m.keys.HalfPageDown):
		c.cursor = clamp(c.cursor+m.listRows()/2, 0, count-1)
	case key.Matches(msg, m.keys.HalfPageUp):
		c.cursor = clamp(c.cursor-m.listRows()/2, 0, count-1)
	}
	c.offset = followCursor(c.cursor, c.offset, m.listRows())
	return m, nil
}

// followCursor scrolls offset just enough to keep cursor inside a window of
// rows lines.
func followCursor(cursor, offset, rows int) int {
	if cursor < offset {
		return cursor
	}
	if cursor >= offset+rows {
		return cursor - rows + 1
	}
	return offset
}

// handleSearchInput feeds keys to the search box; the list filters live.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := &m.characters
	switch {
	case msg.String() == "ctrl+c":
		m.teardownDetail()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		c.searching = false
		c.search.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		c.searching = false
		c.search.Blur()
		c.search.SetValue("")
		c.filter.Search = ""
		m.refilter()
		return m, nil
	}

	var cmd tea.Cmd
	c.search, cmd = c.search.Update(msg)
	if c.filter.Search != c.search.Value() {
		c.filter.Search = c.search.Value()
		m.refilter()
	}
	return m, cmd
}

// listRows is the number of character rows that fit in the list box.
func (m Model) listRows() int {
	// box borders + filter label + search line
	return maxInt(m.contentHeight()-4, 1)
}

// renderCharacters renders the filtered character list.
func (m Model) renderCharacters() string {
	styles := m.theme.Styles()
	c := m.characters

	var b strings.Builder
	b.WriteString(styles.SecondaryText.Render(c.filter.Label()))
	if c.filter.Chip.Kind == catalog.ChipUnknown {
		b.WriteString(styles.FaintText.Render("  (unrecognized, not applied)"))
	}
	b.WriteString("\n")
	if c.searching || c.filter.Search != "" {
		b.WriteString(c.search.View())
	} else {
		b.WriteString(styles.FaintText.Render("press / to search"))
	}
	b.WriteString("\n")

	switch {
	case !m.snapshot.Loaded:
		b.WriteString(styles.MutedText.Render("Loading characters..."))
	case len(c.visible) == 0:
		b.WriteString(styles.MutedText.Render("No characters match."))
	default:
		b.WriteString(m.renderCharacterRows())
	}

	title := fmt.Sprintf("Characters · %d of %d", len(c.visible), len(m.snapshot.Characters))
	return m.renderBox(title, b.String(), m.width, m.contentHeight(), true)
}

func (m Model) renderCharacterRows() string {
	styles := m.theme.Styles()
	c := m.characters
	rows := m.listRows()

	offset := followCursor(c.cursor, c.offset, rows)
	end := minInt(offset+rows, len(c.visible))

	inner := maxInt(m.width-4, 20)
	nameW := minInt(28, inner/3)
	houseW := 12
	speciesW := 16
	compact := m.width < LayoutCompactWidth

	lines := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		ch := c.visible[i]
		name := padRight(truncate(ch.Name, nameW), nameW)
		house := padRight(truncate(orDash(ch.House), houseW), houseW)
		houseStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(HouseColor(ch.House)))

		var line string
		if i == c.cursor {
			row := name + " " + house
			if !compact {
				row += " " + padRight(catalog.SpeciesLabel(ch.Species), speciesW) + " " + truncate(ch.Actor, inner-nameW-houseW-speciesW-3)
			}
			line = styles.Selected.Render(padRight(row, inner))
		} else {
			line = styles.Text.Render(name) + " " + houseStyle.Render(house)
			if !compact {
				line += " " + styles.MutedText.Render(padRight(catalog.SpeciesLabel(ch.Species), speciesW)) +
					" " + styles.FaintText.Render(truncate(ch.Actor, inner-nameW-houseW-speciesW-3))
			}
		}
		if !ch.Alive {
			line += styles.FaintText.Render(" †")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// chipHint is the command bar label for the chip cycle key.
func chipHint(f catalog.Filter) string {
	switch f.Chip.Kind {
	case catalog.ChipNone:
		return "Category"
	case catalog.ChipStudent:
		return "Students"
	case catalog.ChipStaff:
		return "Staff"
	case catalog.ChipDeceased:
		return "Deceased"
	default:
		return "Category*"
	}
}
