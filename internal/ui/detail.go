package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sortinghat/internal/catalog"
	"github.com/five82/sortinghat/internal/hpapi"
	"github.com/five82/sortinghat/internal/portrait"
)

// detailState is one open detail view. seq identifies it; results tagged
// with another seq belong to a view that is gone and are dropped.
type detailState struct {
	seq       uint64
	id        string
	loading   bool
	notFound  bool
	character *hpapi.Character
	tracker   *portrait.Tracker
	viewport  viewport.Model
}

// portraitURL is the image currently in use, primary or resolved.
func (d *detailState) portraitURL() string {
	if d == nil || d.tracker == nil {
		return ""
	}
	return d.tracker.Result().URL
}

type characterLoadedMsg struct {
	seq       uint64
	character *hpapi.Character
	err       error
}

type portraitMsg struct {
	seq       uint64
	committed bool
}

// pendingDetail creates a fresh detail view for id and returns its seq.
func (m *Model) pendingDetail(id string) uint64 {
	m.teardownDetail()
	m.detailSeq++
	m.detail = &detailState{
		seq:      m.detailSeq,
		id:       id,
		loading:  true,
		viewport: viewport.New(0, 0),
	}
	m.currentView = ViewDetail
	m.resizeDetail()
	return m.detailSeq
}

// openDetail shows the detail view for id and starts fetching it.
func (m *Model) openDetail(id string, from View) tea.Cmd {
	seq := m.pendingDetail(id)
	m.returnView = from
	return fetchCharacterCmd(m.ctx, m.fetcher, id, seq)
}

// teardownDetail cancels any portrait lookup of the open view and forgets
// it. Safe to call with no view open.
func (m *Model) teardownDetail() {
	if m.detail == nil {
		return
	}
	if m.detail.tracker != nil {
		m.detail.tracker.Teardown()
	}
	m.detail = nil
}

// leaveDetail tears the detail view down when navigating elsewhere.
func (m *Model) leaveDetail() {
	if m.currentView == ViewDetail {
		m.teardownDetail()
	}
}

func fetchCharacterCmd(ctx context.Context, fetcher hpapi.Fetcher, id string, seq uint64) tea.Cmd {
	if fetcher == nil {
		return nil
	}
	return func() tea.Msg {
		ch, err := fetcher.GetCharacter(ctx, id)
		return characterLoadedMsg{seq: seq, character: ch, err: err}
	}
}

// handleCharacterLoaded commits a detail fetch unless its view is gone.
func (m *Model) handleCharacterLoaded(msg characterLoadedMsg) {
	d := m.detail
	if d == nil || d.seq != msg.seq {
		return
	}
	switch {
	case errors.Is(msg.err, hpapi.ErrNotFound), msg.err == nil && msg.character == nil:
		d.loading = false
		d.notFound = true
	case msg.err != nil:
		// Stays in loading; the failure is only logged.
		log.Printf("[detail] load %s failed: %v", d.id, msg.err)
	default:
		d.loading = false
		d.character = msg.character
		d.tracker = portrait.NewTracker(msg.character.Image)
	}
	m.updateDetailViewport()
}

func resolvePortraitCmd(ctx context.Context, tracker *portrait.Tracker, lookup portrait.Lookup, name string, seq uint64) tea.Cmd {
	return func() tea.Msg {
		res, err := lookup.Resolve(ctx, name)
		return portraitMsg{seq: seq, committed: tracker.Finish(res, err)}
	}
}

// handlePortrait re-renders after a lookup settles. The tracker already
// holds the outcome; a stale seq means the view was torn down.
func (m *Model) handlePortrait(msg portraitMsg) {
	if m.detail == nil || m.detail.seq != msg.seq {
		return
	}
	m.updateDetailViewport()
}

// handleDetailKey processes keyboard input for the detail view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.detail
	if d == nil {
		m.currentView = m.returnView
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.teardownDetail()
		m.currentView = m.returnView
		return m, nil

	case key.Matches(msg, m.keys.Portrait):
		if d.character == nil || d.tracker == nil || m.portraits == nil {
			return m, nil
		}
		ctx, ok := d.tracker.Begin(m.ctx)
		if !ok {
			return m, nil
		}
		m.updateDetailViewport()
		return m, resolvePortraitCmd(ctx, d.tracker, m.portraits, d.character.Name, d.seq)

	case key.Matches(msg, m.keys.CopyURL):
		if url := d.portraitURL(); url != "" {
			return m, copyCmd(m.copyText, url)
		}
		return m, nil

	case key.Matches(msg, m.keys.OpenURL):
		if url := d.portraitURL(); url != "" {
			return m, openCmd(m.openURL, url)
		}
		return m, nil
	}

	if d.character != nil {
		if chip, ok := m.detailChip(msg); ok {
			m.teardownDetail()
			m.setFilter(catalog.Filter{House: catalog.AllHouses, Chip: chip})
			m.currentView = ViewCharacters
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		d.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		d.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		d.viewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		d.viewport.HalfPageUp()
	case key.Matches(msg, m.keys.Top):
		d.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		d.viewport.GotoBottom()
	}
	return m, nil
}

// detailChip maps the chip keys to the filter the chip links to.
func (m Model) detailChip(msg tea.KeyMsg) (catalog.Chip, bool) {
	ch := m.detail.character
	switch {
	case key.Matches(msg, m.keys.ChipStudent):
		return catalog.Chip{Kind: catalog.ChipStudent}, true
	case key.Matches(msg, m.keys.ChipStaff):
		return catalog.Chip{Kind: catalog.ChipStaff}, true
	case key.Matches(msg, m.keys.ChipDead):
		return catalog.Chip{Kind: catalog.ChipDeceased}, true
	case key.Matches(msg, m.keys.ChipSpecies):
		return catalog.SpeciesChip(ch.Species), true
	case key.Matches(msg, m.keys.ChipGender):
		return catalog.GenderChip(ch.Gender), true
	}
	return catalog.Chip{}, false
}

func (m *Model) resizeDetail() {
	if m.detail == nil || !m.ready {
		return
	}
	m.detail.viewport.Width = maxInt(m.width-4, 1)
	m.detail.viewport.Height = maxInt(m.contentHeight()-2, 1)
	m.updateDetailViewport()
}

func (m *Model) updateDetailViewport() {
	if m.detail == nil {
		return
	}
	m.detail.viewport.SetContent(m.renderDetailContent())
}

// renderDetail renders the detail box.
func (m Model) renderDetail() string {
	title := "Character"
	if m.detail != nil && m.detail.character != nil {
		title = m.detail.character.Name
	}
	content := ""
	if m.detail != nil {
		content = m.detail.viewport.View()
	}
	return m.renderBox(title, content, m.width, m.contentHeight(), true)
}

func (m Model) renderDetailContent() string {
	styles := m.theme.Styles()
	d := m.detail
	switch {
	case d == nil:
		return ""
	case d.notFound:
		return styles.DangerText.Render("Character not found")
	case d.loading || d.character == nil:
		return styles.MutedText.Render("Loading character...")
	}

	ch := d.character
	var b strings.Builder

	houseStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(HouseColor(ch.House))).Bold(true)
	b.WriteString(houseStyle.Render(orDash(ch.House)))
	if alt := ch.AlternateNameList(); len(alt) > 0 {
		b.WriteString(styles.FaintText.Render("  aka " + strings.Join(alt, ", ")))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderPortraitSection(d))
	b.WriteString("\n")

	fields := []struct{ label, value string }{
		{"Species", catalog.SpeciesLabel(ch.Species)},
		{"Gender", orDash(ch.Gender)},
		{"Ancestry", orDash(ch.Ancestry)},
		{"Born", orDash(ch.BirthDate())},
		{"Patronus", orDash(ch.Patronus)},
		{"Eyes", orDash(ch.EyeColour)},
		{"Hair", orDash(ch.HairColour)},
		{"Wand", ch.Wand.WandSummary()},
		{"Actor", orDash(ch.Actor)},
		{"Student", yesNo(ch.HogwartsStudent)},
		{"Staff", yesNo(ch.HogwartsStaff)},
		{"Alive", yesNo(ch.Alive)},
	}
	for _, f := range fields {
		b.WriteString(styles.MutedText.Render(padRight(f.label, 10)))
		b.WriteString(styles.Text.Render(f.value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Related"))
	b.WriteString("\n")
	chips := []string{
		styles.Chip.Render("1 Students"),
		styles.Chip.Render("2 Staff"),
		styles.Chip.Render("3 Deceased"),
		styles.Chip.Render("4 " + catalog.SpeciesLabel(ch.Species)),
		styles.Chip.Render("5 " + orDash(ch.Gender)),
	}
	b.WriteString(strings.Join(chips, " "))
	return b.String()
}

func (m Model) renderPortraitSection(d *detailState) string {
	styles := m.theme.Styles()
	label := styles.MutedText.Render(padRight("Portrait", 10))
	if d.tracker == nil {
		return label + styles.FaintText.Render("—") + "\n"
	}
	width := maxInt(m.width-16, 20)
	switch d.tracker.State() {
	case portrait.UsingPrimary, portrait.Resolved:
		return label + styles.AccentText.Render(truncateMiddle(d.tracker.Result().URL, width)) + "\n"
	case portrait.Loading:
		return label + styles.WarningText.Render("Searching the wiki...") + "\n"
	case portrait.Failed:
		return label + styles.DangerText.Render(d.tracker.Message()) + "\n"
	default:
		if m.portraits == nil {
			return label + styles.FaintText.Render("none") + "\n"
		}
		return label + styles.FaintText.Render(fmt.Sprintf("none  (press %s to search the wiki)", m.keys.Portrait.Help().Key)) + "\n"
	}
}
