package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sortinghat/internal/catalog"
	"github.com/five82/sortinghat/internal/hpapi"
	"github.com/five82/sortinghat/internal/portrait"
	"github.com/five82/sortinghat/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewHouses View = iota
	ViewCharacters
	ViewDetail
	ViewSpells
	ViewLog
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Fetcher   hpapi.Fetcher
	Portraits portrait.Lookup
	Store     *state.Store
	LogPath   string
	Tick      time.Duration

	// Navigation-level entry points.
	StartView   View
	Filter      catalog.Filter
	CharacterID string

	// Side effects, replaceable in tests.
	CopyText func(string) error
	OpenURL  func(string) error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	fetcher   hpapi.Fetcher
	portraits portrait.Lookup
	store     *state.Store
	logPath   string
	tick      time.Duration
	keys      keyMap
	copyText  func(string) error
	openURL   func(string) error

	// UI state
	theme       Theme
	currentView View
	returnView  View
	width       int
	height      int
	ready       bool
	showHelp    bool
	flash       string

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	houses     housesState
	characters charactersState
	detail     *detailState
	detailSeq  uint64
	spells     spellsState
	logs       logState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick <= 0 {
		tick = DefaultUIInterval
	}

	copyText := opts.CopyText
	if copyText == nil {
		copyText = defaultCopy
	}
	openURL := opts.OpenURL
	if openURL == nil {
		openURL = defaultOpen
	}

	m := Model{
		ctx:         ctx,
		fetcher:     opts.Fetcher,
		portraits:   opts.Portraits,
		store:       opts.Store,
		logPath:     opts.LogPath,
		tick:        tick,
		keys:        DefaultKeyMap(),
		copyText:    copyText,
		openURL:     openURL,
		theme:       ResolveTheme(catalog.HouseNone),
		currentView: opts.StartView,
		returnView:  ViewCharacters,
		characters:  newCharactersState(opts.Filter),
		spells:      newSpellsState(),
		logs:        newLogState(),
	}
	if m.store != nil {
		m.applySnapshot(m.store.Snapshot())
	}
	if id := strings.TrimSpace(opts.CharacterID); id != "" {
		m.pendingDetail(id)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.tick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.detail != nil && m.detail.loading {
		cmds = append(cmds, fetchCharacterCmd(m.ctx, m.fetcher, m.detail.id, m.detail.seq))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		m.lastUpdated = time.Now()
		return m, nil

	case characterLoadedMsg:
		m.handleCharacterLoaded(msg)
		return m, nil

	case portraitMsg:
		m.handlePortrait(msg)
		return m, nil

	case logLinesMsg:
		m.handleLogLines(msg)
		return m, nil

	case actionResultMsg:
		if msg.err != nil {
			m.flash = msg.failure
		} else {
			m.flash = msg.success
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// The search box owns the keyboard while focused.
	if m.currentView == ViewCharacters && m.characters.searching {
		return m.handleSearchInput(msg)
	}

	m.flash = ""

	switch {
	case msg.String() == "ctrl+c":
		m.teardownDetail()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Quit):
		m.teardownDetail()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ViewHouses):
		m.leaveDetail()
		m.currentView = ViewHouses
		return m, nil

	case key.Matches(msg, m.keys.ViewCharacters):
		m.leaveDetail()
		m.currentView = ViewCharacters
		return m, nil

	case key.Matches(msg, m.keys.ViewSpells):
		m.leaveDetail()
		m.currentView = ViewSpells
		return m, nil

	case key.Matches(msg, m.keys.ViewLog):
		m.leaveDetail()
		m.currentView = ViewLog
		return m, m.refreshLogs()
	}

	switch m.currentView {
	case ViewHouses:
		return m.handleHousesKey(msg)
	case ViewCharacters:
		return m.handleCharactersKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewSpells:
		return m.handleSpellsKey(msg)
	case ViewLog:
		return m.handleLogKey(msg)
	}
	return m, nil
}

// handleTick processes the refresh tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.currentView == ViewLog && m.logs.follow {
		if cmd := m.refreshLogs(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	cmds = append(cmds, tickCmd(m.tick))
	return m, tea.Batch(cmds...)
}

// applySnapshot stores the latest data, re-filters the list and follows
// the selected house's theme.
func (m *Model) applySnapshot(snap state.Snapshot) {
	changed := !snap.LastUpdated.Equal(m.snapshot.LastUpdated) || snap.Loaded != m.snapshot.Loaded
	m.snapshot = snap
	if changed {
		m.refilter()
		m.spells.dirty = true
		m.updateSpellsViewport()
	}
	if m.theme.House != snap.SelectedHouse {
		m.theme = ResolveTheme(snap.SelectedHouse)
		m.resize()
	}
}

// selectHouse is the UI's only path to changing the app-wide house.
func (m *Model) selectHouse(h catalog.House) {
	if m.store != nil {
		m.store.SelectHouse(h)
	}
	m.snapshot.SelectedHouse = h
	m.theme = ResolveTheme(h)
	m.resize()
}

func (m *Model) resize() {
	if !m.ready {
		return
	}
	m.resizeSpells()
	m.resizeLogs()
	m.resizeDetail()
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.theme.Styles().GradientBar(m.width))
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

// contentHeight is the space left under the header, gradient and command bar.
func (m Model) contentHeight() int {
	return maxInt(m.height-3, 1)
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewHouses:
		return m.renderHouses()
	case ViewCharacters:
		return m.renderCharacters()
	case ViewDetail:
		return m.renderDetail()
	case ViewSpells:
		return m.renderSpells()
	case ViewLog:
		return m.renderLogs()
	default:
		return ""
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type actionResultMsg struct {
	success string
	failure string
	err     error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil {
		// Interrupted from outside; not a failure.
		return nil
	}
	return err
}
