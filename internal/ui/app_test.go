package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sortinghat/internal/catalog"
	"github.com/five82/sortinghat/internal/hpapi"
	"github.com/five82/sortinghat/internal/portrait"
	"github.com/five82/sortinghat/internal/state"
)

const primaryImage = "https://ik.imagekit.io/hpapi/harry.jpg"

func testCharacters() []hpapi.Character {
	return []hpapi.Character{
		{ID: "harry", Name: "Harry Potter", House: "Gryffindor", Species: "human", Gender: "male",
			HogwartsStudent: true, Alive: true, Actor: "Daniel Radcliffe", Image: primaryImage},
		{ID: "draco", Name: "Draco Malfoy", House: "Slytherin", Species: "human", Gender: "male",
			HogwartsStudent: true, Alive: true, Actor: "Tom Felton"},
		{ID: "minerva", Name: "Minerva McGonagall", House: "Gryffindor", Species: "half-giant", Gender: "female",
			HogwartsStaff: true, Alive: true, Actor: "Maggie Smith"},
		{ID: "cedric", Name: "Cedric Diggory", House: "Hufflepuff", Species: "human", Gender: "male",
			HogwartsStudent: true, Actor: "Robert Pattinson"},
		{ID: "hedwig", Name: "Hedwig", Species: "owl", Gender: "female"},
	}
}

func loadedStore() *state.Store {
	store := &state.Store{}
	store.Update(&state.Catalog{
		Characters: testCharacters(),
		Spells: []hpapi.Spell{
			{ID: "1", Name: "Expelliarmus", Description: "Disarms your opponent"},
			{ID: "2", Name: "Lumos", Description: "Creates a small light"},
		},
		Houses: []hpapi.House{{Name: "Gryffindor", HouseColours: "Scarlet and gold"}},
	}, nil)
	return store
}

type fakeFetcher struct {
	mu    sync.Mutex
	calls map[string]int
	err   error
}

func (f *fakeFetcher) ListCharacters(context.Context) ([]hpapi.Character, error) {
	return testCharacters(), nil
}

func (f *fakeFetcher) ListSpells(context.Context) ([]hpapi.Spell, error) { return nil, nil }

func (f *fakeFetcher) ListHouses(context.Context) ([]hpapi.House, error) { return nil, nil }

func (f *fakeFetcher) GetCharacter(_ context.Context, id string) (*hpapi.Character, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[id]++
	if f.err != nil {
		return nil, f.err
	}
	for _, ch := range testCharacters() {
		if ch.ID == id {
			return &ch, nil
		}
	}
	return nil, hpapi.ErrNotFound
}

type fakeLookup struct {
	mu    sync.Mutex
	calls int
	url   string
	err   error
}

func (f *fakeLookup) Resolve(context.Context, string) (portrait.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return portrait.Result{}, f.err
	}
	return portrait.Result{URL: f.url}, nil
}

func (f *fakeLookup) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// newTestModel builds a sized model ready for key input.
func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.CopyText == nil {
		opts.CopyText = func(string) error { return nil }
	}
	if opts.OpenURL == nil {
		opts.OpenURL = func(string) error { return nil }
	}
	m := New(opts)
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func press(t *testing.T, m Model, keys string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch keys {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	return update(t, m, cmd())
}

func TestViewBeforeSize(t *testing.T) {
	m := New(Options{})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() before size = %q", got)
	}
}

func TestHeaderShowsLoadingAndCounts(t *testing.T) {
	m := newTestModel(t, Options{Store: &state.Store{}})
	if !strings.Contains(m.View(), "Summoning the archive...") {
		t.Fatalf("expected loading banner, got:\n%s", m.View())
	}

	m = newTestModel(t, Options{Store: loadedStore(), StartView: ViewCharacters})
	view := m.View()
	if !strings.Contains(view, "Characters: 5") || !strings.Contains(view, "Spells: 2") {
		t.Fatalf("expected counts in header, got:\n%s", view)
	}
	if !strings.Contains(view, "No house selected") {
		t.Fatalf("expected neutral house label, got:\n%s", view)
	}
}

func TestHeaderShowsRetryAfterFailure(t *testing.T) {
	store := &state.Store{}
	store.Update(nil, &hpapi.HTTPError{StatusCode: 503})
	m := newTestModel(t, Options{Store: store})
	view := m.View()
	if !strings.Contains(view, "API HTTP 503") || !strings.Contains(view, "Retrying...") {
		t.Fatalf("expected failure banner, got:\n%s", view)
	}

	store.Update(nil, &hpapi.HTTPError{StatusCode: 503})
	m = update(t, m, snapshotMsg(store.Snapshot()))
	if view := m.View(); !strings.Contains(view, "Retrying (2 failed attempts)...") {
		t.Fatalf("expected attempt count once offline, got:\n%s", view)
	}
}

func TestHouseSelectionUpdatesStoreAndTheme(t *testing.T) {
	store := loadedStore()
	m := newTestModel(t, Options{Store: store, StartView: ViewHouses})

	m, _ = press(t, m, "j") // Slytherin
	m, _ = press(t, m, "enter")

	if got := store.Snapshot().SelectedHouse; got != catalog.Slytherin {
		t.Fatalf("store house = %q, want Slytherin", got)
	}
	if m.theme.Name != "Slytherin" {
		t.Fatalf("theme = %q, want Slytherin", m.theme.Name)
	}
	if m.currentView != ViewCharacters {
		t.Fatalf("view = %v, want characters", m.currentView)
	}
	if m.characters.filter.House != catalog.OnlyHouse(catalog.Slytherin) {
		t.Fatalf("filter = %+v", m.characters.filter.House)
	}
	if len(m.characters.visible) != 1 || m.characters.visible[0].ID != "draco" {
		t.Fatalf("visible = %+v", m.characters.visible)
	}

	// The next poll must not revert the theme.
	m = update(t, m, snapshotMsg(store.Snapshot()))
	if m.theme.Name != "Slytherin" {
		t.Fatalf("theme after snapshot = %q", m.theme.Name)
	}
}

func TestHouseClearReturnsToNeutral(t *testing.T) {
	store := loadedStore()
	store.SelectHouse(catalog.Hufflepuff)
	m := newTestModel(t, Options{Store: store, StartView: ViewHouses})
	if m.theme.Name != "Hufflepuff" {
		t.Fatalf("initial theme = %q", m.theme.Name)
	}

	m, _ = press(t, m, "x")
	if got := store.Snapshot().SelectedHouse; got != catalog.HouseNone {
		t.Fatalf("store house = %q, want none", got)
	}
	if m.theme.Name != neutralName {
		t.Fatalf("theme = %q, want neutral", m.theme.Name)
	}
}

func TestHousePageShowsRecord(t *testing.T) {
	m := newTestModel(t, Options{Store: loadedStore(), StartView: ViewHouses})
	view := m.View()
	for _, want := range []string{"Godric Gryffindor", "Scarlet and gold", "2 known"} {
		if !strings.Contains(view, want) {
			t.Fatalf("house page missing %q:\n%s", want, view)
		}
	}
}

func TestSpellsView(t *testing.T) {
	m := newTestModel(t, Options{Store: loadedStore()})
	m, _ = press(t, m, "S")
	view := m.View()
	if !strings.Contains(view, "Spells · 2") || !strings.Contains(view, "Expelliarmus") {
		t.Fatalf("spells view:\n%s", view)
	}
}

func TestLogViewFollowsSessionLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	content := "sortinghat 2026/10/19 10:00:00 [loader] catalog loaded\nsortinghat 2026/10/19 10:00:01 [detail] load x failed: boom\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	m := newTestModel(t, Options{LogPath: path})
	m, cmd := press(t, m, "L")
	m = run(t, m, cmd)

	if len(m.logs.lines) != 2 {
		t.Fatalf("log lines = %d, want 2", len(m.logs.lines))
	}
	if !strings.Contains(m.View(), "catalog loaded") {
		t.Fatalf("log view missing line:\n%s", m.View())
	}

	m, _ = press(t, m, " ")
	if m.logs.follow {
		t.Fatalf("space should pause following")
	}
	m, _ = press(t, m, "G")
	if !m.logs.follow {
		t.Fatalf("G should resume following")
	}
	m, _ = press(t, m, "k")
	if m.logs.follow {
		t.Fatalf("scrolling up should pause following")
	}
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = press(t, m, "?")
	if !m.showHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help not shown")
	}
	m, _ = press(t, m, "j")
	if m.showHelp {
		t.Fatalf("help still shown")
	}
}

func TestQuitTearsDownDetail(t *testing.T) {
	m := newTestModel(t, Options{Store: loadedStore(), Fetcher: &fakeFetcher{}, CharacterID: "draco"})
	m = run(t, m, fetchCharacterCmd(m.ctx, m.fetcher, "draco", m.detail.seq))
	tracker := m.detail.tracker
	if !tracker.CanTrigger() {
		t.Fatalf("tracker should offer the fallback before quit")
	}

	_, cmd := press(t, m, "q")
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if tracker.CanTrigger() {
		t.Fatalf("tracker still live after quit")
	}
}

func TestClassifyConnectionError(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&hpapi.HTTPError{StatusCode: 500}, "HTTP 500"},
		{errString("dial tcp: connection refused"), "OFFLINE"},
		{errString("dial tcp: lookup hp-api: no such host"), "HOST NOT FOUND"},
		{errString("context deadline exceeded"), "TIMEOUT"},
		{errString("something else"), "UNREACHABLE"},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := classifyConnectionError(tc.err); got != tc.want {
			t.Fatalf("classifyConnectionError(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

type errString string

func (e errString) Error() string { return string(e) }
