package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/five82/sortinghat/internal/catalog"
	"github.com/five82/sortinghat/internal/hpapi"
	"github.com/five82/sortinghat/internal/portrait"
)

// openLoaded opens the detail view for id from the list and commits the fetch.
func openLoaded(t *testing.T, m Model, id string) Model {
	t.Helper()
	cmd := m.openDetail(id, ViewCharacters)
	return run(t, m, cmd)
}

func TestDetailLoadsCharacter(t *testing.T) {
	fetcher := &fakeFetcher{}
	m := newTestModel(t, Options{Store: loadedStore(), Fetcher: fetcher, StartView: ViewCharacters})

	m, cmd := press(t, m, "enter")
	if m.currentView != ViewDetail || m.detail == nil || m.detail.id != "harry" {
		t.Fatalf("enter did not open harry: view=%v detail=%+v", m.currentView, m.detail)
	}
	if !strings.Contains(m.View(), "Loading character...") {
		t.Fatalf("expected loading state:\n%s", m.View())
	}

	m = run(t, m, cmd)
	view := m.View()
	for _, want := range []string{"Harry Potter", "Daniel Radcliffe", primaryImage} {
		if !strings.Contains(view, want) {
			t.Fatalf("detail missing %q:\n%s", want, view)
		}
	}
	if m.detail.tracker.State() != portrait.UsingPrimary {
		t.Fatalf("tracker = %v, want UsingPrimary", m.detail.tracker.State())
	}
}

func TestDetailNotFound(t *testing.T) {
	m := newTestModel(t, Options{Store: loadedStore(), Fetcher: &fakeFetcher{}})
	m = openLoaded(t, m, "nobody")
	if !m.detail.notFound {
		t.Fatalf("expected not found")
	}
	if !strings.Contains(m.View(), "Character not found") {
		t.Fatalf("missing not-found message:\n%s", m.View())
	}
}

func TestDetailRemoteFailureStaysLoading(t *testing.T) {
	m := newTestModel(t, Options{Store: loadedStore(), Fetcher: &fakeFetcher{err: hpapi.ErrRemoteUnavailable}})
	m = openLoaded(t, m, "harry")
	if !m.detail.loading || m.detail.notFound {
		t.Fatalf("remote failure should stay loading: %+v", m.detail)
	}
}

func TestDetailDiscardsStaleFetch(t *testing.T) {
	fetcher := &fakeFetcher{}
	m := newTestModel(t, Options{Store: loadedStore(), Fetcher: fetcher})

	staleCmd := m.openDetail("harry", ViewCharacters)
	m, _ = press(t, m, "esc")
	freshCmd := m.openDetail("draco", ViewCharacters)

	m = run(t, m, staleCmd)
	if m.detail.id != "draco" || m.detail.character != nil {
		t.Fatalf("stale fetch committed into the new view: %+v", m.detail)
	}

	m = run(t, m, freshCmd)
	if m.detail.character == nil || m.detail.character.ID != "draco" {
		t.Fatalf("fresh fetch not committed: %+v", m.detail)
	}
}

func TestPortraitLookupRunsOnce(t *testing.T) {
	lookup := &fakeLookup{url: "https://static.wikia.nocookie.net/draco.png"}
	m := newTestModel(t, Options{Store: loadedStore(), Fetcher: &fakeFetcher{}, Portraits: lookup})
	m = openLoaded(t, m, "draco")

	if !m.detail.tracker.CanTrigger() {
		t.Fatalf("fallback should be offered for a non-primary image")
	}
	if !strings.Contains(m.View(), "press p to search the wiki") {
		t.Fatalf("missing fallback hint:\n%s", m.View())
	}

	m, first := press(t, m, "p")
	if first == nil {
		t.Fatalf("first p should start a lookup")
	}
	if !strings.Contains(m.View(), "Searching the wiki...") {
		t.Fatalf("missing loading indicator:\n%s", m.View())
	}
	m, second := press(t, m, "p")
	if second != nil {
		t.Fatalf("second p while loading should be ignored")
	}

	m = run(t, m, first)
	if got := lookup.count(); got != 1 {
		t.Fatalf("lookup calls = %d, want 1", got)
	}
	if m.detail.tracker.State() != portrait.Resolved {
		t.Fatalf("tracker = %v, want Resolved", m.detail.tracker.State())
	}
	if !strings.Contains(m.View(), lookup.url) {
		t.Fatalf("resolved url not shown:\n%s", m.View())
	}

	if _, cmd := press(t, m, "p"); cmd != nil {
		t.Fatalf("p after success should be ignored")
	}
}

func TestPortraitFailureIsTerminal(t *testing.T) {
	lookup := &fakeLookup{err: portrait.ErrImageNotFound}
	m := newTestModel(t, Options{Store: loadedStore(), Fetcher: &fakeFetcher{}, Portraits: lookup})
	m = openLoaded(t, m, "draco")

	m, cmd := press(t, m, "p")
	m = run(t, m, cmd)
	if m.detail.tracker.State() != portrait.Failed {
		t.Fatalf("tracker = %v, want Failed", m.detail.tracker.State())
	}
	if !strings.Contains(m.View(), portrait.Message(portrait.ErrImageNotFound)) {
		t.Fatalf("failure message not shown:\n%s", m.View())
	}
	if _, again := press(t, m, "p"); again != nil {
		t.Fatalf("p after failure should be ignored")
	}
	if lookup.count() != 1 {
		t.Fatalf("lookup calls = %d, want 1", lookup.count())
	}
}

func TestLeavingDetailDropsLateLookup(t *testing.T) {
	lookup := &fakeLookup{url: "https://static.wikia.nocookie.net/late.png"}
	m := newTestModel(t, Options{Store: loadedStore(), Fetcher: &fakeFetcher{}, Portraits: lookup})
	m = openLoaded(t, m, "draco")

	m, cmd := press(t, m, "p")
	tracker := m.detail.tracker

	m, _ = press(t, m, "esc")
	if m.detail != nil || m.currentView != ViewCharacters {
		t.Fatalf("esc should tear down and return: view=%v", m.currentView)
	}

	msg := cmd()
	pm, ok := msg.(portraitMsg)
	if !ok {
		t.Fatalf("cmd returned %T", msg)
	}
	if pm.committed {
		t.Fatalf("late lookup committed after teardown")
	}
	if tracker.Result().URL != "" {
		t.Fatalf("torn down tracker holds %q", tracker.Result().URL)
	}
	m = update(t, m, msg)
	if m.detail != nil {
		t.Fatalf("late message resurrected the detail view")
	}
}

func TestDetailChipNavigates(t *testing.T) {
	m := newTestModel(t, Options{Store: loadedStore(), Fetcher: &fakeFetcher{}, StartView: ViewCharacters})
	m, _ = press(t, m, "f") // Gryffindor filter must be dropped by the chip
	m = openLoaded(t, m, "minerva")

	m, _ = press(t, m, "4")
	if m.currentView != ViewCharacters || m.detail != nil {
		t.Fatalf("chip should land on the list: view=%v", m.currentView)
	}
	want := catalog.Filter{House: catalog.AllHouses, Chip: catalog.SpeciesChip("half-giant")}
	if m.characters.filter != want {
		t.Fatalf("filter = %+v, want %+v", m.characters.filter, want)
	}
	if ids := visibleIDs(m); len(ids) != 1 || ids[0] != "minerva" {
		t.Fatalf("species visible = %v", ids)
	}
	if !strings.Contains(m.View(), "Filter: Species — half-giant") {
		t.Fatalf("missing species label:\n%s", m.View())
	}
}

func TestDetailCopyAndOpen(t *testing.T) {
	var copied, opened string
	m := newTestModel(t, Options{
		Store:    loadedStore(),
		Fetcher:  &fakeFetcher{},
		CopyText: func(s string) error { copied = s; return nil },
		OpenURL:  func(s string) error { opened = s; return errors.New("no browser") },
	})
	m = openLoaded(t, m, "harry")

	m, cmd := press(t, m, "y")
	m = run(t, m, cmd)
	if copied != primaryImage {
		t.Fatalf("copied %q, want %q", copied, primaryImage)
	}
	if m.flash != "Copied portrait URL" {
		t.Fatalf("flash = %q", m.flash)
	}

	m, cmd = press(t, m, "o")
	m = run(t, m, cmd)
	if opened != primaryImage {
		t.Fatalf("opened %q, want %q", opened, primaryImage)
	}
	if m.flash != "Could not open browser" {
		t.Fatalf("flash = %q", m.flash)
	}
}

func TestDetailCopyWithoutPortraitIsNoop(t *testing.T) {
	m := newTestModel(t, Options{Store: loadedStore(), Fetcher: &fakeFetcher{}})
	m = openLoaded(t, m, "draco")
	if _, cmd := press(t, m, "y"); cmd != nil {
		t.Fatalf("copy without a portrait should do nothing")
	}
}

func TestStartOnCharacterDetail(t *testing.T) {
	fetcher := &fakeFetcher{}
	m := New(Options{Store: loadedStore(), Fetcher: fetcher, CharacterID: "cedric"})
	if m.currentView != ViewDetail || m.detail == nil || !m.detail.loading {
		t.Fatalf("expected pending detail, got view=%v", m.currentView)
	}
	if m.Init() == nil {
		t.Fatalf("Init returned no commands")
	}
}
