package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit   key.Binding
	Help   key.Binding
	Escape key.Binding

	// View switching
	ViewHouses     key.Binding
	ViewCharacters key.Binding
	ViewSpells     key.Binding
	ViewLog        key.Binding

	// Characters
	Search      key.Binding
	CycleHouse  key.Binding
	CycleChip   key.Binding
	ClearFilter key.Binding

	// Detail
	ChipStudent key.Binding
	ChipStaff   key.Binding
	ChipDead    key.Binding
	ChipSpecies key.Binding
	ChipGender  key.Binding
	Portrait    key.Binding
	CopyURL     key.Binding
	OpenURL     key.Binding

	// Log
	ToggleFollow key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	Confirm      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back"),
		),

		ViewHouses: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "Houses"),
		),
		ViewCharacters: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Characters"),
		),
		ViewSpells: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "Spells"),
		),
		ViewLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Session log"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search name or actor"),
		),
		CycleHouse: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Cycle house filter"),
		),
		CycleChip: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Cycle category"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Clear filters"),
		),

		ChipStudent: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Students"),
		),
		ChipStaff: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Staff"),
		),
		ChipDead: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Deceased"),
		),
		ChipSpecies: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Same species"),
		),
		ChipGender: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "Same gender"),
		),
		Portrait: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Find portrait"),
		),
		CopyURL: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy portrait URL"),
		),
		OpenURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Open portrait"),
		),

		ToggleFollow: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Toggle follow mode"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "Half page down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open"),
		),
	}
}
