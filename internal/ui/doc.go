// Package ui is the terminal front end of sortinghat, built on Bubble Tea.
//
// # Views
//
//   - Houses: pick the app-wide house; the whole UI re-themes to it
//   - Characters: the catalog list with house filter, category chip and search
//   - Detail: one character, its portrait and links to related lists
//   - Spells: every spell with its description
//   - Log: the tail of the session log file
//
// # Data flow
//
// The loader goroutine in package app fills a state.Store. The UI polls it
// on a tick and re-filters the character list whenever the data changes.
// The selected house is written back through Store.SelectHouse and nowhere
// else.
//
// A detail view owns a portrait.Tracker. Each view gets a sequence number;
// fetch and lookup results tagged with an older number are dropped, so a
// result that arrives after the user navigated away never touches the
// screen. Leaving the view calls Tracker.Teardown, which cancels any
// lookup in flight.
package ui
