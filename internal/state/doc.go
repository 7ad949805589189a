// Package state holds the data shared between the background loader and the UI.
//
// # Overview
//
// Store is the coordination point where catalog loads meet UI rendering. The
// loader goroutine writes with Update; the UI reads with Snapshot on every
// tick. The house chosen on the house view is also kept here, and
// SelectHouse is its only writer, so every view agrees on the active theme.
//
// # Update Semantics
//
//	// Success: replace the collections
//	store.Update(&state.Catalog{...}, nil)
//	→ Characters, Spells, Houses replaced
//	→ Loaded = true, LastError = nil, ConsecutiveFailures = 0
//
//	// Failure: keep old data, record error
//	store.Update(nil, err)
//	→ collections unchanged
//	→ LastError = err, ConsecutiveFailures++
//
// # Copying
//
// Update copies the incoming slices and Snapshot copies them again on the
// way out, so neither the loader nor a view can mutate what the other sees.
// Records are plain values; the nullable fields are pointers that nothing
// writes through.
//
// The zero Store is ready to use.
package state
