// Package app wires configuration, the session log, the API client, the
// portrait resolver, the shared store and the UI into one sortinghat
// session.
//
// # Startup
//
//  1. config.Load reads ~/.config/sortinghat/config.toml (defaults when missing)
//  2. sessionlog.Open routes the standard logger to the session log file
//  3. hpapi.NewClient and portrait.NewResolver are built from the config
//  4. the selected house is seeded into a fresh state.Store
//  5. StartLoader fetches the catalog in the background
//  6. ui.Run takes over the terminal until the user quits
//
// # Loading
//
// Load fetches characters, spells and houses concurrently and records the
// result in the store with a single Update. Characters and spells are
// required; houses only decorate the house page, so a failure there is
// logged and ignored.
//
// The API client never retries. StartLoader is the one place that does:
// after a failed Load it waits, doubling the wait on each failure up to
// 30 seconds, and tries again until the first success or until the
// context is cancelled. Meanwhile the store carries LastError so the
// header can say why the archive is not there yet.
//
// # Entry points
//
// Options mirror the command-line flags. A filter or chip token starts on
// the character list; an explicit house starts on that house's members;
// a character id opens its detail view directly. With none of them the
// session starts on the house picker.
package app
