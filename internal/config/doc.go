// Package config loads sortinghat's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/sortinghat/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// # Fields
//
//	api_base = "https://hp-api.onrender.com/api"
//	wiki_base = "https://harrypotter.fandom.com/wiki/"
//	image_proxy = "https://api.allorigins.win/raw"
//	request_timeout = "15s"
//	log_file = "~/.local/state/sortinghat/sortinghat.log"
//	house = "Gryffindor"
//
// Every field is optional. request_timeout is a Go duration string and must
// be positive. house, when set, must name one of the four houses exactly; it
// preselects the theme and house view at startup. Tilde expansion applies to
// log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than a
// missing file, TOML parse errors, and invalid duration or house values.
// A missing config file is not an error.
package config
