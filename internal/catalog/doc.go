// Package catalog filters the in-memory character list.
//
// The list is fetched once and never mutated. Apply narrows it through three
// independent stages (house, chip, search) and always returns a new slice in
// the original order, so re-applying the same Filter to its own output is a
// no-op. Navigation tokens are parsed leniently: an unknown house token means
// "all", an unknown chip token is kept for display but filters nothing.
package catalog
