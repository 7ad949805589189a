package catalog

import (
	"fmt"
	"strings"

	"github.com/five82/sortinghat/internal/hpapi"
)

// Filter is the full filter state of the character list.
type Filter struct {
	House  HouseFilter
	Chip   Chip
	Search string
}

// Apply narrows all through the house, chip and search stages. The result is
// a new slice in the order of all; all itself is never modified.
func Apply(all []hpapi.Character, f Filter) []hpapi.Character {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]hpapi.Character, 0, len(all))
	for _, ch := range all {
		if !f.House.keep(ch.House) {
			continue
		}
		if !f.Chip.keep(ch) {
			continue
		}
		if term != "" && !matchesSearch(ch, term) {
			continue
		}
		out = append(out, ch)
	}
	return out
}

func matchesSearch(ch hpapi.Character, term string) bool {
	return strings.Contains(strings.ToLower(ch.Name), term) ||
		strings.Contains(strings.ToLower(ch.Actor), term)
}

// Label describes the active filter for the indicator line. A chip takes
// precedence over the house selector.
func (f Filter) Label() string {
	switch f.Chip.Kind {
	case ChipStudent:
		return "Filter: Students"
	case ChipStaff:
		return "Filter: Staff"
	case ChipDeceased:
		return "Filter: Deceased"
	case ChipSpecies:
		val := strings.TrimSpace(f.Chip.Value)
		if val == "" {
			val = "Unknown"
		}
		return "Filter: Species — " + val
	case ChipGender:
		return "Filter: Gender — " + genderLabel(f.Chip.Value)
	case ChipUnknown:
		return fmt.Sprintf("Filter: %s", f.Chip.Raw)
	}

	switch f.House.Kind {
	case HouseFilterNone:
		return "Filter: No house"
	case HouseFilterOne:
		return "Filter: " + string(f.House.House)
	default:
		return "Filter: All"
	}
}

// Clear resets every stage.
func (f Filter) Clear() Filter {
	return Filter{House: AllHouses}
}

func genderLabel(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "male":
		return "Male"
	case "female":
		return "Female"
	case "":
		return "Unknown"
	default:
		return value
	}
}
