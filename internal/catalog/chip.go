package catalog

import (
	"net/url"
	"strings"

	"github.com/five82/sortinghat/internal/hpapi"
)

// ChipKind is the secondary categorical filter.
type ChipKind int

const (
	ChipNone ChipKind = iota
	ChipStudent
	ChipStaff
	ChipDeceased
	ChipSpecies
	ChipGender
	// ChipUnknown is an unrecognized token. It is kept for display but
	// applies no filtering stage.
	ChipUnknown
)

// Chip narrows the house-filtered list by one category.
type Chip struct {
	Kind  ChipKind
	Value string // species or gender value
	Raw   string // original token for ChipUnknown
}

// ParseChip reads a chip token: student | staff | dead | species:<v> | gender:<v>.
// "deceased" is accepted as an alias of "dead".
func ParseChip(token string) Chip {
	trimmed := strings.TrimSpace(token)
	switch trimmed {
	case "":
		return Chip{}
	case "student":
		return Chip{Kind: ChipStudent}
	case "staff":
		return Chip{Kind: ChipStaff}
	case "dead", "deceased":
		return Chip{Kind: ChipDeceased}
	}
	if value, ok := strings.CutPrefix(trimmed, "species:"); ok {
		if decoded, err := url.PathUnescape(value); err == nil {
			value = decoded
		}
		return Chip{Kind: ChipSpecies, Value: value}
	}
	if value, ok := strings.CutPrefix(trimmed, "gender:"); ok {
		return Chip{Kind: ChipGender, Value: value}
	}
	return Chip{Kind: ChipUnknown, Raw: trimmed}
}

// SpeciesChip builds a species chip for value.
func SpeciesChip(value string) Chip {
	return Chip{Kind: ChipSpecies, Value: value}
}

// GenderChip builds a gender chip for value.
func GenderChip(value string) Chip {
	return Chip{Kind: ChipGender, Value: value}
}

// Token returns the navigation token for the chip.
func (c Chip) Token() string {
	switch c.Kind {
	case ChipStudent:
		return "student"
	case ChipStaff:
		return "staff"
	case ChipDeceased:
		return "dead"
	case ChipSpecies:
		return "species:" + url.PathEscape(c.Value)
	case ChipGender:
		return "gender:" + c.Value
	case ChipUnknown:
		return c.Raw
	default:
		return ""
	}
}

// Active reports whether the chip narrows the list at all.
func (c Chip) Active() bool {
	switch c.Kind {
	case ChipStudent, ChipStaff, ChipDeceased:
		return true
	case ChipSpecies, ChipGender:
		return strings.TrimSpace(c.Value) != ""
	default:
		return false
	}
}

// NextBasic cycles none -> student -> staff -> dead -> none. Species and
// gender chips are only reachable from a character's detail page.
func (c Chip) NextBasic() Chip {
	switch c.Kind {
	case ChipNone:
		return Chip{Kind: ChipStudent}
	case ChipStudent:
		return Chip{Kind: ChipStaff}
	case ChipStaff:
		return Chip{Kind: ChipDeceased}
	default:
		return Chip{}
	}
}

func (c Chip) keep(ch hpapi.Character) bool {
	switch c.Kind {
	case ChipStudent:
		return ch.HogwartsStudent
	case ChipStaff:
		return ch.HogwartsStaff
	case ChipDeceased:
		return !ch.Alive
	case ChipSpecies:
		val := strings.ToLower(c.Value)
		if val == "" {
			return true
		}
		return strings.Contains(strings.ToLower(ch.Species), val)
	case ChipGender:
		val := strings.ToLower(c.Value)
		if val == "" {
			return true
		}
		return strings.ToLower(ch.Gender) == val
	default:
		return true
	}
}
