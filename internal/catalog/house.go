package catalog

import "strings"

// House is one of the four Hogwarts houses. The zero value means no house.
type House string

const (
	HouseNone  House = ""
	Gryffindor House = "Gryffindor"
	Slytherin  House = "Slytherin"
	Ravenclaw  House = "Ravenclaw"
	Hufflepuff House = "Hufflepuff"
)

var houseOrder = []House{Gryffindor, Slytherin, Ravenclaw, Hufflepuff}

// Houses returns the four houses in display order.
func Houses() []House {
	out := make([]House, len(houseOrder))
	copy(out, houseOrder)
	return out
}

// ParseHouse maps an exact house name to a House. Unknown or blank values
// yield HouseNone and false.
func ParseHouse(value string) (House, bool) {
	trimmed := strings.TrimSpace(value)
	for _, h := range houseOrder {
		if string(h) == trimmed {
			return h, true
		}
	}
	return HouseNone, false
}

// HouseFilterKind selects which house stage applies.
type HouseFilterKind int

const (
	HouseFilterAll HouseFilterKind = iota
	HouseFilterOne
	HouseFilterNone
)

// HouseFilter is the primary selector: all, one house, or unaffiliated.
type HouseFilter struct {
	Kind  HouseFilterKind
	House House
}

// AllHouses keeps every character.
var AllHouses = HouseFilter{Kind: HouseFilterAll}

// NoHouse keeps characters without a house.
var NoHouse = HouseFilter{Kind: HouseFilterNone}

// OnlyHouse keeps characters of h. HouseNone collapses to NoHouse.
func OnlyHouse(h House) HouseFilter {
	if h == HouseNone {
		return NoHouse
	}
	return HouseFilter{Kind: HouseFilterOne, House: h}
}

// ParseHouseFilter reads a navigation token (all | <house> | none).
// Unrecognized tokens degrade to AllHouses.
func ParseHouseFilter(token string) HouseFilter {
	trimmed := strings.TrimSpace(token)
	switch trimmed {
	case "", "all":
		return AllHouses
	case "none":
		return NoHouse
	}
	if h, ok := ParseHouse(trimmed); ok {
		return OnlyHouse(h)
	}
	return AllHouses
}

// Token returns the navigation token for the filter.
func (f HouseFilter) Token() string {
	switch f.Kind {
	case HouseFilterOne:
		return string(f.House)
	case HouseFilterNone:
		return "none"
	default:
		return "all"
	}
}

// Next cycles all -> four houses -> none -> all, the order of the filter bar.
func (f HouseFilter) Next() HouseFilter {
	switch f.Kind {
	case HouseFilterAll:
		return OnlyHouse(houseOrder[0])
	case HouseFilterOne:
		for i, h := range houseOrder {
			if h == f.House && i+1 < len(houseOrder) {
				return OnlyHouse(houseOrder[i+1])
			}
		}
		return NoHouse
	default:
		return AllHouses
	}
}

func (f HouseFilter) keep(house string) bool {
	switch f.Kind {
	case HouseFilterNone:
		return strings.TrimSpace(house) == ""
	case HouseFilterOne:
		return house == string(f.House)
	default:
		return true
	}
}

// HouseInfo is the static description shown on a house page.
type HouseInfo struct {
	House   House
	Founder string
	Animal  string
	Values  string
	Motto   string
}

var houseInfo = map[House]HouseInfo{
	Gryffindor: {
		House:   Gryffindor,
		Founder: "Godric Gryffindor",
		Animal:  "Lion",
		Values:  "Courage, daring, nerve and chivalry",
		Motto:   "You belong in Gryffindor, where dwell the brave at heart.",
	},
	Slytherin: {
		House:   Slytherin,
		Founder: "Salazar Slytherin",
		Animal:  "Serpent",
		Values:  "Ambition, cunning, determination and leadership",
		Motto:   "Slytherin has chosen you. The great do great things.",
	},
	Ravenclaw: {
		House:   Ravenclaw,
		Founder: "Rowena Ravenclaw",
		Animal:  "Eagle",
		Values:  "Intelligence, creativity, wisdom and learning",
		Motto:   "Welcome to Ravenclaw, where those of ready mind thrive.",
	},
	Hufflepuff: {
		House:   Hufflepuff,
		Founder: "Helga Hufflepuff",
		Animal:  "Badger",
		Values:  "Loyalty, patience, hard work and fair play",
		Motto:   "You are a Hufflepuff, where the loyal and just are prized.",
	},
}

// InfoFor returns the static description of h.
func InfoFor(h House) (HouseInfo, bool) {
	info, ok := houseInfo[h]
	return info, ok
}
