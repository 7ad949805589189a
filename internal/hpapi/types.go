package hpapi

import (
	"strconv"
	"strings"
)

// Character mirrors one entry of /characters and /character/{id}.
type Character struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	AlternateNames  []string `json:"alternate_names"`
	Species         string   `json:"species"`
	Gender          string   `json:"gender"`
	House           string   `json:"house"`
	DateOfBirth     *string  `json:"dateOfBirth"`
	YearOfBirth     *int     `json:"yearOfBirth"`
	Wizard          bool     `json:"wizard"`
	Ancestry        string   `json:"ancestry"`
	EyeColour       string   `json:"eyeColour"`
	HairColour      string   `json:"hairColour"`
	Wand            Wand     `json:"wand"`
	Patronus        string   `json:"patronus"`
	HogwartsStudent bool     `json:"hogwartsStudent"`
	HogwartsStaff   bool     `json:"hogwartsStaff"`
	Actor           string   `json:"actor"`
	AlternateActors []string `json:"alternate_actors"`
	Alive           bool     `json:"alive"`
	Image           string   `json:"image"`
}

// Wand describes a character's wand. Length is nil when unknown.
type Wand struct {
	Wood   string   `json:"wood"`
	Core   string   `json:"core"`
	Length *float64 `json:"length"`
}

// Spell mirrors one entry of /spells.
type Spell struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// House mirrors one entry of /houses. The upstream payload is only shown on
// the house view; filtering uses the fixed set in package catalog.
type House struct {
	Name         string `json:"name"`
	Founder      string `json:"founder"`
	HouseColours string `json:"houseColours"`
	Values       string `json:"values"`
	Animal       string `json:"animal"`
}

// HasHouse reports whether the character belongs to a house.
func (c Character) HasHouse() bool {
	return strings.TrimSpace(c.House) != ""
}

// BirthDate returns the date of birth or "" when unknown.
func (c Character) BirthDate() string {
	if c.DateOfBirth == nil {
		return ""
	}
	return strings.TrimSpace(*c.DateOfBirth)
}

// AlternateNameList returns the non-blank alternate names.
func (c Character) AlternateNameList() []string {
	out := make([]string, 0, len(c.AlternateNames))
	for _, n := range c.AlternateNames {
		if strings.TrimSpace(n) != "" {
			out = append(out, n)
		}
	}
	return out
}

// WandSummary formats the wand as "wood / core / length" with "?" for
// unknown parts.
func (w Wand) WandSummary() string {
	wood := strings.TrimSpace(w.Wood)
	if wood == "" {
		wood = "?"
	}
	core := strings.TrimSpace(w.Core)
	if core == "" {
		core = "?"
	}
	length := "?"
	if w.Length != nil && *w.Length > 0 {
		length = strconv.FormatFloat(*w.Length, 'f', -1, 64)
	}
	return wood + " / " + core + " / " + length
}
