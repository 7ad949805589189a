package catalog

import (
	"strings"
	"unicode"
)

// speciesLabels is checked exactly first, then by substring in speciesOrder.
var speciesLabels = map[string]string{
	"human":            "Human",
	"half-giant":       "Half-giant",
	"werewolf":         "Werewolf",
	"wolf":             "Werewolf",
	"owl":              "Owl",
	"dog":              "Dog",
	"cat":              "Cat",
	"snake":            "Serpent",
	"serpent":          "Serpent",
	"phoenix":          "Phoenix",
	"dragon":           "Dragon",
	"centaur":          "Centaur",
	"goblin":           "Goblin",
	"house-elf":        "House-elf",
	"house elf":        "House-elf",
	"ghost":            "Ghost",
	"poltergeist":      "Poltergeist",
	"three-headed dog": "Three-headed dog",
	"hippogriff":       "Hippogriff",
	"acromantula":      "Acromantula",
	"selkie":           "Selkie",
	"pygmy puff":       "Pygmy Puff",
	"toad":             "Toad",
	"vampire":          "Vampire",
	"giant":            "Giant",
	"cephalopod":       "Cephalopod",
	"horse":            "Horse",
}

// Longer keys first so "three-headed dog" wins over "dog" and "half-giant"
// over "giant".
var speciesOrder = []string{
	"three-headed dog", "half-giant", "house-elf", "house elf", "pygmy puff",
	"werewolf", "poltergeist", "acromantula", "hippogriff", "cephalopod",
	"phoenix", "serpent", "centaur", "vampire", "dragon", "goblin",
	"selkie", "ghost", "giant", "horse", "human", "snake", "wolf",
	"toad", "owl", "dog", "cat",
}

// SpeciesLabel returns a display label for a raw species value.
func SpeciesLabel(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "Unknown"
	}
	if label, ok := speciesLabels[s]; ok {
		return label
	}
	for _, key := range speciesOrder {
		if strings.Contains(s, key) {
			return speciesLabels[key]
		}
	}
	return capitalizeWords(s)
}

func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
