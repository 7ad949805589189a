package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/sortinghat/internal/hpapi"
)

func fixtureCharacters() []hpapi.Character {
	return []hpapi.Character{
		{ID: "1", Name: "Harry Potter", Actor: "Daniel Radcliffe", House: "Gryffindor", Species: "human", Gender: "male", HogwartsStudent: true, Alive: true},
		{ID: "2", Name: "Minerva McGonagall", Actor: "Maggie Smith", House: "Gryffindor", Species: "human", Gender: "female", HogwartsStaff: true, Alive: true},
		{ID: "3", Name: "Severus Snape", Actor: "Alan Rickman", House: "Slytherin", Species: "human", Gender: "male", HogwartsStaff: true, Alive: false},
		{ID: "4", Name: "Fluffy", House: "", Species: "Three-Headed Dog", Gender: "male", Alive: true},
		{ID: "5", Name: "Hedwig", House: "  ", Species: "owl", Gender: "female", Alive: false},
		{ID: "6", Name: "Luna Lovegood", Actor: "Evanna Lynch", House: "Ravenclaw", Species: "human", Gender: "female", HogwartsStudent: true, Alive: true},
		{ID: "7", Name: "Cedric Diggory", Actor: "Robert Pattinson", House: "Hufflepuff", Species: "human", Gender: "male", HogwartsStudent: true, Alive: false},
		{ID: "8", Name: "Extra", Actor: "Robert Pottinger", House: "Hufflepuff", Species: "human", Gender: "male", Alive: true},
	}
}

func ids(chars []hpapi.Character) []string {
	out := make([]string, 0, len(chars))
	for _, c := range chars {
		out = append(out, c.ID)
	}
	return out
}

func TestApply_HouseStage(t *testing.T) {
	all := fixtureCharacters()

	assert.Equal(t, ids(all), ids(Apply(all, Filter{House: AllHouses})))
	assert.Equal(t, []string{"1", "2"}, ids(Apply(all, Filter{House: OnlyHouse(Gryffindor)})))
	assert.Equal(t, []string{"4", "5"}, ids(Apply(all, Filter{House: NoHouse})))
}

func TestApply_NoHouseMatchesExactlyUnaffiliated(t *testing.T) {
	all := fixtureCharacters()
	got := Apply(all, Filter{House: NoHouse, Search: ""})
	for _, c := range got {
		assert.False(t, c.HasHouse(), "character %s has house %q", c.ID, c.House)
	}
	var want []string
	for _, c := range all {
		if !c.HasHouse() {
			want = append(want, c.ID)
		}
	}
	assert.Equal(t, want, ids(got))
}

func TestApply_ChipStage(t *testing.T) {
	all := fixtureCharacters()

	tests := []struct {
		name string
		chip Chip
		want []string
	}{
		{"student", ParseChip("student"), []string{"1", "6", "7"}},
		{"staff", ParseChip("staff"), []string{"2", "3"}},
		{"dead", ParseChip("dead"), []string{"3", "5", "7"}},
		{"deceased alias", ParseChip("deceased"), []string{"3", "5", "7"}},
		{"species substring", ParseChip("species:dog"), []string{"4"}},
		{"species case-insensitive", ParseChip("species:OWL"), []string{"5"}},
		{"species empty is no-op", ParseChip("species:"), ids(all)},
		{"gender exact", ParseChip("gender:female"), []string{"2", "5", "6"}},
		{"gender empty is no-op", ParseChip("gender:"), ids(all)},
		{"unknown chip passes through", ParseChip("wizard"), ids(all)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(all, Filter{House: AllHouses, Chip: tt.chip})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_GenderIsExactNotSubstring(t *testing.T) {
	all := []hpapi.Character{{ID: "f", Gender: "Female"}, {ID: "m", Gender: "MALE"}}
	got := Apply(all, Filter{Chip: GenderChip("male")})
	assert.Equal(t, []string{"m"}, ids(got))
}

func TestApply_SearchMatchesNameOrActor(t *testing.T) {
	all := fixtureCharacters()
	got := Apply(all, Filter{Search: "  POT "})
	assert.Equal(t, []string{"1", "8"}, ids(got))

	got = Apply(all, Filter{Search: "rickman"})
	assert.Equal(t, []string{"3"}, ids(got))

	got = Apply(all, Filter{Search: "   "})
	assert.Equal(t, ids(all), ids(got))
}

func TestApply_StagesCompose(t *testing.T) {
	all := fixtureCharacters()
	got := Apply(all, Filter{House: OnlyHouse(Hufflepuff), Chip: ParseChip("dead"), Search: "rob"})
	assert.Equal(t, []string{"7"}, ids(got))
}

func TestApply_IdempotentSubsetAndOrderPreserving(t *testing.T) {
	all := fixtureCharacters()
	filters := []HouseFilter{AllHouses, NoHouse, OnlyHouse(Gryffindor), OnlyHouse(Slytherin), OnlyHouse(Ravenclaw), OnlyHouse(Hufflepuff)}
	chips := []Chip{{}, ParseChip("student"), ParseChip("staff"), ParseChip("dead"), ParseChip("species:human"), ParseChip("gender:male"), ParseChip("bogus")}
	searches := []string{"", "a", "pot", "zzz"}

	position := make(map[string]int, len(all))
	for i, c := range all {
		position[c.ID] = i
	}

	for _, h := range filters {
		for _, c := range chips {
			for _, s := range searches {
				f := Filter{House: h, Chip: c, Search: s}
				once := Apply(all, f)
				twice := Apply(once, f)
				require.Equal(t, ids(once), ids(twice), "not idempotent for %+v", f)

				last := -1
				for _, ch := range once {
					pos, ok := position[ch.ID]
					require.True(t, ok, "introduced unknown character %s", ch.ID)
					require.Greater(t, pos, last, "reordered for %+v", f)
					last = pos
				}
			}
		}
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	all := fixtureCharacters()
	before := ids(all)
	got := Apply(all, Filter{House: NoHouse})
	require.NotEmpty(t, got)
	got[0].Name = "mutated"
	assert.Equal(t, before, ids(all))
	assert.Equal(t, "Fluffy", all[3].Name)
}

func TestApply_EmptyInputYieldsEmptySlice(t *testing.T) {
	got := Apply(nil, Filter{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterLabel(t *testing.T) {
	assert.Equal(t, "Filter: All", Filter{}.Label())
	assert.Equal(t, "Filter: No house", Filter{House: NoHouse}.Label())
	assert.Equal(t, "Filter: Ravenclaw", Filter{House: OnlyHouse(Ravenclaw)}.Label())
	assert.Equal(t, "Filter: Students", Filter{House: OnlyHouse(Ravenclaw), Chip: ParseChip("student")}.Label())
	assert.Equal(t, "Filter: Deceased", Filter{Chip: ParseChip("dead")}.Label())
	assert.Equal(t, "Filter: Species — Three-Headed Dog", Filter{Chip: ParseChip("species:Three-Headed%20Dog")}.Label())
	assert.Equal(t, "Filter: Species — Unknown", Filter{Chip: ParseChip("species:")}.Label())
	assert.Equal(t, "Filter: Gender — Female", Filter{Chip: ParseChip("gender:FEMALE")}.Label())
	assert.Equal(t, "Filter: wizard", Filter{Chip: ParseChip("wizard")}.Label())
}
