package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sortinghat/internal/catalog"
)

// Theme defines colors and styles for the UI. Each house has one; the
// neutral theme is used until a house is selected.
type Theme struct {
	Name  string
	House catalog.House

	// House palette
	Primary    string
	Secondary  string
	Background string // Outermost background
	Surface    string // Header, command bar, panels
	Text       string
	Accent     string
	Gradient   []string

	// Derived
	SurfaceAlt    string
	SelectionBg   string
	SelectionText string
	Muted         string
	Faint         string
	Success       string
	Warning       string
	Danger        string
}

const neutralName = "Neutral"

var houseThemes = map[catalog.House]Theme{
	catalog.Gryffindor: {
		Name:       "Gryffindor",
		House:      catalog.Gryffindor,
		Primary:    "#AE0001",
		Secondary:  "#EEBA30",
		Background: "#1B0A0A",
		Surface:    "#1E1E1E",
		Text:       "#FFFFFF",
		Accent:     "#AE0001",
		Gradient:   []string{"#740001", "#AE0001", "#EEBA30"},
	},
	catalog.Slytherin: {
		Name:       "Slytherin",
		House:      catalog.Slytherin,
		Primary:    "#1A472A",
		Secondary:  "#AAAAAA",
		Background: "#0B1D0A",
		Surface:    "#112318",
		Text:       "#FFFFFF",
		Accent:     "#5D7B66",
		Gradient:   []string{"#0D6217", "#1A472A", "#2E8B57"},
	},
	catalog.Ravenclaw: {
		Name:       "Ravenclaw",
		House:      catalog.Ravenclaw,
		Primary:    "#0E1A40",
		Secondary:  "#946B2D",
		Background: "#141F2B",
		Surface:    "#152038",
		Text:       "#FFFFFF",
		Accent:     "#5A7ABF",
		Gradient:   []string{"#0E1A40", "#222F5B", "#946B2D"},
	},
	catalog.Hufflepuff: {
		Name:       "Hufflepuff",
		House:      catalog.Hufflepuff,
		Primary:    "#ECB939",
		Secondary:  "#F0C75E",
		Background: "#372E29",
		Surface:    "#2D2310",
		Text:       "#FFFFFF",
		Accent:     "#ECB939",
		Gradient:   []string{"#372E29", "#726255", "#ECB939"},
	},
}

func neutralTheme() Theme {
	return Theme{
		Name:       neutralName,
		House:      catalog.HouseNone,
		Primary:    "#5f5f5f",
		Secondary:  "#474747",
		Background: "#0B0B0C",
		Surface:    "#141414",
		Text:       "#FFFFFF",
		Accent:     "#AFAFAF",
		Gradient:   []string{"#0B0B0C", "#2B2B2B"},
	}
}

// ResolveTheme returns the palette for h, or the neutral palette for
// HouseNone and anything outside the four houses.
func ResolveTheme(h catalog.House) Theme {
	t, ok := houseThemes[h]
	if !ok {
		t = neutralTheme()
	}
	t.Gradient = append([]string(nil), t.Gradient...)
	return t.withDerived()
}

// HouseColor is the foreground used for a character's row: the accent of
// the named house, or a muted grey when the character has none.
func HouseColor(house string) string {
	h, ok := catalog.ParseHouse(house)
	if !ok {
		return "#8a8a8a"
	}
	return houseThemes[h].Accent
}

func (t Theme) withDerived() Theme {
	t.SurfaceAlt = t.Primary
	t.SelectionBg = t.Accent
	t.SelectionText = "#000000"
	if isDark(t.Accent) {
		t.SelectionText = t.Text
	}
	t.Muted = "#B0B0B0"
	t.Faint = "#7A7A7A"
	t.Success = "#6FCF97"
	t.Warning = "#F2C94C"
	t.Danger = "#EB5757"
	return t
}

// isDark is a rough luminance check on a #RRGGBB color.
func isDark(hex string) bool {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return true
	}
	var rgb [3]int
	for i := 0; i < 3; i++ {
		rgb[i] = hexByte(hex[i*2 : i*2+2])
	}
	lum := (299*rgb[0] + 587*rgb[1] + 114*rgb[2]) / 1000
	return lum < 128
}

func hexByte(s string) int {
	n := 0
	for _, c := range strings.ToLower(s) {
		n *= 16
		switch {
		case c >= '0' && c <= '9':
			n += int(c - '0')
		case c >= 'a' && c <= 'f':
			n += int(c-'a') + 10
		}
	}
	return n
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SecondaryText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.SurfaceAlt)).
			Padding(0, 1),

		gradient: t.Gradient,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style

	Text          lipgloss.Style
	MutedText     lipgloss.Style
	FaintText     lipgloss.Style
	AccentText    lipgloss.Style
	SecondaryText lipgloss.Style
	SuccessText   lipgloss.Style
	WarningText   lipgloss.Style
	DangerText    lipgloss.Style

	Header   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style
	Chip     lipgloss.Style

	gradient []string
}

// WithBackground returns a copy of Styles with every text style given an
// explicit background instead of inheriting the terminal's.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	return Styles{
		Background:    s.Background.Background(bg),
		Surface:       s.Surface.Background(bg),
		Text:          s.Text.Background(bg),
		MutedText:     s.MutedText.Background(bg),
		FaintText:     s.FaintText.Background(bg),
		AccentText:    s.AccentText.Background(bg),
		SecondaryText: s.SecondaryText.Background(bg),
		SuccessText:   s.SuccessText.Background(bg),
		WarningText:   s.WarningText.Background(bg),
		DangerText:    s.DangerText.Background(bg),
		Header:        s.Header.Background(bg),
		Logo:          s.Logo.Background(bg),
		Selected:      s.Selected,
		Chip:          s.Chip,
		gradient:      s.gradient,
	}
}

// GradientBar renders a full-width strip split evenly across the theme's
// gradient stops.
func (s Styles) GradientBar(width int) string {
	if width <= 0 || len(s.gradient) == 0 {
		return ""
	}
	var b strings.Builder
	stops := len(s.gradient)
	for i := 0; i < stops; i++ {
		start := i * width / stops
		end := (i + 1) * width / stops
		if end <= start {
			continue
		}
		b.WriteString(lipgloss.NewStyle().
			Background(lipgloss.Color(s.gradient[i])).
			Render(strings.Repeat(" ", end-start)))
	}
	return b.String()
}
