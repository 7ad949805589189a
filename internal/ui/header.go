package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/sortinghat/internal/hpapi"
)

const appName = "sortinghat"

// renderHeader renders the status bar: app name, active house and data state.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bar := newBarPainter(m.theme.Surface)
	sep := bar.gap(2)

	parts := []string{bar.paint(appName, styles.Logo)}

	house := "No house selected"
	if m.snapshot.SelectedHouse != "" {
		house = string(m.snapshot.SelectedHouse)
	}
	parts = append(parts,
		bar.paint("House:", styles.MutedText)+bar.gap(1)+bar.paint(house, styles.Text))

	switch {
	case !m.snapshot.Loaded && m.snapshot.LastError != nil:
		retry := "Retrying..."
		if m.snapshot.IsOffline() {
			retry = fmt.Sprintf("Retrying (%d failed attempts)...", m.snapshot.ConsecutiveFailures)
		}
		parts = append(parts,
			bar.paint("API "+classifyConnectionError(m.snapshot.LastError), styles.DangerText),
			bar.paint(retry, styles.WarningText.Bold(true)))
	case !m.snapshot.Loaded:
		parts = append(parts, bar.paint("Summoning the archive...", styles.WarningText.Bold(true)))
	default:
		parts = append(parts,
			bar.paint("Characters:", styles.MutedText)+bar.gap(1)+
				bar.paint(fmt.Sprintf("%d", len(m.snapshot.Characters)), styles.Text),
			bar.paint("Spells:", styles.MutedText)+bar.gap(1)+
				bar.paint(fmt.Sprintf("%d", len(m.snapshot.Spells)), styles.Text))
		if !m.snapshot.LastUpdated.IsZero() && m.width >= LayoutCompactWidth {
			parts = append(parts,
				bar.paint("Loaded", styles.FaintText)+bar.gap(1)+
					bar.paint(m.snapshot.LastUpdated.Format("15:04:05"), styles.MutedText))
		}
	}

	if m.flash != "" {
		parts = append(parts, bar.paint(m.flash, styles.AccentText))
	}

	return styles.Header.Width(m.width).Render(bar.join(parts, sep))
}

// classifyConnectionError returns a short description of a load failure.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	var httpErr *hpapi.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Sprintf("HTTP %d", httpErr.StatusCode)
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	default:
		return "UNREACHABLE"
	}
}

// renderCommandBar renders the key hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bar := newBarPainter(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewHouses:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"enter", "Choose house"},
			{"C", "Characters"},
			{"S", "Spells"},
			{"?", "More"},
		}
	case ViewDetail:
		commands = []cmd{{"1-5", "Related"}}
		if m.detail != nil && m.detail.tracker != nil && m.detail.tracker.CanTrigger() {
			commands = append(commands, cmd{"p", "Find portrait"})
		}
		if m.detail != nil && m.detail.portraitURL() != "" {
			commands = append(commands, cmd{"y", "Copy URL"}, cmd{"o", "Open"})
		}
		commands = append(commands, cmd{"esc", "Back"}, cmd{"?", "More"})
	case ViewSpells:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"H", "Houses"},
			{"C", "Characters"},
			{"?", "More"},
		}
	case ViewLog:
		followLabel := "Pause"
		if !m.logs.follow {
			followLabel = "Follow"
		}
		commands = []cmd{
			{"Space", followLabel},
			{"j/k", "Scroll"},
			{"C", "Characters"},
			{"?", "More"},
		}
	default: // ViewCharacters
		commands = []cmd{
			{"/", "Search"},
			{"f", m.characters.filter.House.Token()},
			{"c", chipHint(m.characters.filter)},
			{"x", "Clear"},
			{"enter", "Details"},
			{"H", "Houses"},
			{"?", "More"},
		}
	}

	colon := bar.fill(":")
	sep := bar.gap(2)

	segments := make([]string, 0, len(commands))
	for _, c := range commands {
		segments = append(segments,
			bar.paint(c.key, styles.AccentText)+colon+bar.paint(c.desc, styles.MutedText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		Render(bar.join(segments, sep))
}
