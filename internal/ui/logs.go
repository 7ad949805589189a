package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sortinghat/internal/sessionlog"
)

// logState holds the session log view.
type logState struct {
	viewport viewport.Model
	lines    []string
	follow   bool
	err      error
}

type logLinesMsg struct {
	lines []string
	err   error
}

func newLogState() logState {
	return logState{viewport: viewport.New(0, 0), follow: true}
}

// refreshLogs re-reads the tail of the session log.
func (m *Model) refreshLogs() tea.Cmd {
	path := m.logPath
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		lines, err := sessionlog.Tail(path, LogTailLines)
		return logLinesMsg{lines: lines, err: err}
	}
}

func (m *Model) handleLogLines(msg logLinesMsg) {
	m.logs.err = msg.err
	if msg.err == nil {
		m.logs.lines = msg.lines
	}
	m.updateLogViewport()
}

func (m *Model) resizeLogs() {
	m.logs.viewport.Width = maxInt(m.width-4, 1)
	m.logs.viewport.Height = maxInt(m.contentHeight()-3, 1)
	m.updateLogViewport()
}

func (m *Model) updateLogViewport() {
	styles := m.theme.Styles()
	var content string
	switch {
	case m.logs.err != nil:
		content = styles.DangerText.Render(m.logs.err.Error())
	case len(m.logs.lines) == 0:
		content = styles.MutedText.Render("No log entries yet.")
	default:
		out := make([]string, len(m.logs.lines))
		for i, line := range m.logs.lines {
			out[i] = colorizeLogLine(line, styles)
		}
		content = strings.Join(out, "\n")
	}
	m.logs.viewport.SetContent(content)
	if m.logs.follow {
		m.logs.viewport.GotoBottom()
	}
}

var (
	logStampRe     = regexp.MustCompile(`^(\S+ \d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}) `)
	logComponentRe = regexp.MustCompile(`\[[a-z]+\]`)
)

// colorizeLogLine dims the timestamp and highlights the [component] tag.
// Failure lines are shown in the danger color.
func colorizeLogLine(line string, styles Styles) string {
	rest := line
	var b strings.Builder
	if m := logStampRe.FindStringSubmatch(line); m != nil {
		b.WriteString(styles.FaintText.Render(m[1]))
		b.WriteString(" ")
		rest = line[len(m[0]):]
	}
	msgStyle := styles.Text
	lower := strings.ToLower(rest)
	if strings.Contains(lower, "failed") || strings.Contains(lower, "error") {
		msgStyle = styles.DangerText
	}
	if loc := logComponentRe.FindStringIndex(rest); loc != nil && loc[0] == 0 {
		b.WriteString(styles.AccentText.Render(rest[:loc[1]]))
		rest = rest[loc[1]:]
	}
	b.WriteString(msgStyle.Render(rest))
	return b.String()
}

func (m Model) handleLogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vp := &m.logs.viewport
	switch {
	case key.Matches(msg, m.keys.ToggleFollow):
		m.logs.follow = !m.logs.follow
		if m.logs.follow {
			vp.GotoBottom()
			return m, m.refreshLogs()
		}
	case key.Matches(msg, m.keys.Down):
		vp.ScrollDown(1)
		m.logs.follow = false
	case key.Matches(msg, m.keys.Up):
		vp.ScrollUp(1)
		m.logs.follow = false
	case key.Matches(msg, m.keys.HalfPageDown):
		vp.HalfPageDown()
		m.logs.follow = false
	case key.Matches(msg, m.keys.HalfPageUp):
		vp.HalfPageUp()
		m.logs.follow = false
	case key.Matches(msg, m.keys.Top):
		vp.GotoTop()
		m.logs.follow = false
	case key.Matches(msg, m.keys.Bottom):
		vp.GotoBottom()
		m.logs.follow = true
	}
	return m, nil
}

func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	status := styles.FaintText.Render(truncateMiddle(m.logPath, maxInt(m.width-20, 10)))
	if m.logs.follow {
		status = styles.SuccessText.Render("following") + "  " + status
	} else {
		status = styles.WarningText.Render("paused") + "  " + status
	}
	content := m.logs.viewport.View() + "\n" + status
	return m.renderBox("Session Log", content, m.width, m.contentHeight(), true)
}
