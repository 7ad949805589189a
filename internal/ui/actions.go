package ui

import (
	"log"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sortinghat/internal/browser"
)

var (
	defaultCopy = clipboard.WriteAll
	defaultOpen = browser.Open
)

func copyCmd(copyText func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		err := copyText(text)
		if err != nil {
			log.Printf("[ui] copy failed: %v", err)
		}
		return actionResultMsg{success: "Copied portrait URL", failure: "Copy failed", err: err}
	}
}

func openCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		err := open(url)
		if err != nil {
			log.Printf("[ui] open %s failed: %v", url, err)
		}
		return actionResultMsg{success: "Opened in browser", failure: "Could not open browser", err: err}
	}
}
