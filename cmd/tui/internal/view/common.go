package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/contasimple/internal/notify"
)

type CommonModel struct {
	Width  int
	Height int
}

// pageMsg is a result addressed to one page. The shell delivers it to that page
// even when another page is on screen.
type pageMsg interface {
	targetPage() Page
}

// NotifyMsg asks the shell to show a toast.
type NotifyMsg struct {
	Notification notify.Notification
}

func notifyCmd(n notify.Notification) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Notification: n}
	}
}

// SwitchPageMsg asks the shell to show another page.
type SwitchPageMsg struct {
	Page Page
	// Open the registration form on arrival.
	OpenForm bool
}
