package tui

import tea "github.com/charmbracelet/bubbletea"

// StatusMsg carries transient feedback for the status bar
type StatusMsg string

// ErrorMsg carries a failure the user should see
type ErrorMsg struct {
	Err error
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(text)
	}
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}
