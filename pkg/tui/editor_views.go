package tui

import "github.com/charmbracelet/lipgloss"

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	body := a.editor.Textarea.View()
	if overlay := a.overlayView(); overlay != "" {
		body = lipgloss.Place(a.width, a.height-2, lipgloss.Center, lipgloss.Center, overlay)
	}

	bottom := ""
	if a.prompt.Active() {
		bottom = a.prompt.View()
	} else if a.settings.UI.ShowStatusBar {
		doc := a.session.Active()
		bottom = renderStatusBar(doc, a.editor.CursorOffset(), a.width, a.statusText, a.statusErr)
	}

	view := renderTabBar(a.session, a.width) + "\n" + body
	if bottom != "" {
		view += "\n" + bottom
	}
	return view
}

func (a *App) overlayView() string {
	switch {
	case a.confirm.Active():
		return a.confirm.View()
	case a.dialog.Active():
		return a.dialog.View()
	case a.menu.Active():
		return a.menu.View()
	case a.help.Active():
		return a.help.View()
	}
	return ""
}
