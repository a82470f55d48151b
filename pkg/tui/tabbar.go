package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tabpad/tabpad-cli/pkg/session"
)

// renderTabBar draws one cell per open document, in session order.
// Session order is display order, so a moved tab shows up moved.
func renderTabBar(sess *session.Session, width int) string {
	var cells []string
	for _, doc := range sess.Documents() {
		title := doc.DisplayTitle()
		if len(title) > 24 {
			title = title[:21] + "..."
		}
		if doc.ID == sess.ActiveID() {
			cells = append(cells, activeTabStyle.Render(title))
		} else {
			cells = append(cells, inactiveTabStyle.Render(title))
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	if w := lipgloss.Width(bar); w < width {
		bar += tabBarFillStyle.Render(strings.Repeat(" ", width-w))
	}
	return bar
}
