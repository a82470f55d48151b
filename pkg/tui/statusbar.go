package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tabpad/tabpad-cli/pkg/models"
	"github.com/tabpad/tabpad-cli/pkg/utils"
)

// renderStatusBar draws cursor position, document stats, encoding and
// language, with any transient message on the left
func renderStatusBar(doc *models.Document, cursorOffset, width int, message string, isErr bool) string {
	line, col := utils.CursorPosition(doc.Content, cursorOffset)

	left := message
	if isErr {
		left = statusErrStyle.Render(message)
	} else if message != "" {
		left = statusMsgStyle.Render(message)
	}

	right := fmt.Sprintf("Ln %d, Col %d | %d words %d chars | %s | %s",
		line, col,
		utils.CountWords(doc.Content),
		utils.CountChars(doc.Content),
		doc.Encoding,
		doc.Language)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
