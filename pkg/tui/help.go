package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/muesli/reflow/wordwrap"
)

// HelpModel renders the key reference in a scrollable viewport
type HelpModel struct {
	viewport viewport.Model
	isActive bool
	width    int
}

// NewHelp creates the help overlay
func NewHelp() *HelpModel {
	return &HelpModel{
		viewport: viewport.New(60, 20),
		width:    60,
	}
}

// Show activates the help overlay
func (h *HelpModel) Show() {
	h.isActive = true
	h.viewport.SetContent(h.content())
	h.viewport.GotoTop()
}

// Hide deactivates the help overlay
func (h *HelpModel) Hide() {
	h.isActive = false
}

// Active returns whether the help overlay is shown
func (h *HelpModel) Active() bool {
	return h.isActive
}

// SetSize sets the overlay dimensions
func (h *HelpModel) SetSize(width, height int) {
	if width > 30 {
		h.width = width
		h.viewport.Width = width - 6
	}
	if height > 8 {
		h.viewport.Height = height - 6
	}
}

// ScrollUp scrolls the help content up
func (h *HelpModel) ScrollUp() {
	h.viewport.LineUp(1)
}

// ScrollDown scrolls the help content down
func (h *HelpModel) ScrollDown() {
	h.viewport.LineDown(1)
}

func helpLine(key ShortcutKey, desc string) string {
	_, warning := key.GetWithWarning()
	label := FormatShortcutForHelp(key)
	line := fmt.Sprintf("  %s  %s", helpKeyStyle.Render(fmt.Sprintf("%-10s", label)), helpTextStyle.Render(desc))
	if warning != "" {
		line += " " + helpTextStyle.Render(warning)
	}
	return line
}

func (h *HelpModel) content() string {
	var b strings.Builder

	section := func(title string) {
		b.WriteString("\n")
		b.WriteString(dialogTitleStyle.Render(title))
		b.WriteString("\n")
	}

	section("Files")
	b.WriteString(helpLine(Shortcuts.NewTab, "New tab") + "\n")
	b.WriteString(helpLine(Shortcuts.Open, "Open file") + "\n")
	b.WriteString(helpLine(Shortcuts.Save, "Save (prompts for a path on new files)") + "\n")
	b.WriteString(helpLine(Shortcuts.Recent, "Recently opened files") + "\n")
	b.WriteString(helpLine(Shortcuts.Encoding, "Change file encoding") + "\n")

	section("Tabs")
	b.WriteString(helpLine(Shortcuts.CloseTab, "Close tab (prompts on unsaved changes)") + "\n")
	b.WriteString(helpLine(Shortcuts.NextTab, "Next tab") + "\n")
	b.WriteString(helpLine(Shortcuts.PrevTab, "Previous tab") + "\n")
	b.WriteString(helpLine(Shortcuts.MoveTabFwd, "Move tab right") + "\n")
	b.WriteString(helpLine(Shortcuts.MoveTabBack, "Move tab left") + "\n")
	b.WriteString(helpLine(Shortcuts.DupTab, "Duplicate tab") + "\n")
	b.WriteString(helpLine(Shortcuts.Reopen, "Reopen last closed tab") + "\n")
	b.WriteString(helpLine(Shortcuts.TabMenu, "Tab operations (close others, close to side)") + "\n")

	section("Search")
	b.WriteString(helpLine(Shortcuts.Find, "Find") + "\n")
	b.WriteString(helpLine(Shortcuts.FindNext, "Find next") + "\n")
	b.WriteString(helpLine(Shortcuts.FindPrev, "Find previous") + "\n")
	b.WriteString(helpLine(Shortcuts.Replace, "Replace all") + "\n")
	b.WriteString(helpLine(Shortcuts.GoToLine, "Go to line") + "\n")

	section("Editing")
	b.WriteString(helpLine(Shortcuts.Undo, "Undo") + "\n")
	b.WriteString(helpLine(Shortcuts.Redo, "Redo") + "\n")
	b.WriteString(helpLine(Shortcuts.Transform, "Text transforms (case, lines, whitespace...)") + "\n")
	b.WriteString(helpLine(Shortcuts.SetMark, "Set/clear selection mark") + "\n")
	b.WriteString(helpLine(Shortcuts.SelectAll, "Select all") + "\n")
	b.WriteString(helpLine(Shortcuts.SelectWord, "Select word under cursor") + "\n")
	b.WriteString(helpLine(Shortcuts.SelectLine, "Select current line") + "\n")
	b.WriteString(helpLine(Shortcuts.Cut, "Cut selection") + "\n")
	b.WriteString(helpLine(Shortcuts.Copy, "Copy selection") + "\n")
	b.WriteString(helpLine(Shortcuts.Paste, "Paste") + "\n")
	b.WriteString(helpLine(Shortcuts.DeleteLine, "Delete current line") + "\n")
	b.WriteString(helpLine(Shortcuts.DupLine, "Duplicate line below") + "\n")
	b.WriteString(helpLine(Shortcuts.DupLineAbove, "Duplicate line above") + "\n")
	b.WriteString(helpLine(Shortcuts.MoveLnUp, "Move line up") + "\n")
	b.WriteString(helpLine(Shortcuts.MoveLnDown, "Move line down") + "\n")
	b.WriteString(helpLine(Shortcuts.Transpose, "Transpose characters") + "\n")
	b.WriteString(helpLine(Shortcuts.Bracket, "Jump to matching bracket") + "\n")
	b.WriteString(helpLine(Shortcuts.InsertTodo, "Insert TODO marker") + "\n")
	b.WriteString(helpLine(Shortcuts.InsertTime, "Insert timestamp") + "\n")

	section("System")
	b.WriteString(helpLine(Shortcuts.ToggleStatus, "Toggle status bar") + "\n")
	b.WriteString(helpLine(Shortcuts.Help, "Toggle this help") + "\n")
	b.WriteString(helpLine(Shortcuts.Quit, "Quit (prompts for unsaved tabs)") + "\n")
	b.WriteString(helpLine(Shortcuts.Kill, "Quit immediately") + "\n")

	if tip := GetTerminalSetupMessage(); tip != "" {
		b.WriteString("\n")
		b.WriteString(wordwrap.String(helpTextStyle.Render(tip), h.viewport.Width))
		b.WriteString("\n")
	}

	return b.String()
}

// View renders the help overlay
func (h *HelpModel) View() string {
	if !h.isActive {
		return ""
	}
	body := dialogTitleStyle.Render("Key Reference") + "\n" +
		h.viewport.View() + "\n" +
		helpTextStyle.Render("↑/↓ scroll · esc close")
	return dialogStyle.Width(h.width).Render(body)
}
