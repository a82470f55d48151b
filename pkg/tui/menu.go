package tui

import "strings"

// MenuItem is one selectable entry in a menu overlay
type MenuItem struct {
	ID    string
	Label string
}

// MenuModel is a scrolling single-select list used for the transform
// catalog, the encoding picker, tab operations and recent files
type MenuModel struct {
	title    string
	items    []MenuItem
	filtered []int // indexes into items matching the filter
	filter   string
	cursor   int
	isActive bool
	height   int
	width    int
}

// NewMenu creates an empty menu
func NewMenu() *MenuModel {
	return &MenuModel{
		height: 12,
		width:  50,
	}
}

// Show activates the menu with a title and items
func (m *MenuModel) Show(title string, items []MenuItem) {
	m.title = title
	m.items = items
	m.filter = ""
	m.cursor = 0
	m.isActive = true
	m.applyFilter()
}

// Hide deactivates the menu
func (m *MenuModel) Hide() {
	m.isActive = false
}

// Active returns whether the menu is shown
func (m *MenuModel) Active() bool {
	return m.isActive
}

// SetSize sets the menu dimensions
func (m *MenuModel) SetSize(width, height int) {
	if width > 20 {
		m.width = width
	}
	if height > 4 {
		m.height = height
	}
}

// Selected returns the item under the cursor
func (m *MenuModel) Selected() (MenuItem, bool) {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		return MenuItem{}, false
	}
	return m.items[m.filtered[m.cursor]], true
}

// MoveUp moves the cursor up one entry
func (m *MenuModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveDown moves the cursor down one entry
func (m *MenuModel) MoveDown() {
	if m.cursor < len(m.filtered)-1 {
		m.cursor++
	}
}

// TypeFilter appends a character to the filter text
func (m *MenuModel) TypeFilter(s string) {
	m.filter += s
	m.cursor = 0
	m.applyFilter()
}

// BackspaceFilter removes the last filter character
func (m *MenuModel) BackspaceFilter() {
	if m.filter != "" {
		runes := []rune(m.filter)
		m.filter = string(runes[:len(runes)-1])
		m.cursor = 0
		m.applyFilter()
	}
}

func (m *MenuModel) applyFilter() {
	m.filtered = m.filtered[:0]
	needle := strings.ToLower(m.filter)
	for i, item := range m.items {
		if needle == "" || strings.Contains(strings.ToLower(item.Label), needle) {
			m.filtered = append(m.filtered, i)
		}
	}
}

// View renders the menu overlay
func (m *MenuModel) View() string {
	if !m.isActive {
		return ""
	}

	var b strings.Builder
	title := m.title
	if m.filter != "" {
		title += "  /" + m.filter
	}
	b.WriteString(dialogTitleStyle.Render(title))
	b.WriteString("\n\n")

	visible := m.height - 4
	if visible < 1 {
		visible = 1
	}

	// Keep the cursor in the visible window
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	if len(m.filtered) == 0 {
		b.WriteString(helpTextStyle.Render("(no matches)"))
	}

	for i := start; i < end; i++ {
		label := m.items[m.filtered[i]].Label
		if i == m.cursor {
			b.WriteString(menuCursorStyle.Render("> " + label))
		} else {
			b.WriteString(menuItemStyle.Render("  " + label))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(helpTextStyle.Render("↑/↓ move · enter select · esc cancel · type to filter"))

	return dialogStyle.Width(m.width).Render(b.String())
}
