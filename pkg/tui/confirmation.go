package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationConfig holds the configuration for a close confirmation
type ConfirmationConfig struct {
	Title   string // Dialog title
	Message string // Main confirmation message
	Width   int    // Width for the dialog
}

// ConfirmationModel handles the three-way unsaved-changes prompt:
// save and proceed, discard and proceed, or cancel. Cancel is the answer
// bulk closes use to stop walking the remaining tabs.
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onSave    func() tea.Cmd
	onDiscard func() tea.Cmd
	onCancel  func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onSave, onDiscard, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onSave = onSave
	m.onDiscard = onDiscard
	m.onCancel = onCancel
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y", "s", "S":
		m.active = false
		if m.onSave != nil {
			return m.onSave()
		}
		return nil

	case "n", "N", "d", "D":
		m.active = false
		if m.onDiscard != nil {
			return m.onDiscard()
		}
		return nil

	case "esc", "c", "C":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the confirmation dialog
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	saveStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	discardStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	cancelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	var b strings.Builder
	b.WriteString(dialogTitleStyle.Render(m.config.Title))
	b.WriteString("\n\n")
	b.WriteString(m.config.Message)
	b.WriteString("\n\n")
	b.WriteString(saveStyle.Render("[y] Save"))
	b.WriteString("  ")
	b.WriteString(discardStyle.Render("[n] Discard"))
	b.WriteString("  ")
	b.WriteString(cancelStyle.Render("[esc] Cancel"))

	width := m.config.Width
	if width <= 0 {
		width = 50
	}

	return dialogStyle.Width(width).Render(b.String())
}
