package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PromptModel is a single-line input with a label, used for find,
// replace, go to line and save-as paths
type PromptModel struct {
	input    textinput.Model
	label    string
	isActive bool
	width    int
}

// NewPrompt creates a new prompt component
func NewPrompt() *PromptModel {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 50 // Default width, will be adjusted

	return &PromptModel{
		input: ti,
	}
}

// Show activates the prompt with a label, placeholder and initial value
func (p *PromptModel) Show(label, placeholder, value string) {
	p.label = label
	p.input.Placeholder = placeholder
	p.input.SetValue(value)
	p.input.CursorEnd()
	p.isActive = true
	p.input.Focus()
}

// Hide deactivates the prompt
func (p *PromptModel) Hide() {
	p.isActive = false
	p.input.Blur()
}

// Active returns whether the prompt is shown
func (p *PromptModel) Active() bool {
	return p.isActive
}

// Value returns the current input text
func (p *PromptModel) Value() string {
	return p.input.Value()
}

// SetWidth sets the width for the prompt
func (p *PromptModel) SetWidth(width int) {
	p.width = width
	p.input.Width = width - len(p.label) - 10
}

// Update handles tea messages for the prompt input
func (p *PromptModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// View renders the prompt line
func (p *PromptModel) View() string {
	if !p.isActive {
		return ""
	}

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("170")).
		Bold(true)

	return labelStyle.Render(p.label+": ") + p.input.View()
}
