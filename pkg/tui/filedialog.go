package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

// FileDialog wraps the filepicker for the open-file flow
type FileDialog struct {
	picker   filepicker.Model
	isActive bool
}

// NewFileDialog creates a file picker rooted at the working directory
func NewFileDialog() *FileDialog {
	fp := filepicker.New()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	if wd, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = wd
	}

	return &FileDialog{
		picker: fp,
	}
}

// Show activates the dialog and returns the command that loads the
// current directory listing
func (d *FileDialog) Show() tea.Cmd {
	d.isActive = true
	return d.picker.Init()
}

// Hide deactivates the dialog
func (d *FileDialog) Hide() {
	d.isActive = false
}

// Active returns whether the dialog is shown
func (d *FileDialog) Active() bool {
	return d.isActive
}

// SetHeight sets the visible height of the listing
func (d *FileDialog) SetHeight(height int) {
	if height > 3 {
		d.picker.Height = height
	}
}

// Update forwards messages to the picker and reports a selection.
// The selected path is empty until the user picks a file.
func (d *FileDialog) Update(msg tea.Msg) (tea.Cmd, string) {
	var cmd tea.Cmd
	d.picker, cmd = d.picker.Update(msg)

	if ok, path := d.picker.DidSelectFile(msg); ok {
		d.isActive = false
		return cmd, path
	}
	return cmd, ""
}

// View renders the dialog
func (d *FileDialog) View() string {
	if !d.isActive {
		return ""
	}
	body := dialogTitleStyle.Render("Open File") + "\n\n" + d.picker.View()
	return dialogStyle.Render(body)
}
