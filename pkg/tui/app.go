package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tabpad/tabpad-cli/pkg/files"
	"github.com/tabpad/tabpad-cli/pkg/models"
	"github.com/tabpad/tabpad-cli/pkg/session"
	"github.com/tabpad/tabpad-cli/pkg/transform"
)

// mode tracks which surface owns the keyboard
type mode int

const (
	modeEdit mode = iota
	modeConfirmClose
	modeOpenPicker
	modeSavePrompt
	modeFindPrompt
	modeReplacePrompt
	modeReplaceWithPrompt
	modeGoToPrompt
	modeRecentMenu
	modeTransformMenu
	modeEncodingMenu
	modeTabMenu
	modeHelp
)

// App is the root Bubble Tea model. It owns the tab session and routes
// keys to the editor or whichever overlay is active.
type App struct {
	session  *session.Session
	settings *models.Settings
	editor   *EditorState
	confirm  *ConfirmationModel
	prompt   *PromptModel
	dialog   *FileDialog
	menu     *MenuModel
	help     *HelpModel

	mode mode

	width  int
	height int

	statusText string
	statusErr  bool

	lastQuery    string
	replaceQuery string

	// pendingClose is the queue of tab ids a bulk close is walking.
	// A cancel answer on any prompt abandons the rest of the queue.
	pendingClose   []string
	quitAfterClose bool
	closeAfterSave string // tab to close once its save-as completes
	saveTargetID   string // tab a save-as prompt is collecting a path for
}

// NewApp builds the application model. Any paths given are opened as
// tabs; paths that fail to read surface in the status bar instead of
// aborting startup.
func NewApp(settings *models.Settings, paths []string) *App {
	a := &App{
		session:  session.NewSession(settings.Files.MaxRecent),
		settings: settings,
		editor:   NewEditorState(),
		confirm:  NewConfirmation(),
		prompt:   NewPrompt(),
		dialog:   NewFileDialog(),
		menu:     NewMenu(),
		help:     NewHelp(),
	}

	for _, path := range paths {
		text, enc, err := files.Read(path)
		if err != nil {
			a.statusText = fmt.Sprintf("failed to open %s: %v", path, err)
			a.statusErr = true
			continue
		}
		a.session.OpenLoaded(path, text, enc)
	}

	a.loadActive()
	return a
}

// Session exposes the tab session, mainly for tests
func (a *App) Session() *session.Session {
	return a.session
}

// Editor exposes the editor state, mainly for tests
func (a *App) Editor() *EditorState {
	return a.editor
}

func (a *App) Init() tea.Cmd {
	return textarea.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.setSize(msg.Width, msg.Height)
		return a, nil

	case StatusMsg:
		a.statusText = string(msg)
		a.statusErr = false
		return a, nil

	case ErrorMsg:
		a.statusText = msg.Err.Error()
		a.statusErr = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Non-key messages drive the file picker's directory reads and the
	// cursor blink of whichever input is focused.
	if a.mode == modeOpenPicker {
		cmd, path := a.dialog.Update(msg)
		if path != "" {
			a.mode = modeEdit
			return a, tea.Batch(cmd, a.openPath(path))
		}
		return a, cmd
	}

	if a.prompt.Active() {
		return a, a.prompt.Update(msg)
	}

	var cmd tea.Cmd
	a.editor.Textarea, cmd = a.editor.Textarea.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The kill switch works everywhere, even mid prompt
	if msg.String() == Shortcuts.Kill.Get() {
		return a, tea.Quit
	}

	switch a.mode {
	case modeConfirmClose:
		return a, a.confirm.Update(msg)

	case modeOpenPicker:
		if msg.String() == "esc" {
			a.dialog.Hide()
			a.mode = modeEdit
			return a, nil
		}
		cmd, path := a.dialog.Update(msg)
		if path != "" {
			a.mode = modeEdit
			return a, tea.Batch(cmd, a.openPath(path))
		}
		return a, cmd

	case modeSavePrompt, modeFindPrompt, modeReplacePrompt, modeReplaceWithPrompt, modeGoToPrompt:
		return a.handlePromptKey(msg)

	case modeRecentMenu, modeTransformMenu, modeEncodingMenu, modeTabMenu:
		return a.handleMenuKey(msg)

	case modeHelp:
		switch msg.String() {
		case "esc", "q", Shortcuts.Help.Get():
			a.help.Hide()
			a.mode = modeEdit
		case "up", "k":
			a.help.ScrollUp()
		case "down", "j":
			a.help.ScrollDown()
		}
		return a, nil
	}

	return a.handleEditKey(msg)
}

func (a *App) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.prompt.Hide()
		canceled := a.mode
		a.mode = modeEdit
		if canceled == modeSavePrompt {
			return a, a.cancelSaveAs()
		}
		return a, nil

	case "enter":
		value := a.prompt.Value()
		a.prompt.Hide()
		submitted := a.mode
		a.mode = modeEdit

		switch submitted {
		case modeSavePrompt:
			return a, a.completeSaveAs(value)
		case modeFindPrompt:
			return a, a.startSearch(value)
		case modeReplacePrompt:
			if value == "" {
				return a, statusCmd("Replace needs a search term")
			}
			a.replaceQuery = value
			a.mode = modeReplaceWithPrompt
			a.prompt.Show("Replace with", "", "")
			return a, nil
		case modeReplaceWithPrompt:
			return a, a.replaceAll(a.replaceQuery, value)
		case modeGoToPrompt:
			return a, a.goToLine(value)
		}
		return a, nil
	}

	return a, a.prompt.Update(msg)
}

func (a *App) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.menu.Hide()
		a.mode = modeEdit
		return a, nil

	case "up", "ctrl+p":
		a.menu.MoveUp()
		return a, nil

	case "down", "ctrl+n":
		a.menu.MoveDown()
		return a, nil

	case "backspace":
		a.menu.BackspaceFilter()
		return a, nil

	case "enter":
		item, ok := a.menu.Selected()
		a.menu.Hide()
		selected := a.mode
		a.mode = modeEdit
		if !ok {
			return a, nil
		}

		switch selected {
		case modeRecentMenu:
			return a, a.openPath(item.ID)
		case modeTransformMenu:
			return a, a.applyTransformByID(item.ID)
		case modeEncodingMenu:
			return a, a.changeEncoding(item.ID)
		case modeTabMenu:
			return a, a.runTabOperation(item.ID)
		}
		return a, nil
	}

	if msg.Type == tea.KeyRunes {
		a.menu.TypeFilter(string(msg.Runes))
	}
	return a, nil
}

func (a *App) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Backspace and delete consume a live selection instead of a single
	// character
	if key := msg.String(); key == "backspace" || key == "delete" {
		if start, end, ok := a.editor.SelectionRange(); ok && start != end {
			return a, a.deleteSelection()
		}
	}

	switch msg.String() {
	case Shortcuts.Quit.Get():
		return a, a.requestClose(a.session.CloseTargets(session.CloseAll, a.session.ActiveID()), true)

	case Shortcuts.Help.Get():
		a.help.Show()
		a.mode = modeHelp
		return a, nil

	case Shortcuts.NewTab.Get():
		a.syncContent()
		a.session.New()
		a.loadActive()
		return a, statusCmd("New tab")

	case Shortcuts.Open.Get():
		a.syncContent()
		a.mode = modeOpenPicker
		return a, a.dialog.Show()

	case Shortcuts.Recent.Get():
		return a, a.showRecentMenu()

	case Shortcuts.Save.Get():
		return a, a.saveActive()

	case Shortcuts.CloseTab.Get():
		return a, a.requestClose([]string{a.session.ActiveID()}, false)

	case Shortcuts.DupTab.Get():
		return a, a.duplicateActive()

	case Shortcuts.Reopen.Get():
		return a, a.reopenClosed()

	case Shortcuts.NextTab.Get():
		a.switchTab(true)
		return a, nil

	case Shortcuts.PrevTab.Get():
		a.switchTab(false)
		return a, nil

	case Shortcuts.MoveTabFwd.Get():
		a.session.MoveTab(a.session.ActiveID(), 1)
		return a, nil

	case Shortcuts.MoveTabBack.Get():
		a.session.MoveTab(a.session.ActiveID(), -1)
		return a, nil

	case Shortcuts.TabMenu.Get():
		return a, a.showTabMenu()

	case Shortcuts.Find.Get():
		a.syncContent()
		a.mode = modeFindPrompt
		a.prompt.Show("Find", "text to find", a.lastQuery)
		return a, nil

	case Shortcuts.FindNext.Get():
		return a, a.findNext()

	case Shortcuts.FindPrev.Get():
		return a, a.findPrev()

	case Shortcuts.Replace.Get():
		a.syncContent()
		a.mode = modeReplacePrompt
		a.prompt.Show("Replace", "text to replace", a.lastQuery)
		return a, nil

	case Shortcuts.GoToLine.Get():
		a.syncContent()
		a.mode = modeGoToPrompt
		a.prompt.Show("Go to line", "line number", "")
		return a, nil

	case Shortcuts.Transform.Get():
		return a, a.showTransformMenu()

	case Shortcuts.Encoding.Get():
		return a, a.showEncodingMenu()

	case Shortcuts.Undo.Get():
		return a, a.undoEdit()

	case Shortcuts.Redo.Get():
		return a, a.redoEdit()

	case Shortcuts.SetMark.Get():
		if a.editor.HasMark {
			a.editor.ClearMark()
			return a, statusCmd("Mark cleared")
		}
		a.editor.SetMark()
		return a, statusCmd("Mark set")

	case Shortcuts.SelectAll.Get():
		return a, a.selectAll()

	case Shortcuts.SelectWord.Get():
		return a, a.selectCurrentWord()

	case Shortcuts.SelectLine.Get():
		return a, a.selectCurrentLine()

	case Shortcuts.Cut.Get():
		return a, a.cutSelection()

	case Shortcuts.Copy.Get():
		return a, a.copySelection()

	case Shortcuts.Paste.Get():
		return a, a.pasteClipboard()

	case Shortcuts.DeleteLine.Get():
		return a, a.deleteCurrentLine()

	case Shortcuts.DupLine.Get():
		return a, a.duplicateLine(true)

	case Shortcuts.DupLineAbove.Get():
		return a, a.duplicateLine(false)

	case Shortcuts.MoveLnUp.Get():
		return a, a.moveCurrentLine(-1)

	case Shortcuts.MoveLnDown.Get():
		return a, a.moveCurrentLine(1)

	case Shortcuts.Transpose.Get():
		return a, a.transposeAtCursor()

	case Shortcuts.Bracket.Get():
		return a, a.jumpToMatchingBracket()

	case Shortcuts.InsertTodo.Get():
		return a, a.insertLiteral(transform.TODOLiteral)

	case Shortcuts.InsertTime.Get():
		return a, a.insertLiteral(transform.Timestamp())

	case Shortcuts.ToggleStatus.Get():
		return a, a.toggleStatusBar()

	case "esc":
		a.editor.ClearMark()
		a.statusText = ""
		return a, nil
	}

	before := a.editor.Textarea.Value()
	beforeOff := a.editor.CursorOffset()
	beforeContent := before
	if doc := a.session.Active(); doc != nil && a.editor.DocID == doc.ID {
		beforeContent = doc.Content
	}

	var cmd tea.Cmd
	a.editor.Textarea, cmd = a.editor.Textarea.Update(msg)

	// Snapshot typed edits on word boundaries and deletions rather than
	// every keystroke, so one undo takes back a word, not a character
	if a.editor.Textarea.Value() != before {
		switch msg.String() {
		case "enter", " ", "tab", "backspace", "delete":
			a.editor.PushUndo(beforeContent, beforeOff)
		default:
			if len(a.editor.undoStack) == 0 {
				a.editor.PushUndo(beforeContent, beforeOff)
			}
		}
	}

	a.syncContent()
	return a, cmd
}

func (a *App) setSize(width, height int) {
	a.width = width
	a.height = height

	// One row for the tab bar, one for the status bar or prompt
	a.editor.Textarea.SetWidth(width)
	a.editor.Textarea.SetHeight(height - 2)

	a.prompt.SetWidth(width)
	a.menu.SetSize(min(width-10, 64), height-6)
	a.help.SetSize(min(width-10, 72), height-4)
	a.dialog.SetHeight(height - 10)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
