package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/tabpad/tabpad-cli/pkg/models"
)

// EditorState wraps the textarea with the document it is editing and a
// mark for range selection. The textarea tracks the cursor as a row and
// rune column; the text operations all work on byte offsets, so the
// conversions live here.
type EditorState struct {
	Textarea textarea.Model
	DocID    string

	// MarkOffset anchors a selection at a byte offset. The selection is
	// the span between the mark and the current cursor, in either order.
	MarkOffset int
	HasMark    bool

	// loadedContent is the document text the buffer was last loaded from
	// or synced to. The textarea normalizes tabs to spaces on SetValue,
	// so its value can differ from the document without the user having
	// edited anything; baseValue is the textarea's rendering of
	// loadedContent, the baseline edits are detected against.
	loadedContent string
	baseValue     string

	undoStack []undoState
	redoStack []undoState
}

// undoState is a buffer snapshot taken before a mutation
type undoState struct {
	content string
	cursor  int
}

const maxUndoLevels = 100

// NewEditorState creates the editor component with sensible defaults
func NewEditorState() *EditorState {
	ta := textarea.New()
	ta.Placeholder = "Start typing..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = true
	ta.Focus()

	return &EditorState{
		Textarea: ta,
	}
}

// SetDocument loads a document into the textarea, clears the mark and
// drops the edit history of whatever was loaded before
func (e *EditorState) SetDocument(doc *models.Document) {
	e.DocID = doc.ID
	e.Textarea.SetValue(doc.Content)
	e.moveToTop()
	e.loadedContent = doc.Content
	e.baseValue = e.Textarea.Value()
	e.undoStack = nil
	e.redoStack = nil
	e.ClearMark()
}

// Modified reports whether the buffer changed since it was last loaded
// or synced
func (e *EditorState) Modified() bool {
	return e.Textarea.Value() != e.baseValue
}

// moveToTop homes the cursor one row at a time; the textarea exports no
// direct jump to the first line
func (e *EditorState) moveToTop() {
	for e.Textarea.Line() > 0 {
		e.Textarea.CursorUp()
	}
	e.Textarea.CursorStart()
}

// PushUndo snapshots pre-mutation state onto the undo stack. Any new
// mutation invalidates the redo history.
func (e *EditorState) PushUndo(content string, cursor int) {
	e.undoStack = append(e.undoStack, undoState{content: content, cursor: cursor})
	if len(e.undoStack) > maxUndoLevels {
		e.undoStack = e.undoStack[len(e.undoStack)-maxUndoLevels:]
	}
	e.redoStack = nil
}

// Undo pops the newest snapshot, parking the current state on the redo
// stack. Returns ok=false when there is nothing to undo.
func (e *EditorState) Undo(content string, cursor int) (string, int, bool) {
	if len(e.undoStack) == 0 {
		return "", 0, false
	}
	last := e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]
	e.redoStack = append(e.redoStack, undoState{content: content, cursor: cursor})
	return last.content, last.cursor, true
}

// Redo reverses the newest undo. Returns ok=false when there is nothing
// to redo.
func (e *EditorState) Redo(content string, cursor int) (string, int, bool) {
	if len(e.redoStack) == 0 {
		return "", 0, false
	}
	last := e.redoStack[len(e.redoStack)-1]
	e.redoStack = e.redoStack[:len(e.redoStack)-1]
	e.undoStack = append(e.undoStack, undoState{content: content, cursor: cursor})
	return last.content, last.cursor, true
}

// SetMark anchors the selection at the current cursor position
func (e *EditorState) SetMark() {
	e.MarkOffset = e.CursorOffset()
	e.HasMark = true
}

// ClearMark drops the selection anchor
func (e *EditorState) ClearMark() {
	e.HasMark = false
	e.MarkOffset = 0
}

// SelectionRange returns the selected byte span in ascending order.
// Without a mark there is no selection.
func (e *EditorState) SelectionRange() (start, end int, ok bool) {
	if !e.HasMark {
		return 0, 0, false
	}
	cur := e.CursorOffset()
	if e.MarkOffset <= cur {
		return e.MarkOffset, cur, true
	}
	return cur, e.MarkOffset, true
}

// CursorOffset converts the textarea cursor to a byte offset into the
// buffer contents
func (e *EditorState) CursorOffset() int {
	content := e.Textarea.Value()
	row := e.Textarea.Line()
	info := e.Textarea.LineInfo()
	col := info.StartColumn + info.CharOffset

	lines := strings.Split(content, "\n")
	if row >= len(lines) {
		return len(content)
	}

	offset := 0
	for i := 0; i < row; i++ {
		offset += len(lines[i]) + 1
	}

	runes := []rune(lines[row])
	if col > len(runes) {
		col = len(runes)
	}
	return offset + len(string(runes[:col]))
}

// SetCursorOffset moves the textarea cursor to the given byte offset
func (e *EditorState) SetCursorOffset(offset int) {
	content := e.Textarea.Value()
	if offset < 0 {
		offset = 0
	}
	if offset > len(content) {
		offset = len(content)
	}

	row := strings.Count(content[:offset], "\n")
	lineStart := 0
	if row > 0 {
		lineStart = strings.LastIndexByte(content[:offset], '\n') + 1
	}
	col := len([]rune(content[lineStart:offset]))

	e.moveToTop()
	for i := 0; i < row; i++ {
		e.Textarea.CursorDown()
	}
	e.Textarea.SetCursor(col)
}

// ReplaceContent swaps the buffer contents while keeping the cursor as
// close to its previous position as the new text allows
func (e *EditorState) ReplaceContent(content string) {
	offset := e.CursorOffset()
	e.Textarea.SetValue(content)
	e.loadedContent = content
	e.baseValue = e.Textarea.Value()
	e.SetCursorOffset(offset)
	e.ClearMark()
}

// ReplaceContentAt swaps the buffer contents and places the cursor at
// the given byte offset
func (e *EditorState) ReplaceContentAt(content string, offset int) {
	e.Textarea.SetValue(content)
	e.loadedContent = content
	e.baseValue = e.Textarea.Value()
	e.SetCursorOffset(offset)
	e.ClearMark()
}
