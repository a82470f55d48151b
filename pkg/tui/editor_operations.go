package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tabpad/tabpad-cli/pkg/files"
	"github.com/tabpad/tabpad-cli/pkg/models"
	"github.com/tabpad/tabpad-cli/pkg/search"
	"github.com/tabpad/tabpad-cli/pkg/session"
	"github.com/tabpad/tabpad-cli/pkg/transform"
)

// syncContent pushes the textarea buffer into the session once the user
// has actually edited it. Until then the document text stays
// authoritative, so the textarea's tab normalization never leaks into a
// tab or marks it dirty.
func (a *App) syncContent() {
	doc := a.session.Active()
	if doc == nil || a.editor.DocID != doc.ID {
		return
	}
	if !a.editor.Modified() {
		return
	}
	v := a.editor.Textarea.Value()
	a.session.SetContent(doc.ID, v)
	a.editor.loadedContent = v
	a.editor.baseValue = v
}

// loadActive reloads the editor from the active document when the focus
// or the content changed underneath it
func (a *App) loadActive() {
	doc := a.session.Active()
	if doc == nil {
		return
	}
	if a.editor.DocID != doc.ID || a.editor.loadedContent != doc.Content {
		a.editor.SetDocument(doc)
	}
}

// pushUndo snapshots the active document ahead of a mutation
func (a *App) pushUndo() {
	doc := a.session.Active()
	if doc == nil {
		return
	}
	a.editor.PushUndo(doc.Content, a.editor.CursorOffset())
}

func (a *App) undoEdit() tea.Cmd {
	a.syncContent()
	doc := a.session.Active()
	if doc == nil {
		return nil
	}
	content, cursor, ok := a.editor.Undo(doc.Content, a.editor.CursorOffset())
	if !ok {
		return statusCmd("Nothing to undo")
	}
	a.session.SetContent(doc.ID, content)
	a.editor.ReplaceContentAt(content, cursor)
	return statusCmd("Undo")
}

func (a *App) redoEdit() tea.Cmd {
	a.syncContent()
	doc := a.session.Active()
	if doc == nil {
		return nil
	}
	content, cursor, ok := a.editor.Redo(doc.Content, a.editor.CursorOffset())
	if !ok {
		return statusCmd("Nothing to redo")
	}
	a.session.SetContent(doc.ID, content)
	a.editor.ReplaceContentAt(content, cursor)
	return statusCmd("Redo")
}

func (a *App) switchTab(next bool) {
	a.syncContent()
	if next {
		a.session.NextTab()
	} else {
		a.session.PrevTab()
	}
	a.loadActive()
}

// openPath reads a file from disk into a tab
func (a *App) openPath(path string) tea.Cmd {
	text, enc, err := files.Read(path)
	if err != nil {
		return errCmd(fmt.Errorf("failed to open %s: %w", path, err))
	}

	a.syncContent()
	doc := a.session.OpenLoaded(path, text, enc)
	a.loadActive()
	return statusCmd(fmt.Sprintf("Opened %s (%s)", doc.Title, doc.Encoding))
}

// saveActive writes the focused document, prompting for a path when it
// has never been saved
func (a *App) saveActive() tea.Cmd {
	a.syncContent()
	doc := a.session.Active()
	if doc == nil {
		return nil
	}

	if doc.Path == "" {
		a.saveTargetID = doc.ID
		a.mode = modeSavePrompt
		a.prompt.Show("Save as", "path/to/file.txt", "")
		return nil
	}

	return a.writeDocument(doc)
}

// writeDocument encodes and writes a document to its path. Encode
// failures (an ANSI file with characters outside its code page) leave
// the file on disk untouched.
func (a *App) writeDocument(doc *models.Document) tea.Cmd {
	if err := files.Write(doc.Path, doc.Content, doc.Encoding); err != nil {
		return errCmd(err)
	}
	a.session.MarkSaved(doc.ID, doc.Path)
	return statusCmd("Saved " + doc.Path)
}

// completeSaveAs finishes a save-as prompt. When the save was part of a
// close flow the tab closes afterwards and the close queue resumes.
func (a *App) completeSaveAs(path string) tea.Cmd {
	path = strings.TrimSpace(path)
	if path == "" {
		return a.cancelSaveAs()
	}

	id := a.saveTargetID
	a.saveTargetID = ""
	doc, ok := a.session.Document(id)
	if !ok {
		return nil
	}

	if err := files.Write(path, doc.Content, doc.Encoding); err != nil {
		a.closeAfterSave = ""
		a.pendingClose = nil
		a.quitAfterClose = false
		return errCmd(err)
	}
	a.session.MarkSaved(id, path)

	if a.closeAfterSave == id {
		a.closeAfterSave = ""
		a.session.Close(id)
		if len(a.pendingClose) > 0 && a.pendingClose[0] == id {
			a.pendingClose = a.pendingClose[1:]
		}
		return tea.Batch(statusCmd("Saved "+path), a.advanceCloseQueue())
	}

	a.loadActive()
	return statusCmd("Saved " + path)
}

// cancelSaveAs abandons a save-as prompt. If the save was gating a close
// queue, the whole queue is abandoned with it.
func (a *App) cancelSaveAs() tea.Cmd {
	a.saveTargetID = ""
	if a.closeAfterSave != "" {
		a.closeAfterSave = ""
		a.pendingClose = nil
		a.quitAfterClose = false
	}
	return statusCmd("Save canceled")
}

// requestClose starts closing the given tabs in display order, prompting
// per dirty tab
func (a *App) requestClose(ids []string, quitAfter bool) tea.Cmd {
	a.syncContent()
	a.pendingClose = ids
	a.quitAfterClose = quitAfter
	return a.advanceCloseQueue()
}

// advanceCloseQueue closes clean tabs until it hits a dirty one, which
// gets the save/discard/cancel prompt. Cancel anywhere abandons the
// remaining queue.
func (a *App) advanceCloseQueue() tea.Cmd {
	for len(a.pendingClose) > 0 {
		id := a.pendingClose[0]
		doc, ok := a.session.Document(id)
		if !ok {
			a.pendingClose = a.pendingClose[1:]
			continue
		}

		if !doc.Dirty {
			a.session.Close(id)
			a.pendingClose = a.pendingClose[1:]
			continue
		}

		d := doc
		a.mode = modeConfirmClose
		a.confirm.Show(ConfirmationConfig{
			Title:   "Unsaved Changes",
			Message: fmt.Sprintf("%s has unsaved changes. Save before closing?", d.Title),
			Width:   min(a.width-10, 56),
		}, func() tea.Cmd {
			// Save, then close and continue
			a.mode = modeEdit
			if d.Path == "" {
				a.saveTargetID = d.ID
				a.closeAfterSave = d.ID
				a.mode = modeSavePrompt
				a.prompt.Show("Save as", "path/to/file.txt", "")
				return nil
			}
			if err := files.Write(d.Path, d.Content, d.Encoding); err != nil {
				a.pendingClose = nil
				a.quitAfterClose = false
				return errCmd(err)
			}
			a.session.MarkSaved(d.ID, d.Path)
			a.session.Close(d.ID)
			a.pendingClose = a.pendingClose[1:]
			return a.advanceCloseQueue()
		}, func() tea.Cmd {
			// Discard and continue
			a.mode = modeEdit
			a.session.Close(d.ID)
			a.pendingClose = a.pendingClose[1:]
			return a.advanceCloseQueue()
		}, func() tea.Cmd {
			// Cancel the whole operation
			a.mode = modeEdit
			a.pendingClose = nil
			a.quitAfterClose = false
			a.loadActive()
			return statusCmd("Close canceled")
		})
		return nil
	}

	if a.quitAfterClose {
		return tea.Quit
	}

	a.mode = modeEdit
	a.loadActive()
	return nil
}

func (a *App) duplicateActive() tea.Cmd {
	a.syncContent()
	doc, err := a.session.Duplicate(a.session.ActiveID())
	if err != nil {
		return errCmd(err)
	}
	a.loadActive()
	return statusCmd("Duplicated " + doc.Title)
}

func (a *App) reopenClosed() tea.Cmd {
	a.syncContent()
	doc, err := a.session.ReopenClosed()
	if err != nil {
		return statusCmd("No closed tabs to reopen")
	}
	a.loadActive()
	return statusCmd("Reopened " + doc.Title)
}

func (a *App) showRecentMenu() tea.Cmd {
	paths := a.session.Recent().Paths()
	if len(paths) == 0 {
		return statusCmd("No recent files")
	}

	items := make([]MenuItem, len(paths))
	for i, p := range paths {
		items[i] = MenuItem{ID: p, Label: p}
	}
	a.menu.Show("Recent Files", items)
	a.mode = modeRecentMenu
	return nil
}

func (a *App) showTransformMenu() tea.Cmd {
	a.syncContent()
	items := make([]MenuItem, len(transform.Catalog))
	for i, cmd := range transform.Catalog {
		items[i] = MenuItem{ID: cmd.ID, Label: cmd.Name}
	}
	a.menu.Show("Transform", items)
	a.mode = modeTransformMenu
	return nil
}

func (a *App) showEncodingMenu() tea.Cmd {
	a.syncContent()
	var items []MenuItem
	for _, enc := range models.Encodings() {
		items = append(items, MenuItem{ID: enc.String(), Label: enc.String()})
	}
	a.menu.Show("Encoding", items)
	a.mode = modeEncodingMenu
	return nil
}

func (a *App) showTabMenu() tea.Cmd {
	a.menu.Show("Tab Operations", []MenuItem{
		{ID: "close-others", Label: "Close Other Tabs"},
		{ID: "close-left", Label: "Close Tabs to the Left"},
		{ID: "close-right", Label: "Close Tabs to the Right"},
		{ID: "close-all", Label: "Close All Tabs"},
		{ID: "reopen", Label: "Reopen Last Closed Tab"},
	})
	a.mode = modeTabMenu
	return nil
}

func (a *App) runTabOperation(op string) tea.Cmd {
	anchor := a.session.ActiveID()
	switch op {
	case "close-others":
		return a.requestClose(a.session.CloseTargets(session.CloseOthers, anchor), false)
	case "close-left":
		return a.requestClose(a.session.CloseTargets(session.CloseLeftOf, anchor), false)
	case "close-right":
		return a.requestClose(a.session.CloseTargets(session.CloseRightOf, anchor), false)
	case "close-all":
		return a.requestClose(a.session.CloseTargets(session.CloseAll, anchor), false)
	case "reopen":
		return a.reopenClosed()
	}
	return nil
}

// applyTransformByID runs a catalog command against the selection if one
// is active, otherwise against the command's fallback scope. Width
// sensitive commands are rebuilt from the configured tab width.
func (a *App) applyTransformByID(id string) tea.Cmd {
	cmd, ok := transform.Lookup(id)
	if !ok {
		return nil
	}

	fn := cmd.Fn
	if w := a.settings.Editor.TabWidth; w > 0 && w != transform.DefaultTabWidth {
		switch cmd.ID {
		case "ws.tabs-to-spaces":
			fn = transform.TabsToSpaces(w)
		case "ws.spaces-to-tabs":
			fn = transform.SpacesToTabs(w)
		case "ws.indent":
			fn = transform.Indent(w)
		case "ws.outdent":
			fn = transform.Outdent(w)
		}
	}

	a.syncContent()
	doc := a.session.Active()
	content := doc.Content
	off := a.editor.CursorOffset()

	var out string
	if start, end, ok := a.editor.SelectionRange(); ok && start != end {
		out = transform.ApplyRange(content, start, end, fn)
		off = start
	} else if cmd.Scope == transform.ScopeLine {
		ls, le := transform.LineBounds(content, off)
		out = transform.ApplyRange(content, ls, le, fn)
	} else {
		out = fn(content)
	}

	a.pushUndo()

	// Dirty even when the transform was an identity on this input; the
	// catalog never diffs before/after.
	a.session.SetContent(doc.ID, out)
	a.editor.ReplaceContentAt(out, min(off, len(out)))
	return statusCmd(cmd.Name)
}

// changeEncoding switches the encoding a document will save with. The
// buffer text is untouched; the switch is refused when the text has
// characters the target encoding cannot represent.
func (a *App) changeEncoding(label string) tea.Cmd {
	a.syncContent()
	doc := a.session.Active()

	for _, enc := range models.Encodings() {
		if enc.String() != label {
			continue
		}
		if err := files.Convert(doc.Content, enc); err != nil {
			return errCmd(fmt.Errorf("cannot convert to %s: %w", enc, err))
		}
		doc.Encoding = enc
		return statusCmd("Encoding set to " + enc.String())
	}
	return nil
}

// selectMatch highlights a found span and parks the cursor at its end,
// so a repeated find-next naturally continues past it
func (a *App) selectMatch(start, length int) {
	a.editor.MarkOffset = start
	a.editor.HasMark = true
	a.editor.SetCursorOffset(start + length)
}

// startSearch remembers the query and selects the first match at or
// after the cursor
func (a *App) startSearch(query string) tea.Cmd {
	if query == "" {
		return nil
	}
	a.lastQuery = query

	content := a.session.Active().Content
	idx, ok := search.Find(content, query, a.editor.CursorOffset())
	if !ok {
		return statusCmd("Not found: " + query)
	}
	a.selectMatch(idx, len(query))
	return statusCmd("Found " + query)
}

func (a *App) findNext() tea.Cmd {
	if a.lastQuery == "" {
		return statusCmd("Nothing to find; use find first")
	}

	a.syncContent()
	content := a.session.Active().Content
	idx, ok := search.Find(content, a.lastQuery, a.editor.CursorOffset())
	if !ok {
		return statusCmd("Not found: " + a.lastQuery)
	}
	a.selectMatch(idx, len(a.lastQuery))
	return nil
}

func (a *App) findPrev() tea.Cmd {
	if a.lastQuery == "" {
		return statusCmd("Nothing to find; use find first")
	}

	a.syncContent()
	content := a.session.Active().Content
	idx, ok := search.FindBackward(content, a.lastQuery, a.editor.CursorOffset())
	if !ok {
		return statusCmd("Not found: " + a.lastQuery)
	}
	a.selectMatch(idx, len(a.lastQuery))
	return nil
}

// replaceAll substitutes every occurrence in the buffer. Zero matches
// leaves the buffer untouched and the tab clean.
func (a *App) replaceAll(query, replacement string) tea.Cmd {
	a.syncContent()
	a.lastQuery = query

	doc := a.session.Active()
	out, count := search.ReplaceAll(doc.Content, query, replacement)
	if count == 0 {
		return statusCmd("No matches for " + query)
	}

	a.pushUndo()
	off := a.editor.CursorOffset()
	a.session.SetContent(doc.ID, out)
	a.editor.ReplaceContentAt(out, min(off, len(out)))
	return statusCmd(fmt.Sprintf("Replaced %d occurrence(s)", count))
}

func (a *App) goToLine(value string) tea.Cmd {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return errCmd(fmt.Errorf("invalid line number %q", value))
	}

	content := a.session.Active().Content
	off, err := search.GoToLine(content, n)
	if err != nil {
		return errCmd(err)
	}
	a.editor.SetCursorOffset(off)
	return statusCmd(fmt.Sprintf("Line %d", n))
}

func (a *App) selectAll() tea.Cmd {
	a.syncContent()
	content := a.session.Active().Content
	a.editor.MarkOffset = 0
	a.editor.HasMark = true
	a.editor.SetCursorOffset(len(content))
	return statusCmd("Selected all")
}

func (a *App) copySelection() tea.Cmd {
	a.syncContent()
	content := a.session.Active().Content
	start, end, ok := a.editor.SelectionRange()
	if !ok || start == end {
		return statusCmd("No selection; set a mark first")
	}

	if err := clipboard.WriteAll(content[start:end]); err != nil {
		return errCmd(fmt.Errorf("failed to copy: %w", err))
	}
	a.editor.ClearMark()
	return statusCmd(fmt.Sprintf("Copied %d chars", end-start))
}

func (a *App) cutSelection() tea.Cmd {
	a.syncContent()
	doc := a.session.Active()
	start, end, ok := a.editor.SelectionRange()
	if !ok || start == end {
		return statusCmd("No selection; set a mark first")
	}

	if err := clipboard.WriteAll(doc.Content[start:end]); err != nil {
		return errCmd(fmt.Errorf("failed to cut: %w", err))
	}

	a.pushUndo()
	out := doc.Content[:start] + doc.Content[end:]
	a.session.SetContent(doc.ID, out)
	a.editor.ReplaceContentAt(out, start)
	return statusCmd(fmt.Sprintf("Cut %d chars", end-start))
}

func (a *App) pasteClipboard() tea.Cmd {
	text, err := clipboard.ReadAll()
	if err != nil {
		return errCmd(fmt.Errorf("failed to paste: %w", err))
	}
	if text == "" {
		return nil
	}

	a.syncContent()
	doc := a.session.Active()
	a.pushUndo()

	// Pasting over a selection replaces it
	if start, end, ok := a.editor.SelectionRange(); ok && start != end {
		out := doc.Content[:start] + text + doc.Content[end:]
		a.session.SetContent(doc.ID, out)
		a.editor.ReplaceContentAt(out, start+len(text))
		return nil
	}

	out, off := transform.InsertAt(doc.Content, a.editor.CursorOffset(), text)
	a.session.SetContent(doc.ID, out)
	a.editor.ReplaceContentAt(out, off)
	return nil
}

func (a *App) deleteCurrentLine() tea.Cmd {
	a.syncContent()
	doc := a.session.Active()
	out, off := transform.DeleteLine(doc.Content, a.editor.CursorOffset())
	if out == doc.Content {
		return nil
	}
	a.pushUndo()
	a.session.SetContent(doc.ID, out)
	a.editor.ReplaceContentAt(out, off)
	return statusCmd("Line deleted")
}

// duplicateLine copies the selection if one is active, otherwise the
// current line above or below itself
func (a *App) duplicateLine(below bool) tea.Cmd {
	a.syncContent()
	doc := a.session.Active()

	var out string
	var off int
	if start, end, ok := a.editor.SelectionRange(); ok && start != end {
		out, off = transform.DuplicateRange(doc.Content, start, end)
	} else {
		out, off = transform.DuplicateLine(doc.Content, a.editor.CursorOffset(), below)
	}

	a.pushUndo()
	a.session.SetContent(doc.ID, out)
	a.editor.ReplaceContentAt(out, off)
	return nil
}

// deleteSelection removes the selected span without touching the
// clipboard. Backspace and delete route here while a selection is live.
func (a *App) deleteSelection() tea.Cmd {
	a.syncContent()
	doc := a.session.Active()
	start, end, ok := a.editor.SelectionRange()
	if !ok || start == end {
		return nil
	}

	a.pushUndo()
	out := doc.Content[:start] + doc.Content[end:]
	a.session.SetContent(doc.ID, out)
	a.editor.ReplaceContentAt(out, start)
	return statusCmd(fmt.Sprintf("Deleted %d chars", end-start))
}

// selectCurrentWord puts the mark at the start of the word under the
// cursor and the cursor at its end
func (a *App) selectCurrentWord() tea.Cmd {
	a.syncContent()
	content := a.session.Active().Content
	start, end, ok := transform.WordBounds(content, a.editor.CursorOffset())
	if !ok {
		return statusCmd("No word under cursor")
	}
	a.editor.MarkOffset = start
	a.editor.HasMark = true
	a.editor.SetCursorOffset(end)
	return nil
}

// selectCurrentLine selects the cursor line, excluding its newline
func (a *App) selectCurrentLine() tea.Cmd {
	a.syncContent()
	content := a.session.Active().Content
	start, end := transform.LineBounds(content, a.editor.CursorOffset())
	if start == end {
		return statusCmd("Empty line")
	}
	a.editor.MarkOffset = start
	a.editor.HasMark = true
	a.editor.SetCursorOffset(end)
	return nil
}

func (a *App) moveCurrentLine(delta int) tea.Cmd {
	a.syncContent()
	doc := a.session.Active()
	out, off := transform.MoveLine(doc.Content, a.editor.CursorOffset(), delta)
	if out == doc.Content {
		return nil
	}
	a.pushUndo()
	a.session.SetContent(doc.ID, out)
	a.editor.ReplaceContentAt(out, off)
	return nil
}

func (a *App) transposeAtCursor() tea.Cmd {
	a.syncContent()
	doc := a.session.Active()
	out, off := transform.Transpose(doc.Content, a.editor.CursorOffset())
	if out == doc.Content {
		return nil
	}
	a.pushUndo()
	a.session.SetContent(doc.ID, out)
	a.editor.ReplaceContentAt(out, off)
	return nil
}

func (a *App) jumpToMatchingBracket() tea.Cmd {
	a.syncContent()
	content := a.session.Active().Content
	idx, ok := transform.MatchBracket(content, a.editor.CursorOffset())
	if !ok {
		return statusCmd("No matching bracket")
	}
	a.editor.SetCursorOffset(idx)
	return nil
}

// toggleStatusBar flips the status bar visibility and persists the
// preference. A failed write still applies the toggle for this run.
func (a *App) toggleStatusBar() tea.Cmd {
	a.settings.UI.ShowStatusBar = !a.settings.UI.ShowStatusBar
	if err := files.WriteSettings(a.settings); err != nil {
		return errCmd(fmt.Errorf("failed to persist settings: %w", err))
	}
	if a.settings.UI.ShowStatusBar {
		return statusCmd("Status bar on")
	}
	return statusCmd("Status bar off")
}

// insertLiteral types text at the cursor through the textarea so cursor
// placement follows the inserted runes
func (a *App) insertLiteral(text string) tea.Cmd {
	a.syncContent()
	a.pushUndo()
	a.editor.Textarea.InsertString(text)
	a.syncContent()
	return nil
}
