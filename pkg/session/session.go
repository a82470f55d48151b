package session

import (
	"errors"

	"github.com/tabpad/tabpad-cli/pkg/files"
	"github.com/tabpad/tabpad-cli/pkg/models"
)

// Errors reported by session operations. All are recoverable; the
// application keeps running after any of them.
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrNothingToReopen  = errors.New("no recently closed tabs")
)

// CloseKind selects which tabs a bulk close targets, relative to the
// display order.
type CloseKind int

const (
	CloseAll CloseKind = iota
	CloseOthers
	CloseLeftOf
	CloseRightOf
)

// Session owns the ordered set of open documents plus the recent-files
// list and the closed-tab stack. The slice order is the display order of
// tabs; every "left/right" rule reads it directly.
//
// The session always contains at least one document. Closing the last tab
// immediately respawns a blank one.
type Session struct {
	docs     []*models.Document
	activeID string
	recent   *RecentFiles
	closed   []models.ClosedTab
}

// NewSession creates a session holding a single blank document.
func NewSession(maxRecent int) *Session {
	s := &Session{
		recent: NewRecentFiles(maxRecent),
	}
	s.New()
	return s
}

// New appends a blank untitled document and makes it active.
func (s *Session) New() *models.Document {
	doc := models.NewDocument()
	s.docs = append(s.docs, doc)
	s.activeID = doc.ID
	return doc
}

// OpenLoaded installs already-read file content into the session. When the
// active document has never been saved, is clean, and is empty it is reused
// in place; otherwise a fresh tab is appended. The path is recorded in the
// recent-files list.
//
// File reading and its error reporting happen before this call, so a failed
// read never touches the session.
func (s *Session) OpenLoaded(path, text string, enc models.Encoding) *models.Document {
	doc := s.Active()
	if doc == nil || doc.Path != "" || doc.Dirty || doc.Content != "" {
		doc = s.New()
	}

	doc.Path = path
	doc.Title = doc.BaseName()
	doc.Content = text
	doc.Encoding = enc
	doc.Language = files.DetectLanguage(path)
	doc.Dirty = false

	s.activeID = doc.ID
	s.recent.Add(path)
	return doc
}

// Close removes a document unconditionally, pushing its snapshot onto the
// closed-tab stack. Save prompting is the UI's responsibility and happens
// before this call. The left neighbor becomes active; if the session would
// become empty a blank document is created.
func (s *Session) Close(id string) error {
	idx := s.Index(id)
	if idx < 0 {
		return ErrDocumentNotFound
	}

	doc := s.docs[idx]
	s.closed = append(s.closed, models.ClosedTab{
		Title:    doc.Title,
		Content:  doc.Content,
		Path:     doc.Path,
		Encoding: doc.Encoding,
	})

	s.docs = append(s.docs[:idx], s.docs[idx+1:]...)

	if len(s.docs) == 0 {
		s.New()
		return nil
	}

	if s.activeID == id {
		if idx > 0 {
			idx--
		}
		s.activeID = s.docs[idx].ID
	}
	return nil
}

// CloseTargets returns the ids a bulk close would visit, in display order.
// Callers close them one by one and stop at the first cancelled prompt.
func (s *Session) CloseTargets(kind CloseKind, anchorID string) []string {
	anchor := s.Index(anchorID)
	var ids []string
	for i, doc := range s.docs {
		switch kind {
		case CloseAll:
			ids = append(ids, doc.ID)
		case CloseOthers:
			if doc.ID != anchorID {
				ids = append(ids, doc.ID)
			}
		case CloseLeftOf:
			if anchor >= 0 && i < anchor {
				ids = append(ids, doc.ID)
			}
		case CloseRightOf:
			if anchor >= 0 && i > anchor {
				ids = append(ids, doc.ID)
			}
		}
	}
	return ids
}

// ReopenClosed pops the most recently closed tab and restores it as a new
// clean document. Returns ErrNothingToReopen when the stack is empty.
func (s *Session) ReopenClosed() (*models.Document, error) {
	if len(s.closed) == 0 {
		return nil, ErrNothingToReopen
	}

	snap := s.closed[len(s.closed)-1]
	s.closed = s.closed[:len(s.closed)-1]

	doc := models.NewDocument()
	doc.Title = snap.Title
	doc.Content = snap.Content
	doc.Path = snap.Path
	doc.Encoding = snap.Encoding
	if snap.Path != "" {
		doc.Language = files.DetectLanguage(snap.Path)
	}

	s.docs = append(s.docs, doc)
	s.activeID = doc.ID
	return doc, nil
}

// Duplicate creates an independent copy of a document in the tab directly
// after it. The copy keeps the title, content, encoding, and dirty flag but
// has no path, so it saves separately from the source.
func (s *Session) Duplicate(id string) (*models.Document, error) {
	idx := s.Index(id)
	if idx < 0 {
		return nil, ErrDocumentNotFound
	}

	src := s.docs[idx]
	dup := models.NewDocument()
	dup.Title = src.Title
	dup.Content = src.Content
	dup.Encoding = src.Encoding
	dup.Language = src.Language
	dup.Dirty = src.Dirty

	s.docs = append(s.docs, nil)
	copy(s.docs[idx+2:], s.docs[idx+1:])
	s.docs[idx+1] = dup

	s.activeID = dup.ID
	return dup, nil
}

// SetContent replaces a document's content and marks it dirty. Callers that
// want the dirty flag untouched (load, revert) go through OpenLoaded or
// MarkSaved instead.
func (s *Session) SetContent(id, text string) error {
	doc, ok := s.Document(id)
	if !ok {
		return ErrDocumentNotFound
	}
	doc.Content = text
	doc.Dirty = true
	return nil
}

// MarkSaved records a successful save: the document adopts the path,
// refreshes its title and language from it, clears the dirty flag, and the
// path joins the recent-files list.
func (s *Session) MarkSaved(id, path string) error {
	doc, ok := s.Document(id)
	if !ok {
		return ErrDocumentNotFound
	}
	doc.Path = path
	doc.Title = doc.BaseName()
	doc.Language = files.DetectLanguage(path)
	doc.Dirty = false
	s.recent.Add(path)
	return nil
}

// Active returns the focused document. It is nil only transiently during
// construction; the session invariant keeps one document open at all times.
func (s *Session) Active() *models.Document {
	doc, _ := s.Document(s.activeID)
	return doc
}

// ActiveID returns the id of the focused document.
func (s *Session) ActiveID() string {
	return s.activeID
}

// SetActive focuses the document with the given id.
func (s *Session) SetActive(id string) error {
	if s.Index(id) < 0 {
		return ErrDocumentNotFound
	}
	s.activeID = id
	return nil
}

// NextTab focuses the tab to the right, wrapping around.
func (s *Session) NextTab() *models.Document {
	idx := s.Index(s.activeID)
	if idx < 0 {
		return nil
	}
	s.activeID = s.docs[(idx+1)%len(s.docs)].ID
	return s.Active()
}

// PrevTab focuses the tab to the left, wrapping around.
func (s *Session) PrevTab() *models.Document {
	idx := s.Index(s.activeID)
	if idx < 0 {
		return nil
	}
	s.activeID = s.docs[(idx+len(s.docs)-1)%len(s.docs)].ID
	return s.Active()
}

// MoveTab shifts a tab left or right in the display order, clamped at the
// edges.
func (s *Session) MoveTab(id string, delta int) {
	idx := s.Index(id)
	if idx < 0 {
		return
	}
	target := idx + delta
	if target < 0 {
		target = 0
	}
	if target > len(s.docs)-1 {
		target = len(s.docs) - 1
	}
	if target == idx {
		return
	}

	doc := s.docs[idx]
	s.docs = append(s.docs[:idx], s.docs[idx+1:]...)
	s.docs = append(s.docs[:target], append([]*models.Document{doc}, s.docs[target:]...)...)
}

// Document returns the document with the given id.
func (s *Session) Document(id string) (*models.Document, bool) {
	idx := s.Index(id)
	if idx < 0 {
		return nil, false
	}
	return s.docs[idx], true
}

// Documents returns the open documents in display order.
func (s *Session) Documents() []*models.Document {
	return s.docs
}

// Index returns a document's position in the display order, or -1.
func (s *Session) Index(id string) int {
	for i, doc := range s.docs {
		if doc.ID == id {
			return i
		}
	}
	return -1
}

// Len returns the number of open documents.
func (s *Session) Len() int {
	return len(s.docs)
}

// Recent exposes the recent-files list.
func (s *Session) Recent() *RecentFiles {
	return s.recent
}

// ClosedLen returns the depth of the closed-tab stack.
func (s *Session) ClosedLen() int {
	return len(s.closed)
}
