package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabpad/tabpad-cli/pkg/models"
)

func TestNewSessionStartsWithOneBlankDocument(t *testing.T) {
	s := NewSession(10)

	require.Equal(t, 1, s.Len())
	doc := s.Active()
	require.NotNil(t, doc)
	assert.Equal(t, "Untitled", doc.Title)
	assert.Equal(t, "", doc.Content)
	assert.False(t, doc.Dirty)
	assert.Equal(t, models.EncodingUTF8, doc.Encoding)
}

func TestNewAppendsAndActivates(t *testing.T) {
	s := NewSession(10)
	first := s.Active()

	doc := s.New()

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, doc.ID, s.ActiveID())
	assert.NotEqual(t, first.ID, doc.ID)
}

func TestSetContentMarksDirty(t *testing.T) {
	s := NewSession(10)
	doc := s.Active()

	err := s.SetContent(doc.ID, "hello")

	require.NoError(t, err)
	assert.True(t, doc.Dirty)
	assert.Equal(t, "hello", doc.Content)
}

func TestSetContentUnknownID(t *testing.T) {
	s := NewSession(10)

	err := s.SetContent("missing", "hello")

	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestOpenLoadedReusesBlankActiveDocument(t *testing.T) {
	s := NewSession(10)
	blank := s.Active()

	doc := s.OpenLoaded("/tmp/notes.txt", "content", models.EncodingUTF8)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, blank.ID, doc.ID)
	assert.Equal(t, "notes.txt", doc.Title)
	assert.Equal(t, "content", doc.Content)
	assert.False(t, doc.Dirty)
	assert.Equal(t, []string{"/tmp/notes.txt"}, s.Recent().Paths())
}

func TestOpenLoadedAppendsWhenActiveIsDirty(t *testing.T) {
	s := NewSession(10)
	first := s.Active()
	require.NoError(t, s.SetContent(first.ID, "draft"))

	doc := s.OpenLoaded("/tmp/a.md", "# a", models.EncodingUTF8BOM)

	assert.Equal(t, 2, s.Len())
	assert.NotEqual(t, first.ID, doc.ID)
	assert.Equal(t, doc.ID, s.ActiveID())
	assert.Equal(t, "Markdown", doc.Language)
	assert.Equal(t, models.EncodingUTF8BOM, doc.Encoding)
	// The dirty draft stays open untouched
	assert.True(t, first.Dirty)
	assert.Equal(t, "draft", first.Content)
}

func TestCloseLastTabRespawnsBlank(t *testing.T) {
	s := NewSession(10)
	doc := s.Active()
	require.NoError(t, s.SetContent(doc.ID, "bye"))

	require.NoError(t, s.Close(doc.ID))

	require.Equal(t, 1, s.Len())
	fresh := s.Active()
	assert.NotEqual(t, doc.ID, fresh.ID)
	assert.Equal(t, "", fresh.Content)
	assert.False(t, fresh.Dirty)
	assert.Equal(t, 1, s.ClosedLen())
}

func TestCloseActivatesLeftNeighbor(t *testing.T) {
	s := NewSession(10)
	a := s.Active()
	b := s.New()
	c := s.New()
	require.NoError(t, s.SetActive(b.ID))

	require.NoError(t, s.Close(b.ID))

	assert.Equal(t, a.ID, s.ActiveID())
	assert.Equal(t, 2, s.Len())
	_ = c
}

func TestCloseKeepsActiveWhenOtherTabCloses(t *testing.T) {
	s := NewSession(10)
	a := s.Active()
	b := s.New()

	require.NoError(t, s.Close(a.ID))

	assert.Equal(t, b.ID, s.ActiveID())
}

func TestReopenClosedRestoresSnapshot(t *testing.T) {
	s := NewSession(10)
	doc := s.OpenLoaded("/tmp/keep.go", "package keep", models.EncodingUTF8)
	require.NoError(t, s.Close(doc.ID))

	restored, err := s.ReopenClosed()

	require.NoError(t, err)
	assert.Equal(t, "keep.go", restored.Title)
	assert.Equal(t, "package keep", restored.Content)
	assert.Equal(t, "/tmp/keep.go", restored.Path)
	assert.Equal(t, "Go", restored.Language)
	assert.False(t, restored.Dirty)
	assert.Equal(t, 0, s.ClosedLen())
}

func TestReopenClosedEmptyStack(t *testing.T) {
	s := NewSession(10)

	_, err := s.ReopenClosed()

	assert.ErrorIs(t, err, ErrNothingToReopen)
}

func TestReopenThenCloseRestoresStackDepth(t *testing.T) {
	s := NewSession(10)
	doc := s.OpenLoaded("/tmp/x.txt", "x", models.EncodingUTF8)
	require.NoError(t, s.Close(doc.ID))
	depth := s.ClosedLen()

	restored, err := s.ReopenClosed()
	require.NoError(t, err)
	require.NoError(t, s.Close(restored.ID))

	assert.Equal(t, depth, s.ClosedLen())
}

func TestDuplicateIsIndependent(t *testing.T) {
	s := NewSession(10)
	src := s.OpenLoaded("/tmp/orig.txt", "shared", models.EncodingUTF16LE)
	require.NoError(t, s.SetContent(src.ID, "edited"))

	dup, err := s.Duplicate(src.ID)

	require.NoError(t, err)
	assert.Equal(t, "edited", dup.Content)
	assert.Equal(t, src.Title, dup.Title)
	assert.Equal(t, src.Encoding, dup.Encoding)
	assert.True(t, dup.Dirty, "duplicate copies the dirty flag")
	assert.Equal(t, "", dup.Path, "duplicate saves independently")
	assert.Equal(t, dup.ID, s.ActiveID())

	// Mutating the clone must not alter the source
	require.NoError(t, s.SetContent(dup.ID, "diverged"))
	assert.Equal(t, "edited", src.Content)
}

func TestDuplicateInsertsAfterSource(t *testing.T) {
	s := NewSession(10)
	a := s.Active()
	b := s.New()

	dup, err := s.Duplicate(a.ID)

	require.NoError(t, err)
	docs := s.Documents()
	require.Len(t, docs, 3)
	assert.Equal(t, a.ID, docs[0].ID)
	assert.Equal(t, dup.ID, docs[1].ID)
	assert.Equal(t, b.ID, docs[2].ID)
}

func TestCloseTargets(t *testing.T) {
	s := NewSession(10)
	a := s.Active()
	b := s.New()
	c := s.New()
	d := s.New()

	tests := []struct {
		name   string
		kind   CloseKind
		anchor string
		want   []string
	}{
		{"all", CloseAll, b.ID, []string{a.ID, b.ID, c.ID, d.ID}},
		{"others", CloseOthers, b.ID, []string{a.ID, c.ID, d.ID}},
		{"left of", CloseLeftOf, c.ID, []string{a.ID, b.ID}},
		{"right of", CloseRightOf, b.ID, []string{c.ID, d.ID}},
		{"left of first", CloseLeftOf, a.ID, nil},
		{"right of last", CloseRightOf, d.ID, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.CloseTargets(tt.kind, tt.anchor))
		})
	}
}

func TestCloseTargetsFollowDisplayOrderAfterMove(t *testing.T) {
	s := NewSession(10)
	a := s.Active()
	b := s.New()
	c := s.New()

	// Display order becomes b, a, c
	s.MoveTab(a.ID, 1)

	assert.Equal(t, []string{b.ID}, s.CloseTargets(CloseLeftOf, a.ID))
	assert.Equal(t, []string{c.ID}, s.CloseTargets(CloseRightOf, a.ID))
}

func TestMarkSavedClearsDirtyAndRecordsRecent(t *testing.T) {
	s := NewSession(10)
	doc := s.Active()
	require.NoError(t, s.SetContent(doc.ID, "body"))

	require.NoError(t, s.MarkSaved(doc.ID, "/tmp/out.py"))

	assert.False(t, doc.Dirty)
	assert.Equal(t, "/tmp/out.py", doc.Path)
	assert.Equal(t, "out.py", doc.Title)
	assert.Equal(t, "Python", doc.Language)
	assert.Equal(t, []string{"/tmp/out.py"}, s.Recent().Paths())
}

func TestNextPrevTabWrapAround(t *testing.T) {
	s := NewSession(10)
	a := s.Active()
	b := s.New()
	c := s.New()

	require.NoError(t, s.SetActive(c.ID))
	s.NextTab()
	assert.Equal(t, a.ID, s.ActiveID())

	s.PrevTab()
	assert.Equal(t, c.ID, s.ActiveID())

	s.PrevTab()
	assert.Equal(t, b.ID, s.ActiveID())
}

func TestMoveTabClampsAtEdges(t *testing.T) {
	s := NewSession(10)
	a := s.Active()
	b := s.New()

	s.MoveTab(a.ID, -1)
	assert.Equal(t, a.ID, s.Documents()[0].ID)

	s.MoveTab(b.ID, 5)
	assert.Equal(t, b.ID, s.Documents()[1].ID)

	s.MoveTab(b.ID, -1)
	assert.Equal(t, b.ID, s.Documents()[0].ID)
	assert.Equal(t, a.ID, s.Documents()[1].ID)
}
