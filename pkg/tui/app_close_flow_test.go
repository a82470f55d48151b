package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabpad/tabpad-cli/pkg/models"
	"github.com/tabpad/tabpad-cli/pkg/session"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app := NewApp(models.DefaultSettings(), nil)
	app.setSize(80, 24)
	return app
}

func TestCloseCleanTabWithoutPrompt(t *testing.T) {
	app := newTestApp(t)
	s := app.Session()
	first := s.Active()
	s.New()

	cmd := app.requestClose([]string{first.ID}, false)

	assert.False(t, app.confirm.Active(), "clean tab should close without a prompt")
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, -1, s.Index(first.ID))
	assert.Nil(t, cmd)
}

func TestCloseDirtyTabPromptsAndDiscards(t *testing.T) {
	app := newTestApp(t)
	s := app.Session()
	first := s.Active()
	require.NoError(t, s.SetContent(first.ID, "unsaved"))
	s.New()

	app.requestClose([]string{first.ID}, false)

	require.True(t, app.confirm.Active(), "dirty tab should prompt")
	assert.Equal(t, modeConfirmClose, app.mode)
	assert.Equal(t, 2, s.Len(), "nothing closes until the prompt is answered")

	app.confirm.Update(keyPress("n"))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, -1, s.Index(first.ID))
	assert.Equal(t, modeEdit, app.mode)
	assert.Equal(t, 1, s.ClosedLen(), "discarded tab still lands on the reopen stack")
}

func TestCloseDirtyTabCancelAbandonsQueue(t *testing.T) {
	app := newTestApp(t)
	s := app.Session()
	first := s.Active()
	require.NoError(t, s.SetContent(first.ID, "unsaved"))
	second := s.New()
	require.NoError(t, s.SetContent(second.ID, "also unsaved"))

	app.requestClose(s.CloseTargets(session.CloseAll, s.ActiveID()), false)

	require.True(t, app.confirm.Active())
	app.confirm.Update(keyPress("esc"))

	assert.Equal(t, 2, s.Len(), "cancel keeps every remaining tab open")
	assert.Empty(t, app.pendingClose)
	assert.Equal(t, modeEdit, app.mode)
}

func TestCloseDirtyTabSavesToPath(t *testing.T) {
	app := newTestApp(t)
	s := app.Session()
	path := filepath.Join(t.TempDir(), "notes.txt")

	doc := loadContent(t, app, "keep me")
	doc.Path = path

	app.requestClose([]string{doc.ID}, false)
	require.True(t, app.confirm.Active())

	app.confirm.Update(keyPress("y"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
	assert.Equal(t, -1, s.Index(doc.ID), "tab closes after a successful save")
}

func TestCloseDirtyPathlessTabRoutesThroughSaveAs(t *testing.T) {
	app := newTestApp(t)
	s := app.Session()
	doc := loadContent(t, app, "no home yet")

	app.requestClose([]string{doc.ID}, false)
	require.True(t, app.confirm.Active())

	app.confirm.Update(keyPress("y"))

	assert.Equal(t, modeSavePrompt, app.mode, "pathless save answer opens the save-as prompt")
	assert.Equal(t, doc.ID, app.closeAfterSave)

	path := filepath.Join(t.TempDir(), "found-a-home.txt")
	app.completeSaveAs(path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "no home yet", string(data))
	assert.Equal(t, -1, s.Index(doc.ID))
	assert.Empty(t, app.closeAfterSave)
}

func TestCancelSaveAsAbandonsCloseQueue(t *testing.T) {
	app := newTestApp(t)
	s := app.Session()
	doc := s.Active()
	require.NoError(t, s.SetContent(doc.ID, "still here"))
	second := s.New()
	require.NoError(t, s.SetContent(second.ID, "me too"))

	app.requestClose(s.CloseTargets(session.CloseAll, s.ActiveID()), false)
	require.True(t, app.confirm.Active())
	app.confirm.Update(keyPress("y"))
	require.Equal(t, modeSavePrompt, app.mode)

	app.cancelSaveAs()

	assert.Equal(t, 2, s.Len(), "both tabs survive a canceled save-as")
	assert.Empty(t, app.pendingClose)
	assert.Empty(t, app.closeAfterSave)
}

func TestCloseAllCleanThenQuit(t *testing.T) {
	app := newTestApp(t)
	s := app.Session()
	s.New()
	s.New()

	cmd := app.requestClose(s.CloseTargets(session.CloseAll, s.ActiveID()), true)

	require.NotNil(t, cmd, "draining the queue with quitAfter should return a command")
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit, "expected tea.Quit once every tab is closed")
}

func TestCloseLastTabRespawnsBlank(t *testing.T) {
	app := newTestApp(t)
	s := app.Session()
	only := s.Active()

	app.requestClose([]string{only.ID}, false)

	require.Equal(t, 1, s.Len())
	fresh := s.Active()
	assert.NotEqual(t, only.ID, fresh.ID)
	assert.Empty(t, fresh.Content)
	assert.Equal(t, fresh.ID, app.Editor().DocID, "editor follows the respawned tab")
}
