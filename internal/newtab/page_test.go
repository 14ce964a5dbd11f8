package newtab

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newtab-go/newtab/internal/bookmark"
	"github.com/newtab-go/newtab/internal/hub"
	"github.com/newtab-go/newtab/internal/modal"
	"github.com/newtab-go/newtab/internal/settings"
	"github.com/newtab-go/newtab/internal/store"
	"github.com/newtab-go/newtab/internal/store/storetest"
	"github.com/newtab-go/newtab/internal/transfer"
)

// 1x1 GIF.
var gifImage, _ = base64.StdEncoding.DecodeString("R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7")

func newTestPage(t *testing.T) (*Page, store.Store) {
	t.Helper()

	st := storetest.New(t)
	p := New(st, nil)
	p.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }

	return p, st
}

func TestNewDerivesViewFromStoredSettings(t *testing.T) {
	st := storetest.New(t)
	require.NoError(t, st.Set(store.KeySettings, []byte(`{"theme":"ocean","gridColumns":3}`)))

	p := New(st, nil)
	s := p.Snapshot()

	assert.Equal(t, "ocean", s.View.Root.Theme)
	assert.Equal(t, "bookmarks-grid grid-3", s.View.GridClass)
	assert.True(t, s.Grid.Empty())
	assert.Equal(t, bookmark.Placeholder, s.Grid.Placeholder)
}

func TestDispatchSettingsField(t *testing.T) {
	p, st := newTestPage(t)

	require.NoError(t, p.Dispatch(settings.KeyBackgroundType, "color"))
	require.NoError(t, p.Dispatch(settings.KeyBackgroundColor, "#ff0000"))
	require.NoError(t, p.Dispatch(settings.KeyBackgroundOpacity, "100"))

	s := p.Snapshot()
	require.NotNil(t, s.View.Background)
	assert.InDelta(t, 1.0, s.View.Background.Opacity, 1e-9)
	assert.True(t, s.View.Controls.ShowColorPicker)

	var persisted settings.Settings
	require.NoError(t, store.LoadJSON(st, store.KeySettings, &persisted))
	assert.Equal(t, "#ff0000", persisted.BackgroundColor)

	require.NoError(t, p.Dispatch(settings.KeyBackgroundType, "theme"))
	assert.Nil(t, p.Snapshot().View.Background)
}

func TestDispatchUnknown(t *testing.T) {
	p, _ := newTestPage(t)

	require.ErrorIs(t, p.Dispatch("wallpaper", "x"), ErrUnknownEvent)
	require.ErrorIs(t, p.Dispatch(settings.KeyCustomBackground, "data:x"), ErrUnknownEvent)
	assert.NotContains(t, p.Events(), settings.KeyCustomBackground)
	assert.Contains(t, p.Events(), settings.KeyFontSize)
}

func TestSearch(t *testing.T) {
	p, _ := newTestPage(t)

	_, ok := p.Search("   ")
	assert.False(t, ok)

	target, ok := p.Search("example.com")
	require.True(t, ok)
	assert.Equal(t, "https://example.com", target)

	require.NoError(t, p.Set(settings.KeySearchEngine, "bing"))
	target, ok = p.Search("go fiber")
	require.True(t, ok)
	assert.Equal(t, "https://www.bing.com/search?q=go%20fiber", target)
}

func TestAddBookmarkFlow(t *testing.T) {
	p, _ := newTestPage(t)

	require.NoError(t, p.Dispatch(EventAddBookmarkBtn, ""))
	assert.True(t, p.Snapshot().Modals.Active[modal.AddBookmark])

	// invalid input keeps the dialog open with the typed values
	err := p.AddBookmark(bookmark.Form{Name: "Example", URL: "  "})
	require.ErrorIs(t, err, bookmark.ErrInvalid)
	s := p.Snapshot()
	assert.True(t, s.Modals.Active[modal.AddBookmark])
	assert.Equal(t, "Example", s.Modals.AddForm.Name)

	require.NoError(t, p.AddBookmark(bookmark.Form{Name: "Example", URL: "example.com"}))
	s = p.Snapshot()
	assert.False(t, s.Modals.Active[modal.AddBookmark])
	assert.Empty(t, s.Modals.AddForm.Name)
	assert.Equal(t, modal.SearchInput, s.Modals.Focus)

	require.Len(t, s.Grid.Cells, 1)
	assert.Equal(t, "https://example.com", s.Grid.Cells[0].URL)
	assert.Equal(t, "E", s.Grid.Cells[0].Icon)
}

func TestEditAndDeleteBookmarkFlow(t *testing.T) {
	p, _ := newTestPage(t)
	require.NoError(t, p.AddBookmark(bookmark.Form{Name: "Example", URL: "example.com"}))
	id := p.Bookmarks()[0].ID

	require.ErrorIs(t, p.BeginEdit("nope"), bookmark.ErrNotFound)

	require.NoError(t, p.BeginEdit(id))
	s := p.Snapshot()
	assert.True(t, s.Modals.Active[modal.EditBookmark])
	assert.Equal(t, id, s.Modals.EditID)
	assert.Equal(t, "https://example.com", s.Modals.EditForm.URL)

	require.NoError(t, p.EditBookmark(id, bookmark.Form{Name: "Go", URL: "go.dev"}))
	assert.Equal(t, "https://go.dev", p.Bookmarks()[0].URL)
	assert.False(t, p.Snapshot().Modals.Active[modal.EditBookmark])

	require.NoError(t, p.BeginEdit(id))
	require.NoError(t, p.Dispatch(EventDeleteBookmark, ""))
	assert.Empty(t, p.Bookmarks())

	s = p.Snapshot()
	assert.True(t, s.Grid.Empty())
	assert.Empty(t, s.Modals.EditID)
}

func TestResetNeedsConfirmation(t *testing.T) {
	p, _ := newTestPage(t)
	require.NoError(t, p.Set(settings.KeyTheme, "dark"))

	require.NoError(t, p.Dispatch(EventResetSettings, ""))
	s := p.Snapshot()
	require.NotNil(t, s.Confirm)
	assert.Equal(t, MsgResetConfirm, s.Confirm.Text)

	require.NoError(t, p.Dispatch(EventCancelConfirm, ""))
	assert.Equal(t, "dark", p.Settings().Theme)
	assert.Nil(t, p.Snapshot().Confirm)

	// accepting without a pending question does nothing
	require.NoError(t, p.Dispatch(EventConfirmReset, ""))
	assert.Equal(t, "dark", p.Settings().Theme)

	require.NoError(t, p.Dispatch(EventResetSettings, ""))
	require.NoError(t, p.Dispatch(EventConfirmReset, ""))
	assert.Equal(t, settings.Defaults(), p.Settings())
	assert.Equal(t, []string{MsgResetDone}, p.Snapshot().Notices)
}

func TestImport(t *testing.T) {
	p, _ := newTestPage(t)
	require.NoError(t, p.AddBookmark(bookmark.Form{Name: "Keep", URL: "keep.example"}))
	require.NoError(t, p.Set(settings.KeyFontSize, 20))

	before := p.Settings()
	bookmarks := p.Bookmarks()

	require.NoError(t, p.Import([]byte(`{"settings":{"theme":"dark"}}`)))

	want := before
	want.Theme = "dark"
	assert.Equal(t, want, p.Settings())
	assert.Equal(t, bookmarks, p.Bookmarks())
	assert.Equal(t, []string{transfer.MsgImported}, p.Snapshot().Notices)
}

func TestImportMalformed(t *testing.T) {
	p, st := newTestPage(t)
	require.NoError(t, p.AddBookmark(bookmark.Form{Name: "Keep", URL: "keep.example"}))
	require.NoError(t, p.Set(settings.KeyTheme, "forest"))

	before := p.Settings()
	bookmarks := p.Bookmarks()
	rawBefore, err := st.Get(store.KeySettings)
	require.NoError(t, err)

	require.ErrorIs(t, p.Import([]byte(`{"settings": {"theme": "dark"`)), transfer.ErrInvalidFormat)

	assert.Equal(t, before, p.Settings())
	assert.Equal(t, bookmarks, p.Bookmarks())
	assert.Equal(t, []string{transfer.MsgImportFailed}, p.Snapshot().Notices)

	rawAfter, err := st.Get(store.KeySettings)
	require.NoError(t, err)
	assert.Equal(t, rawBefore, rawAfter)
}

func TestImportHTML(t *testing.T) {
	p, _ := newTestPage(t)

	n, err := p.ImportHTML(strings.NewReader(`<DL><DT><A HREF="https://go.dev">Go</A></DL>`))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"Imported 1 bookmark."}, p.Snapshot().Notices)

	_, err = p.ImportHTML(strings.NewReader(`<p>no links</p>`))
	require.Error(t, err)
	assert.Equal(t, []string{transfer.MsgImportFailed}, p.Snapshot().Notices)
}

func TestExport(t *testing.T) {
	p, _ := newTestPage(t)

	doc, name := p.Export()
	assert.Equal(t, "new-tab-settings-2025-01-02.json", name)
	assert.Equal(t, "2025-01-02T03:04:05.000Z", doc.ExportDate)
	assert.Equal(t, settings.Defaults(), doc.Settings)
}

func TestUploadBackground(t *testing.T) {
	p, _ := newTestPage(t)

	require.ErrorIs(t, p.UploadBackground([]byte("plain text")), ErrNotImage)
	assert.Nil(t, p.Settings().CustomBackground)

	require.NoError(t, p.UploadBackground(gifImage))
	s := p.Settings()
	assert.Equal(t, settings.BackgroundCustom, s.BackgroundType)
	require.NotNil(t, s.CustomBackground)
	assert.True(t, strings.HasPrefix(*s.CustomBackground, "data:image/gif;base64,"))

	layer := p.Snapshot().View.Background
	require.NotNil(t, layer)
	assert.Equal(t, *s.CustomBackground, layer.Image)
}

func TestHandleKey(t *testing.T) {
	p, _ := newTestPage(t)

	r := p.HandleKey("/")
	assert.True(t, r.ClearSearch)
	assert.True(t, p.Snapshot().ClearSearch)
	assert.False(t, p.Snapshot().ClearSearch)

	require.NoError(t, p.Dispatch(EventSettingsBtn, ""))
	assert.False(t, p.HandleKey("/").Handled)
	assert.True(t, p.HandleKey("Escape").Handled)
	assert.Empty(t, p.Snapshot().Modals.Active)

	require.NoError(t, p.Dispatch(EventHubBtn, ""))
	assert.False(t, p.HandleKey("/").ClearSearch)
	assert.True(t, p.HandleKey("ArrowRight").Handled)
	assert.Equal(t, 1, p.Snapshot().Hub.CardIndex)
}

func TestHubEvents(t *testing.T) {
	p, _ := newTestPage(t)

	require.NoError(t, p.Dispatch(EventHubBtn, ""))
	require.NoError(t, p.Dispatch(EventHubTab, hub.TabFlashcards))
	require.NoError(t, p.Dispatch(EventPrevFlashcard, ""))
	require.NoError(t, p.Dispatch(EventMastered, ""))
	require.NoError(t, p.Dispatch(EventLetterMastery, "0"))
	require.NoError(t, p.Dispatch(EventExampleMastery, "7"))
	require.Error(t, p.Dispatch(EventLetterMastery, "x"))

	s := p.Snapshot()
	assert.True(t, s.Hub.Open)
	assert.Equal(t, hub.TabFlashcards, s.Hub.Tab)
	assert.Equal(t, 19, s.Hub.CardIndex)
	assert.True(t, s.Hub.CardMastered)
	assert.True(t, s.Hub.Letters[0].Mastered)
	assert.True(t, s.Hub.Phrases[7].Mastered)
	assert.Equal(t, 3, s.Hub.Progress.Mastered)

	require.NoError(t, p.Dispatch(EventLetter, "1"))
	s = p.Snapshot()
	require.NotNil(t, s.Speech)
	assert.Equal(t, "beh", s.Speech.Text)
	assert.Equal(t, []string{"Б (be)\nSound: [beh]\nExample: банан (banan) - banana"}, s.Notices)

	require.NoError(t, p.Dispatch(EventHubOverlay, ""))
	assert.False(t, p.Snapshot().Hub.Open)
}

func TestModalOverlayAndNotices(t *testing.T) {
	p, _ := newTestPage(t)

	require.NoError(t, p.Dispatch(EventSettingsBtn, ""))
	require.NoError(t, p.Dispatch(EventModalOverlay, modal.Settings))
	assert.Empty(t, p.Snapshot().Modals.Active)

	require.Error(t, p.Import([]byte("{")))
	assert.Len(t, p.notices, 1)
	require.NoError(t, p.Dispatch(EventDismissNotice, ""))
	assert.Empty(t, p.Snapshot().Notices)
}

func TestDataURL(t *testing.T) {
	u, err := DataURL(gifImage)
	require.NoError(t, err)
	assert.Equal(t, "data:image/gif;base64,"+base64.StdEncoding.EncodeToString(gifImage), u)

	_, err = DataURL(nil)
	require.ErrorIs(t, err, ErrNotImage)

	_, err = DataURL(bytes.Repeat([]byte{0}, 16))
	require.ErrorIs(t, err, ErrNotImage)
}
