package bookmark

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newtab-go/newtab/internal/modal"
	"github.com/newtab-go/newtab/internal/newtab"
	"github.com/newtab-go/newtab/internal/web/handler/handlertest"
)

func setup(t *testing.T) (*fiber.App, *newtab.Page) {
	t.Helper()

	app := handlertest.App(&handlertest.Views{})
	page, _ := handlertest.Page(t)

	s := &Service{}
	require.NoError(t, s.Init(app, handlertest.Config(), page))

	return app, page
}

func form(method, target, name, u string) *http.Request {
	return handlertest.Form(method, target, url.Values{"name": {name}, "url": {u}})
}

func TestService_Create(t *testing.T) {
	app, page := setup(t)

	resp := handlertest.Do(t, app, form(http.MethodPost, Path, "Example", "example.com"))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))

	list := page.Bookmarks()
	require.Len(t, list, 1)
	assert.Equal(t, "Example", list[0].Name)
	assert.Equal(t, "https://example.com", list[0].URL)
	assert.Equal(t, "E", list[0].Icon)
}

func TestService_Create_Invalid(t *testing.T) {
	app, page := setup(t)

	require.NoError(t, page.Dispatch(newtab.EventAddBookmarkBtn, ""))

	resp := handlertest.Do(t, app, form(http.MethodPost, Path, "  ", "example.com"))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	assert.Empty(t, page.Bookmarks())

	state := page.Snapshot()
	assert.True(t, state.Modals.Active[modal.AddBookmark])
	assert.Equal(t, "example.com", state.Modals.AddForm.URL)
}

func TestService_EditUpdateDelete(t *testing.T) {
	app, page := setup(t)

	handlertest.Do(t, app, form(http.MethodPost, Path, "Example", "example.com"))
	id := page.Bookmarks()[0].ID

	resp := handlertest.Do(t, app, httptest.NewRequest(http.MethodGet, Path+"/"+id+"/edit", nil))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	state := page.Snapshot()
	assert.True(t, state.Modals.Active[modal.EditBookmark])
	assert.Equal(t, id, state.Modals.EditID)
	assert.Equal(t, "Example", state.Modals.EditForm.Name)

	resp = handlertest.Do(t, app, form(http.MethodPost, Path+"/"+id, "Go", "go.dev"))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	list := page.Bookmarks()
	require.Len(t, list, 1)
	assert.Equal(t, "Go", list[0].Name)
	assert.Equal(t, "https://go.dev", list[0].URL)
	assert.False(t, page.Snapshot().Modals.Active[modal.EditBookmark])

	resp = handlertest.Do(t, app, httptest.NewRequest(http.MethodPost, Path+"/"+id+"/delete", nil))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Empty(t, page.Bookmarks())
}

func TestService_NotFound(t *testing.T) {
	app, _ := setup(t)

	tests := []*http.Request{
		httptest.NewRequest(http.MethodGet, Path+"/missing/edit", nil),
		form(http.MethodPost, Path+"/missing", "A", "a.com"),
		httptest.NewRequest(http.MethodPost, Path+"/missing/delete", nil),
	}

	for _, req := range tests {
		t.Run(req.Method+" "+req.URL.Path, func(t *testing.T) {
			resp := handlertest.Do(t, app, req)
			assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		})
	}
}
