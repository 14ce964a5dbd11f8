// Package handlertest provides the fixtures shared by the handler tests: a
// page on an in-memory store, a recording views engine and request builders.
package handlertest

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"

	"github.com/newtab-go/newtab/internal/config"
	"github.com/newtab-go/newtab/internal/newtab"
	"github.com/newtab-go/newtab/internal/store"
	"github.com/newtab-go/newtab/internal/store/storetest"
)

// Views records the last render call instead of executing a template.
type Views struct {
	mu      sync.Mutex
	name    string
	binding map[string]any
}

// Load implements fiber.Views.
func (v *Views) Load() error {
	return nil
}

// Render implements fiber.Views. It writes the template name as the body.
func (v *Views) Render(w io.Writer, name string, binding any, _ ...string) error {
	var m map[string]any

	switch b := binding.(type) {
	case fiber.Map:
		m = b
	case map[string]any:
		m = b
	default:
		return fiber.ErrInternalServerError
	}

	v.mu.Lock()
	v.name, v.binding = name, m
	v.mu.Unlock()

	_, err := io.WriteString(w, name)

	return err
}

// Last returns the name and binding of the last render.
func (v *Views) Last() (string, map[string]any) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.name, v.binding
}

// Config returns a minimal valid configuration.
func Config() *config.Config {
	return &config.Config{
		Title:     "New Tab",
		Webserver: config.Webserver{Port: 8080, URL: "http://localhost:8080"},
	}
}

// Page returns a page on a fresh in-memory store.
func Page(t *testing.T) (*newtab.Page, store.Store) {
	t.Helper()

	s := storetest.New(t)

	return newtab.New(s, nil), s
}

// App returns a fiber app rendering through views.
func App(views fiber.Views) *fiber.App {
	return fiber.New(fiber.Config{Views: views, CaseSensitive: true})
}

// Do runs req against app.
func Do(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()

	resp, err := app.Test(req)
	require.NoError(t, err)

	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

// Body reads the whole response body.
func Body(t *testing.T, resp *http.Response) []byte {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return data
}

// Form builds a url-encoded form request.
func Form(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	return req
}

// Upload builds a multipart request carrying one file in field.
func Upload(t *testing.T, target, field, filename string, data []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)

	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(fiber.MethodPost, target, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())

	return req
}
