// Package newtab is the application context of the page. A Page owns every
// piece of page state and is the only way the web layer changes it.
package newtab

import (
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/newtab-go/newtab/internal/bookmark"
	"github.com/newtab-go/newtab/internal/hub"
	"github.com/newtab-go/newtab/internal/modal"
	"github.com/newtab-go/newtab/internal/search"
	"github.com/newtab-go/newtab/internal/settings"
	"github.com/newtab-go/newtab/internal/store"
	"github.com/newtab-go/newtab/internal/transfer"
	"github.com/newtab-go/newtab/internal/view"
)

// Acknowledgement texts.
const (
	MsgResetConfirm = "Are you sure you want to reset all settings to defaults? This cannot be undone."
	MsgResetDone    = "Settings reset to defaults!"
)

// Page is the whole new-tab page. All methods are safe for concurrent use;
// they run one at a time.
type Page struct {
	mu sync.Mutex

	settings  *settings.Model
	bookmarks *bookmark.Store
	hub       *hub.Hub
	modals    *modal.Controller
	view      *view.View
	icons     bookmark.IconResolver
	grid      bookmark.Grid

	editing string
	drafts  map[string]bookmark.Form

	notices     []string
	confirm     *Confirm
	speech      *hub.Utterance
	clearSearch bool

	routes map[string]EventHandler
	now    func() time.Time
}

// New loads the persisted state from s and derives the initial view.
// icons may be nil, in which case every bookmark shows its glyph.
func New(s store.Store, icons bookmark.IconResolver) *Page {
	p := &Page{
		bookmarks: bookmark.NewStore(s),
		hub:       hub.New(s),
		view:      view.New(),
		icons:     icons,
		drafts:    make(map[string]bookmark.Form),
		now:       time.Now,
	}

	p.settings = settings.NewModel(s, func(cur settings.Settings) {
		view.Apply(p.view, cur)
	})
	p.modals = modal.New(modal.DefaultDialogs, p.resetDraft)
	p.routes = p.buildRoutes()

	p.settings.Load()
	p.bookmarks.Load()
	p.hub.Load()
	p.renderBookmarks()

	return p
}

// Settings returns the current settings record.
func (p *Page) Settings() settings.Settings {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.settings.Get()
}

// Bookmarks returns the current bookmark list.
func (p *Page) Bookmarks() []bookmark.Bookmark {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.bookmarks.List()
}

// Search resolves the query against the selected engine. ok is false for empty input.
func (p *Page) Search(query string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	target, err := search.Resolve(query, p.settings.Get().SearchEngine)
	if err != nil {
		return "", false
	}

	return target, true
}

// Set changes one settings field.
func (p *Page) Set(key string, value any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.settings.Set(key, value)
}

// AddBookmark handles the add dialog. On success the dialog closes. On a
// validation failure it stays open with the submitted values.
func (p *Page) AddBookmark(f bookmark.Form) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := p.bookmarks.Add(f.Name, f.URL); err != nil {
		p.drafts[modal.AddBookmark] = f
		return err
	}

	p.renderBookmarks()

	return p.modals.Close(modal.AddBookmark)
}

// BeginEdit opens the edit dialog filled with the bookmark's values.
func (p *Page) BeginEdit(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	bm, ok := p.bookmarks.Get(id)
	if !ok {
		return errors.Wrap(bookmark.ErrNotFound, id)
	}

	p.editing = id
	p.drafts[modal.EditBookmark] = bookmark.Form{Name: bm.Name, URL: bm.URL}

	return p.modals.Open(modal.EditBookmark)
}

// EditBookmark saves the edit dialog for id.
func (p *Page) EditBookmark(id string, f bookmark.Form) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := p.bookmarks.Edit(id, f.Name, f.URL); err != nil {
		if errors.Is(err, bookmark.ErrInvalid) {
			p.drafts[modal.EditBookmark] = f
			return err
		}
		_ = p.modals.Close(modal.EditBookmark)

		return err
	}

	p.renderBookmarks()

	return p.modals.Close(modal.EditBookmark)
}

// DeleteBookmark removes id and closes the edit dialog.
func (p *Page) DeleteBookmark(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.deleteBookmark(id)
}

// UploadBackground stores an uploaded image as the custom background and
// switches the background type to it.
func (p *Page) UploadBackground(data []byte) error {
	dataURL, err := DataURL(data)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err = p.settings.Set(settings.KeyCustomBackground, dataURL); err != nil {
		return err
	}

	return p.settings.Set(settings.KeyBackgroundType, settings.BackgroundCustom)
}

// Export snapshots settings and bookmarks for download.
func (p *Page) Export() (transfer.Document, string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()

	return transfer.NewDocument(p.settings.Get(), p.bookmarks.List(), now), transfer.Filename(now)
}

// Import applies an export file. Exactly one acknowledgement is queued:
// success, or the invalid format error when nothing was changed.
func (p *Page) Import(data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	patch, err := transfer.Parse(data)
	if err != nil {
		log.Warn().Err(err).Msg("rejected settings import")
		p.notify(transfer.MsgImportFailed)

		return err
	}

	if err = transfer.Apply(patch, p.settings, p.bookmarks); err != nil {
		p.notify(transfer.MsgImportFailed)
		return err
	}

	p.renderBookmarks()
	p.notify(transfer.MsgImported)

	return nil
}

// ImportHTML appends the links of a browser bookmark file.
func (p *Page) ImportHTML(r io.Reader) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	items, err := transfer.ParseNetscape(r)
	if err != nil {
		log.Warn().Err(err).Msg("rejected bookmark file")
		p.notify(transfer.MsgImportFailed)

		return 0, err
	}

	n, err := p.bookmarks.Append(items)
	if err != nil {
		return n, err
	}

	p.renderBookmarks()
	p.notify(importedLinks(n))

	return n, nil
}

// HandleKey runs the global keyboard shortcuts.
func (p *Page) HandleKey(key string) modal.KeyResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	r := p.modals.HandleKey(key, p.hub.IsOpen())
	if p.hub.HandleKey(key) {
		r.Handled = true
	}
	if r.ClearSearch {
		p.clearSearch = true
	}

	return r
}

// LetterDetails queues a letter's pronunciation and its details acknowledgement.
func (p *Page) LetterDetails(index int) (hub.Utterance, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.letter(index)
}

func (p *Page) letter(index int) (hub.Utterance, error) {
	u, err := hub.Speech(index)
	if err != nil {
		return hub.Utterance{}, err
	}

	details, err := hub.LetterDetails(index)
	if err != nil {
		return hub.Utterance{}, err
	}

	p.speech = &u
	p.notify(details)

	return u, nil
}

func (p *Page) deleteBookmark(id string) error {
	err := p.bookmarks.Delete(id)
	if err == nil {
		p.renderBookmarks()
	}

	if cerr := p.modals.Close(modal.EditBookmark); err == nil {
		err = cerr
	}

	return err
}

func (p *Page) renderBookmarks() {
	p.grid = p.bookmarks.Render(p.icons)
}

func (p *Page) notify(msg string) {
	p.notices = append(p.notices, msg)
}

// resetDraft discards a dialog's form values when it closes.
func (p *Page) resetDraft(id string) {
	delete(p.drafts, id)
	if id == modal.EditBookmark {
		p.editing = ""
	}
}

func importedLinks(n int) string {
	if n == 1 {
		return "Imported 1 bookmark."
	}

	return "Imported " + strconv.Itoa(n) + " bookmarks."
}
