// Package home renders the new-tab page.
package home

import (
	"github.com/gofiber/fiber/v3"

	"github.com/newtab-go/newtab/internal/config"
	"github.com/newtab-go/newtab/internal/newtab"
	"github.com/newtab-go/newtab/internal/settings"
	"github.com/newtab-go/newtab/internal/view"
	"github.com/newtab-go/newtab/internal/web/handler"
	"github.com/newtab-go/newtab/internal/web/navigation"
)

const (
	// Path is the template of the page.
	Path = "index"
)

// Bounds are the limits of the range inputs of the settings panel.
type Bounds struct {
	OpacityMin, OpacityMax         int
	GridColumnsMin, GridColumnsMax int
	RadiusMin, RadiusMax           int
	FontSizeMin, FontSizeMax       int
}

var bounds = Bounds{
	OpacityMin:     settings.OpacityMin,
	OpacityMax:     settings.OpacityMax,
	GridColumnsMin: settings.GridColumnsMin,
	GridColumnsMax: settings.GridColumnsMax,
	RadiusMin:      settings.RadiusMin,
	RadiusMax:      settings.RadiusMax,
	FontSizeMin:    settings.FontSizeMin,
	FontSizeMax:    settings.FontSizeMax,
}

// Service is the page handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	page *newtab.Page
}

// Init registers GET /.
func (s *Service) Init(app *fiber.App, cfg *config.Config, page *newtab.Page) error {
	if app == nil || cfg == nil || page == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.page = page

	app.Get(handler.RootPath, s.Get)

	return nil
}

// Get renders the current page state. Rendering consumes the queued notices.
func (s *Service) Get(c fiber.Ctx) error {
	state := s.page.Snapshot()

	nav := navigation.Tabs(s.cfg.Title, state.Hub.Tab, "/ui/"+newtab.EventHubTab, state.Hub.Tabs, view.Label)

	c.Set(fiber.HeaderCacheControl, "no-store")

	return c.Render(Path, fiber.Map{
		"Title":      s.cfg.Title,
		"State":      state,
		"Navigation": nav,
		"Bounds":     bounds,
	}, handler.BaseLayout)
}
