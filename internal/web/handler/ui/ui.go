// Package ui forwards page controls and keyboard shortcuts to the page's
// event routing table.
package ui

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/newtab-go/newtab/internal/config"
	"github.com/newtab-go/newtab/internal/newtab"
	"github.com/newtab-go/newtab/internal/web/handler"
)

const (
	// Path is the event route, :element names the control.
	Path = "/ui/:element"

	// KeyPath receives global key presses.
	KeyPath = "/key"

	// ValueField carries the control's value.
	ValueField = "value"

	// KeyField carries the key name as reported by KeyboardEvent.key.
	KeyField = "key"
)

// KeyResponse is the reply to a key press.
type KeyResponse struct {
	Handled     bool `json:"handled"`
	ClearSearch bool `json:"clearSearch"`
}

// Service is the ui event handler service.
type Service struct {
	handler.Service
	page *newtab.Page
}

// Init registers POST /ui/:element and POST /key.
func (s *Service) Init(app *fiber.App, cfg *config.Config, page *newtab.Page) error {
	if app == nil || cfg == nil || page == nil {
		return handler.ErrNilDependency
	}

	s.page = page

	app.Post(Path, s.Event)
	app.Post(KeyPath, s.Key)

	return nil
}

// Event dispatches one control event. Rejected values leave the page
// unchanged; the browser is sent back either way.
func (s *Service) Event(c fiber.Ctx) error {
	element := c.Params("element")

	if err := s.page.Dispatch(element, c.FormValue(ValueField)); err != nil {
		if errors.Is(err, newtab.ErrUnknownEvent) {
			return fiber.ErrNotFound
		}

		log.Debug().Err(err).Str("element", element).Msg("ui event ignored")
	}

	return handler.BackHome(c)
}

// Key runs the global shortcuts and tells the script whether to re-render.
func (s *Service) Key(c fiber.Ctx) error {
	r := s.page.HandleKey(c.FormValue(KeyField))

	return c.JSON(KeyResponse{Handled: r.Handled, ClearSearch: r.ClearSearch})
}
