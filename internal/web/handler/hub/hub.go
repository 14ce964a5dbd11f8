// Package hub serves the letter details of the learning hub.
package hub

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/spf13/cast"

	"github.com/newtab-go/newtab/internal/config"
	lh "github.com/newtab-go/newtab/internal/hub"
	"github.com/newtab-go/newtab/internal/newtab"
	"github.com/newtab-go/newtab/internal/web/handler"
)

const (
	// Path is the letter route, :index is the alphabet position.
	Path = "/hub/letters/:index"

	// FormatJSON makes the route answer with the utterance instead of a redirect.
	FormatJSON = "json"
)

// Service is the hub handler service.
type Service struct {
	handler.Service
	page *newtab.Page
}

// Init registers GET /hub/letters/:index.
func (s *Service) Init(app *fiber.App, cfg *config.Config, page *newtab.Page) error {
	if app == nil || cfg == nil || page == nil {
		return handler.ErrNilDependency
	}

	s.page = page

	app.Get(Path, s.Letter)

	return nil
}

// Letter queues the letter's details and pronunciation.
func (s *Service) Letter(c fiber.Ctx) error {
	i, err := cast.ToIntE(c.Params("index"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	u, err := s.page.LetterDetails(i)
	if err != nil {
		if errors.Is(err, lh.ErrIndex) {
			return fiber.ErrNotFound
		}

		return err
	}

	if c.Query("format") == FormatJSON {
		return c.JSON(u)
	}

	return handler.BackHome(c)
}
