// Package search sends a query to the selected engine or straight to the
// address it names.
package search

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/newtab-go/newtab/internal/config"
	"github.com/newtab-go/newtab/internal/newtab"
	"github.com/newtab-go/newtab/internal/web/handler"
)

const (
	// Path is the route of the search box.
	Path = "/search"

	// QueryField is the form and query parameter holding the search text.
	QueryField = "q"
)

// Service is the search handler service.
type Service struct {
	handler.Service
	page *newtab.Page
}

// Init registers GET and POST /search.
func (s *Service) Init(app *fiber.App, cfg *config.Config, page *newtab.Page) error {
	if app == nil || cfg == nil || page == nil {
		return handler.ErrNilDependency
	}

	s.page = page

	app.Get(Path, s.Search)
	app.Post(Path, s.Search)

	return nil
}

// Search redirects to the resolved target. Blank input goes back to the page.
func (s *Service) Search(c fiber.Ctx) error {
	q := c.FormValue(QueryField)
	if q == "" {
		q = c.Query(QueryField)
	}

	target, ok := s.page.Search(q)
	if !ok {
		return handler.BackHome(c)
	}

	log.Debug().Str("target", target).Msg("search")

	return c.Redirect().Status(fiber.StatusSeeOther).To(target)
}
