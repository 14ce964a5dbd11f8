// Package bookmark handles the add, edit and delete dialogs of the bookmark grid.
package bookmark

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	bm "github.com/newtab-go/newtab/internal/bookmark"
	"github.com/newtab-go/newtab/internal/config"
	"github.com/newtab-go/newtab/internal/newtab"
	"github.com/newtab-go/newtab/internal/web/handler"
)

const (
	// Path is the bookmark route group.
	Path = "/bookmarks"
)

// Service is the bookmark handler service.
type Service struct {
	handler.Service
	page *newtab.Page
}

// Init registers the bookmark routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, page *newtab.Page) error {
	if app == nil || cfg == nil || page == nil {
		return handler.ErrNilDependency
	}

	s.page = page

	app.Route(Path, func(router fiber.Router) {
		router.Post(handler.RouterRootPath, s.Create)
		router.Get("/:id/edit", s.Edit)
		router.Post("/:id", s.Update)
		router.Post("/:id/delete", s.Delete)
	})

	return nil
}

// Create handles the add dialog.
func (s *Service) Create(c fiber.Ctx) error {
	var f bm.Form
	if err := c.Bind().Form(&f); err != nil {
		log.Debug().Err(err).Msg("failed to parse bookmark form")
		return handler.BackHome(c)
	}

	report(s.page.AddBookmark(f), "add bookmark")

	return handler.BackHome(c)
}

// Edit opens the edit dialog filled with the bookmark's values.
func (s *Service) Edit(c fiber.Ctx) error {
	if err := s.page.BeginEdit(c.Params("id")); err != nil {
		if errors.Is(err, bm.ErrNotFound) {
			return fiber.ErrNotFound
		}

		return err
	}

	return handler.BackHome(c)
}

// Update handles the edit dialog.
func (s *Service) Update(c fiber.Ctx) error {
	var f bm.Form
	if err := c.Bind().Form(&f); err != nil {
		log.Debug().Err(err).Msg("failed to parse bookmark form")
		return handler.BackHome(c)
	}

	err := s.page.EditBookmark(c.Params("id"), f)
	if errors.Is(err, bm.ErrNotFound) {
		return fiber.ErrNotFound
	}

	report(err, "edit bookmark")

	return handler.BackHome(c)
}

// Delete removes a bookmark.
func (s *Service) Delete(c fiber.Ctx) error {
	err := s.page.DeleteBookmark(c.Params("id"))
	if errors.Is(err, bm.ErrNotFound) {
		return fiber.ErrNotFound
	}

	report(err, "delete bookmark")

	return handler.BackHome(c)
}

// report logs invalid input at debug level and everything else as an error.
func report(err error, op string) {
	switch {
	case err == nil:
	case errors.Is(err, bm.ErrInvalid):
		log.Debug().Err(err).Msg(op + " rejected")
	default:
		log.Error().Err(err).Msg(op + " failed")
	}
}
