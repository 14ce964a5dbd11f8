package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/newtab-go/newtab/internal/config"
	"github.com/newtab-go/newtab/internal/newtab"
)

// ErrNilDependency is returned by Init when a required argument is nil.
var ErrNilDependency = errors.New(ErrNilPageFatalLogMsg)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, page *newtab.Page) error
}

// BackHome redirects to the page with 303 so the browser re-renders it
// with a GET after a form post.
func BackHome(c fiber.Ctx) error {
	return c.Redirect().Status(fiber.StatusSeeOther).To(RootPath)
}
