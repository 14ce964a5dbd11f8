// Package favicon serves bookmark icons through the caching proxy.
package favicon

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/newtab-go/newtab/internal/config"
	fav "github.com/newtab-go/newtab/internal/favicon"
	"github.com/newtab-go/newtab/internal/newtab"
	"github.com/newtab-go/newtab/internal/web/handler"
)

const (
	// Path is the icon route.
	Path = fav.ProxyPath + ":host"

	// CacheControl lets the browser keep icons for a day.
	CacheControl = "public, max-age=86400"
)

// Fetcher returns the icon of a host.
type Fetcher interface {
	Get(ctx context.Context, host string) (fav.Icon, error)
}

// Service is the favicon handler service.
type Service struct {
	handler.Service
	icons Fetcher
}

// Init registers GET /favicon/:host. The route only exists with a proxy.
func (s *Service) Init(app *fiber.App, cfg *config.Config, _ *newtab.Page) error {
	if app == nil || cfg == nil {
		return handler.ErrNilDependency
	}

	if s.icons == nil {
		return nil
	}

	app.Get(Path, s.Get)

	return nil
}

// Use sets the icon source.
func (s *Service) Use(icons Fetcher) *Service {
	s.icons = icons
	return s
}

// Get answers with the cached icon, or 404 so the page shows the glyph.
func (s *Service) Get(c fiber.Ctx) error {
	host := c.Params("host")

	icon, err := s.icons.Get(c.Context(), host)
	if err != nil {
		log.Debug().Err(err).Str("host", host).Msg("favicon unavailable")
		return fiber.ErrNotFound
	}

	c.Set(fiber.HeaderContentType, icon.ContentType)
	c.Set(fiber.HeaderCacheControl, CacheControl)

	return c.Send(icon.Data)
}
