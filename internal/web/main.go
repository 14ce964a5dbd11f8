// Package web serves the new-tab page over HTTP.
package web

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/gofiber/template/html/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/newtab-go/newtab/internal/config"
	"github.com/newtab-go/newtab/internal/favicon"
	accesslog "github.com/newtab-go/newtab/internal/logger/adapter/fiber"
	"github.com/newtab-go/newtab/internal/newtab"
	"github.com/newtab-go/newtab/internal/view"
	"github.com/newtab-go/newtab/internal/web/handler"
	"github.com/newtab-go/newtab/internal/web/handler/bookmark"
	faviconhandler "github.com/newtab-go/newtab/internal/web/handler/favicon"
	"github.com/newtab-go/newtab/internal/web/handler/home"
	"github.com/newtab-go/newtab/internal/web/handler/hub"
	"github.com/newtab-go/newtab/internal/web/handler/search"
	"github.com/newtab-go/newtab/internal/web/handler/settings"
	"github.com/newtab-go/newtab/internal/web/handler/ui"
)

const (
	// CheckAlivePath reports 503 while the service drains.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus registry.
	MetricsPath = "/metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start listens on addr until Shutdown is called.
func (s *Service) Start(addr string) error {
	log.Info().Str("addr", addr).Msg("starting http server")

	return s.App.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown stops the server. Unless fast shutdown is set, /checkalive
// reports 503 for Webserver.ShutDownTime seconds first so a load balancer
// can drop this instance.
func (s *Service) Shutdown(ctx context.Context) error {
	s.alive.Store(false)

	if !s.fastShutDown {
		wait := time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second
		log.Info().Msgf("graceful shutdown: return 503 for %v", wait)

		select {
		case <-time.After(wait):
		case <-ctx.Done():
		}
	}

	log.Info().Msg("stopping http server ...")

	return s.App.Shutdown()
}

// New creates the web service. icons may be nil when the favicon proxy is off.
func New(cfg *config.Config, page *newtab.Page, icons *favicon.Proxy) (*Service, error) {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if page == nil {
		panic("page cannot be nil")
	}

	engine := html.NewFileSystem(http.FS(templatesFS(cfg.DevMode)), ".gohtml")

	// in dev mode templates are read from disk on every render
	if cfg.DevMode {
		engine.Reload(true)
		log.Warn().Msg("dev mode enabled: using local filesystem for templates and static files")
	}

	addTemplateFuncs(engine)

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "newtab",
			CaseSensitive:  true,
			Immutable:      true,
			BodyLimit:      cfg.Webserver.BodyLimit,
			Views:          engine,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recoverer.New())
	}

	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	app.Get("/static*", static.New("", static.Config{
		FS:     staticFS(cfg.DevMode),
		Browse: cfg.Webserver.BrowseStatic,
	}))

	service := &Service{
		cfg:          cfg,
		App:          app,
		fastShutDown: cfg.DevMode,
	}
	service.alive.Store(true)

	app.Get(CheckAlivePath, service.checkAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	icon := &faviconhandler.Service{}
	if icons != nil {
		icon.Use(icons)
	}

	for _, h := range []handler.Service{
		&home.Service{},
		&search.Service{},
		&ui.Service{},
		&bookmark.Service{},
		&settings.Service{},
		&hub.Service{},
		icon,
	} {
		if err := h.Init(app, cfg, page); err != nil {
			return nil, err
		}
	}

	return service, nil
}

func (s *Service) checkAlive(c fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

func addTemplateFuncs(engine *html.Engine) {
	engine.AddFunc("label", view.Label)
	engine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	engine.AddFunc("json", func(v any) (template.JS, error) {
		out, err := json.Marshal(v)
		return template.JS(out), err //nolint:gosec
	})
}
