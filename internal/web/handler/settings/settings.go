// Package settings handles the file based settings actions: background
// upload, export, import and the browser bookmark file import.
package settings

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/newtab-go/newtab/internal/config"
	"github.com/newtab-go/newtab/internal/newtab"
	"github.com/newtab-go/newtab/internal/transfer"
	"github.com/newtab-go/newtab/internal/web/handler"
)

const (
	// Path is the settings route group.
	Path = "/settings"

	// FileField is the multipart field of every upload form.
	FileField = "file"

	// FormatYAML selects the YAML export.
	FormatYAML = "yaml"
)

// ErrNoFile is returned when an upload form carries no file.
var ErrNoFile = errors.New("no file uploaded")

// Service is the settings handler service.
type Service struct {
	handler.Service
	page *newtab.Page
}

// Init registers the settings routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, page *newtab.Page) error {
	if app == nil || cfg == nil || page == nil {
		return handler.ErrNilDependency
	}

	s.page = page

	app.Route(Path, func(router fiber.Router) {
		router.Post("/background", s.Background)
		router.Get("/export", s.Export)
		router.Get("/schema", s.Schema)
		router.Post("/import", s.Import)
		router.Post("/import-html", s.ImportHTML)
	})

	return nil
}

// Background stores an uploaded image as the custom background.
func (s *Service) Background(c fiber.Ctx) error {
	data, err := upload(c)
	if err != nil {
		log.Debug().Err(err).Msg("background upload without file")
		return handler.BackHome(c)
	}

	if err = s.page.UploadBackground(data); err != nil {
		if errors.Is(err, newtab.ErrNotImage) {
			log.Debug().Err(err).Msg("background upload rejected")
		} else {
			log.Error().Err(err).Msg("background upload failed")
		}
	}

	return handler.BackHome(c)
}

// Export downloads settings and bookmarks. ?format=yaml selects YAML.
func (s *Service) Export(c fiber.Ctx) error {
	doc, name := s.page.Export()

	var (
		data []byte
		err  error
	)

	if c.Query("format") == FormatYAML {
		name = strings.TrimSuffix(name, ".json") + ".yaml"
		data, err = transfer.ExportYAML(doc)
	} else {
		data, err = transfer.Export(doc)
	}

	if err != nil {
		log.Error().Err(err).Msg("export failed")
		return fiber.ErrInternalServerError
	}

	c.Attachment(name)

	return c.Send(data)
}

// Schema serves the JSON Schema of the export document.
func (s *Service) Schema(c fiber.Ctx) error {
	data, err := transfer.Schema()
	if err != nil {
		log.Error().Err(err).Msg("schema generation failed")
		return fiber.ErrInternalServerError
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return c.Send(data)
}

// Import applies an uploaded export file. The outcome is shown as a notice.
func (s *Service) Import(c fiber.Ctx) error {
	data, err := upload(c)
	if err != nil {
		log.Debug().Err(err).Msg("import without file")
		return handler.BackHome(c)
	}

	if err = s.page.Import(data); err != nil {
		log.Debug().Err(err).Msg("import rejected")
	}

	return handler.BackHome(c)
}

// ImportHTML appends the links of an uploaded bookmarks.html.
func (s *Service) ImportHTML(c fiber.Ctx) error {
	data, err := upload(c)
	if err != nil {
		log.Debug().Err(err).Msg("bookmark file import without file")
		return handler.BackHome(c)
	}

	n, err := s.page.ImportHTML(bytes.NewReader(data))
	if err != nil {
		log.Debug().Err(err).Msg("bookmark file rejected")
		return handler.BackHome(c)
	}

	log.Info().Int("count", n).Msg("bookmarks imported")

	return handler.BackHome(c)
}

// upload reads the form's file. The app's body limit bounds its size.
func upload(c fiber.Ctx) ([]byte, error) {
	fh, err := c.FormFile(FileField)
	if err != nil {
		return nil, errors.Join(ErrNoFile, err)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return io.ReadAll(f)
}
