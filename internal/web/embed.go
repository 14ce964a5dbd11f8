package web

import (
	"embed"
	"io/fs"
	"os"
)

// Local directories used instead of the embedded files in dev mode.
const (
	devTemplatesDir = "./internal/web/templates"
	devStaticDir    = "./internal/web/static"
)

var (
	//go:embed static
	embeddedStaticFiles embed.FS

	//go:embed templates
	embeddedTemplates embed.FS
)

// templatesFS returns the page templates rooted at the templates directory.
func templatesFS(dev bool) fs.FS {
	if dev {
		return os.DirFS(devTemplatesDir)
	}

	return mustSub(embeddedTemplates, "templates")
}

// staticFS returns the css and js assets rooted at the static directory.
func staticFS(dev bool) fs.FS {
	if dev {
		return os.DirFS(devStaticDir)
	}

	return mustSub(embeddedStaticFiles, "static")
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}

	return sub
}
