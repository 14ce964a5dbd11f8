package config

import (
	"github.com/newtab-go/newtab/internal/favicon"
	"github.com/newtab-go/newtab/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Storage   Storage
	Favicon   favicon.Config
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool   // enable static file browsing (for development purposes only)
	DisableRecover bool   // disable recover middleware
	Domain         string // listen address, empty listens on every interface
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
	BodyLimit      int    // max request body in bytes, bounds background uploads and imports
}
