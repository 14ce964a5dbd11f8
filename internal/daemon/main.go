// Package daemon wires the configuration, storage and web service together
// and runs the new tab server until it receives a termination signal.
package daemon

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/glebarez/sqlite"
	storagemysql "github.com/gofiber/storage/mysql/v2"
	storagepostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/newtab-go/newtab/internal/config"
	"github.com/newtab-go/newtab/internal/db/dsn"
	"github.com/newtab-go/newtab/internal/db/models"
	"github.com/newtab-go/newtab/internal/favicon"
	"github.com/newtab-go/newtab/internal/logger"
	"github.com/newtab-go/newtab/internal/logger/adapter/stdlogger"
	"github.com/newtab-go/newtab/internal/newtab"
	"github.com/newtab-go/newtab/internal/store"
	"github.com/newtab-go/newtab/internal/web"
)

// ErrConfigNil is returned when New is called without a configuration.
var ErrConfigNil = errors.New("config is nil")

// Backend is an opened store together with the resources backing it.
type Backend struct {
	Store  store.Store
	closer []func() error
}

// Close releases the database connections of the backend.
func (b *Backend) Close() error {
	var first error
	for _, fn := range b.closer {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	b.closer = nil

	return first
}

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	backend    *Backend
	page       *newtab.Page
	webService *web.Service
}

// New opens the storage, seeds the defaults and builds the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	backend, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	if err = seed(backend.Store); err != nil {
		_ = backend.Close()
		return nil, err
	}

	var proxy *favicon.Proxy
	if cfg.Favicon.Proxy {
		proxy = favicon.NewProxy(cfg.Favicon)
	}

	page := newtab.New(backend.Store, favicon.NewResolver(cfg.Favicon))

	svc, err := web.New(cfg, page, proxy)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	return &Daemon{
		cfg:        cfg,
		backend:    backend,
		page:       page,
		webService: svc,
	}, nil
}

// Page returns the page state served by the daemon.
func (d *Daemon) Page() *newtab.Page {
	return d.page
}

// Addr is the listen address built from the webserver settings.
func (d *Daemon) Addr() string {
	return net.JoinHostPort(d.cfg.Webserver.Domain, strconv.Itoa(d.cfg.Webserver.Port))
}

// WatchConfig follows the configuration directory and applies a changed log
// level without a restart. Other settings need a restart.
func (d *Daemon) WatchConfig(path string) error {
	return config.Watch(path, func(c config.Config) {
		if c.Log.LogLevel == d.cfg.Log.LogLevel {
			return
		}

		if _, err := logger.SetLevel(c.Log.LogLevel); err != nil {
			log.Warn().Err(err).Str("level", c.Log.LogLevel).Msg("ignoring log level change")
			return
		}

		d.cfg.Log.LogLevel = c.Log.LogLevel
		log.Info().Str("level", c.Log.LogLevel).Msg("log level changed")
	})
}

// Start serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// the web service down and closes the storage.
func (d *Daemon) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	defer func() {
		if err := d.backend.Close(); err != nil {
			log.Error().Err(err).Msg("closing storage")
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", d.Addr()).Msg("listening")
		return d.webService.Start(d.Addr())
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		return d.webService.Shutdown(context.WithoutCancel(gctx))
	})

	return g.Wait()
}

// Open connects the configured database and storage driver. It is used by
// the daemon and by the maintenance commands.
func Open(cfg *config.Config) (*Backend, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	switch cfg.Storage.Driver {
	case config.StorageMySQL:
		kv := storagemysql.New(storagemysql.Config{
			ConnectionURI: dsn.MySQL(cfg.DB),
			Table:         cfg.Storage.Table,
		})

		return &Backend{Store: store.NewFiber(kv), closer: []func() error{kv.Close}}, nil
	case config.StoragePostgres:
		kv := storagepostgres.New(storagepostgres.Config{
			ConnectionURI: dsn.Postgres(cfg.DB),
			Table:         cfg.Storage.Table,
		})

		return &Backend{Store: store.NewFiber(kv), closer: []func() error{kv.Close}}, nil
	}

	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "database handle")
	}

	return &Backend{Store: store.NewGorm(db), closer: []func() error{sqlDB.Close}}, nil
}

// OpenDB opens the gorm database of the configured engine and migrates the
// blob table.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		dialector = gormmysql.Open(dsn.Create(cfg))
	case config.EnginePostgres:
		dialector = gormpostgres.Open(dsn.Create(cfg))
	default:
		dialector = sqlite.Open(dsn.Create(cfg))
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: stdlogger.New()})
	if err != nil {
		return nil, errors.Wrapf(err, "connect %s database", cfg.DB.GormEngine)
	}

	if err = db.AutoMigrate(&models.Blob{}); err != nil {
		return nil, errors.Wrap(err, "migrate database")
	}

	return db, nil
}
