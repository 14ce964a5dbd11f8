// Package dsn builds the connection strings for the configured database engine.
package dsn

import (
	"fmt"
	"net/url"

	"github.com/newtab-go/newtab/internal/config"
)

// Create builds the Data Source Name for cfg.DB.GormEngine. For sqlite it is
// the database file path.
func Create(cfg *config.Config) string {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return MySQL(cfg.DB)
	case config.EnginePostgres:
		return Postgres(cfg.DB)
	default:
		return cfg.DB.Path
	}
}

// MySQL builds a go-sql-driver/mysql DSN.
func MySQL(db config.DB) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
	)

	if db.Extras != "" {
		out += "?" + db.Extras
	}

	return out
}

// Postgres builds a postgres connection URI. Extras is appended as the query.
func Postgres(db config.DB) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:     "/" + db.Name,
		RawQuery: db.Extras,
	}

	return u.String()
}
