package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrSQLitePathEmpty error if the sqlite engine has no database file.
	ErrSQLitePathEmpty = errors.New("toml config db.path can not be empty for the sqlite engine")

	// ErrStorageNeedsServer error if a gofiber storage driver is combined with the sqlite engine.
	ErrStorageNeedsServer = errors.New("toml config storage.driver mysql and postgres need a matching db.gormEngine")

	// ErrInvalidValue error if a config field is outside its allowed values.
	ErrInvalidValue = errors.New("toml config value not allowed")
)
