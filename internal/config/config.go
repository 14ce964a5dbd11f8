// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// EnvJSON holds a JSON document merged over the file configuration.
const EnvJSON = "NEWTAB_CONFIG_JSON"

// DefaultPath is used when ReadConfig gets an empty path.
const DefaultPath = "./etc/"

var validate = validator.New()

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	return load(v)
}

// Watch reloads the configuration when main.toml changes and passes every
// valid result to fn. Invalid edits are logged and skipped.
func Watch(path string, fn func(Config)) error {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		return errors.Wrap(err, "failed to read main config file")
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")

		c, err := load(v)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring invalid config change")
			return
		}

		fn(c)
	})
	v.WatchConfig()

	return nil
}

func newViper(path string) *viper.Viper {
	if path == "" {
		path = DefaultPath
	}

	v := viper.New()
	v.SetConfigName("main")
	v.SetConfigType("toml")
	v.AddConfigPath(path)

	v.SetDefault("Title", "New Tab")
	v.SetDefault("Webserver.Port", 8080)
	v.SetDefault("Webserver.ShutDownTime", 5)
	v.SetDefault("Webserver.BodyLimit", 8<<20)
	v.SetDefault("DB.GormEngine", EngineSQLite)
	v.SetDefault("DB.Path", "newtab.db")
	v.SetDefault("Storage.Driver", StorageGorm)
	v.SetDefault("Storage.Table", "newtab_storage")
	v.SetDefault("Favicon.Timeout", "5s")
	v.SetDefault("Favicon.CacheSize", 256)
	v.SetDefault("Log.LogLevel", "info")
	v.SetDefault("Log.AppName", "newtab")
	v.SetDefault("Log.ServiceName", "newtab")
	v.SetDefault("Log.Console.Enabled", true)

	return v
}

func load(v *viper.Viper) (Config, error) {
	var c Config

	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	if env := os.Getenv(EnvJSON); env != "" {
		var err error
		if c, err = decodeAndMergeConfig(c, env); err != nil {
			return c, err
		}
	}

	return c, validateConfig(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read "+EnvJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer

	enc := toml.NewEncoder(&buffer)
	enc.SetIndentTables(true)

	if err := enc.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validateConfig checks the settings the daemon cannot run without and
// fills in defaults for the optional ones.
func validateConfig(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	c.DB.GormEngine = strings.ToLower(c.DB.GormEngine)
	if c.DB.GormEngine == "" {
		c.DB.GormEngine = EngineSQLite
	}

	c.Storage.Driver = strings.ToLower(c.Storage.Driver)
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageGorm
	}

	if err := validate.Struct(c.DB); err != nil {
		return errors.Wrap(ErrInvalidValue, "db.gormEngine "+c.DB.GormEngine)
	}

	if err := validate.Struct(c.Storage); err != nil {
		return errors.Wrap(ErrInvalidValue, "storage.driver "+c.Storage.Driver)
	}

	if c.DB.GormEngine == EngineSQLite && c.DB.Path == "" {
		return errors.Wrap(ErrSQLitePathEmpty, invalidErrMessage)
	}

	if c.Storage.Driver != StorageGorm && c.Storage.Driver != c.DB.GormEngine {
		return errors.Wrap(ErrStorageNeedsServer, invalidErrMessage)
	}

	return nil
}
