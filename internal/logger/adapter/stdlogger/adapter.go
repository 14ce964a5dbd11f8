// Package stdlogger adapts the global zerolog logger to printf style
// logger interfaces, gorm's logger.Interface included.
package stdlogger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultSlowThreshold marks a query as slow.
const DefaultSlowThreshold = 200 * time.Millisecond

// Logger writes printf style messages to the global zerolog logger.
type Logger struct {
	level gormlogger.LogLevel
	slow  time.Duration
}

// New returns a logger which reports every gorm level and flags queries
// slower than DefaultSlowThreshold.
func New() *Logger {
	return &Logger{level: gormlogger.Info, slow: DefaultSlowThreshold}
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	log.Debug().Msgf(format, args...)
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) {
	log.Info().Msgf(format, args...)
}

// Warningf logs at warn level.
func (l *Logger) Warningf(format string, args ...any) {
	log.Warn().Msgf(format, args...)
}

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) {
	log.Error().Msgf(format, args...)
}

// Printf logs at debug level.
func (l *Logger) Printf(format string, args ...any) {
	l.Debugf(format, args...)
}

// LogMode implements gormlogger.Interface.
func (l *Logger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	c := *l
	c.level = level

	return &c
}

// Info implements gormlogger.Interface.
func (l *Logger) Info(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.Infof(msg, args...)
	}
}

// Warn implements gormlogger.Interface.
func (l *Logger) Warn(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.Warningf(msg, args...)
	}
}

// Error implements gormlogger.Interface.
func (l *Logger) Error(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.Errorf(msg, args...)
	}
}

// Trace implements gormlogger.Interface. Failed statements are errors, slow
// ones warnings and everything else goes to the trace level.
func (l *Logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	var event *zerolog.Event

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gormlogger.ErrRecordNotFound):
		event = log.Error().Err(err)
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		event = log.Warn().Str("slow", fmt.Sprintf(">= %v", l.slow))
	case l.level >= gormlogger.Info:
		event = log.Trace()
	default:
		return
	}

	event.Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("gorm")
}
