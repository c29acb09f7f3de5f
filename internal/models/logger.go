package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// logger forwards gorm output to zerolog so database logs share the
// format of the application logs.
type logger struct {
	Logger zerolog.Logger
}

// LogMode is a no-op, verbosity is controlled via zerolog's global level.
func (l *logger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *logger) Info(_ context.Context, msg string, args ...interface{}) {
	l.Logger.Info().Msgf(msg, args...)
}

func (l *logger) Warn(_ context.Context, msg string, args ...interface{}) {
	l.Logger.Warn().Msgf(msg, args...)
}

func (l *logger) Error(_ context.Context, msg string, args ...interface{}) {
	l.Logger.Error().Msgf(msg, args...)
}

// Trace logs every executed statement with its duration and row count.
// Lookups that do not match an expense are part of normal operation,
// they surface as 404 responses and are not logged as errors.
func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	statement, rows := fc()

	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		l.Logger.Error().
			Err(err).
			Str("statement", statement).
			Dur("elapsed", time.Since(begin)).
			Msg("database query failed")

		return
	}

	l.Logger.Debug().
		Str("statement", statement).
		Int64("rows", rows).
		Dur("elapsed", time.Since(begin)).
		Msg("database query")
}
