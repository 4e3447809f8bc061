// Package stdlogger adapts the global zerolog logger to printf style logger interfaces
// such as gorm's logger.Writer.
package stdlogger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger forwards printf style calls to zerolog.
type Logger struct {
	level zerolog.Level
}

// New returns a Logger whose Printf logs at info level.
func New() *Logger {
	return &Logger{level: zerolog.InfoLevel}
}

// NewWithLevel returns a Logger whose Printf logs at the given level.
func NewWithLevel(level zerolog.Level) *Logger {
	return &Logger{level: level}
}

// Printf logs at the logger's level.
func (l *Logger) Printf(format string, v ...interface{}) {
	log.WithLevel(l.level).Msgf(format, v...)
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, v ...interface{}) {
	log.Debug().Msgf(format, v...)
}

// Infof logs at info level.
func (l *Logger) Infof(format string, v ...interface{}) {
	log.Info().Msgf(format, v...)
}

// Warningf logs at warn level.
func (l *Logger) Warningf(format string, v ...interface{}) {
	log.Warn().Msgf(format, v...)
}

// Errorf logs at error level.
func (l *Logger) Errorf(format string, v ...interface{}) {
	log.Error().Msgf(format, v...)
}
