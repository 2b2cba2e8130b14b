// Package logging provides the leveled, printf-style logger used across
// crawlerd. It is a thin wrapper over github.com/phuslu/log, kept narrow so
// call sites read the same way the teacher's log4go call sites used to:
// Debugf/Infof/Warnf/Errorf(format, args...), one method per level.
package logging

import (
	"os"
	"time"

	"github.com/phuslu/log"
)

// Logger is the interface every component logs through. Production code
// gets the process-wide Default(); tests may substitute a recording
// implementation.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type phusluLogger struct {
	l *log.Logger
}

func (p *phusluLogger) Debugf(format string, args ...interface{}) {
	p.l.Debug().Msgf(format, args...)
}

func (p *phusluLogger) Infof(format string, args ...interface{}) {
	p.l.Info().Msgf(format, args...)
}

func (p *phusluLogger) Warnf(format string, args ...interface{}) {
	p.l.Warn().Msgf(format, args...)
}

func (p *phusluLogger) Errorf(format string, args ...interface{}) {
	p.l.Error().Msgf(format, args...)
}

var std = &phusluLogger{
	l: &log.Logger{
		Level:      log.InfoLevel,
		TimeFormat: time.RFC3339,
		Writer: &log.ConsoleWriter{
			ColorOutput:    true,
			QuoteString:    true,
			EndWithMessage: true,
		},
	},
}

// Default returns the process-wide logger.
func Default() Logger { return std }

// SetLevel adjusts the process-wide logger's minimum level. Accepted
// values: "debug", "info", "warn", "error".
func SetLevel(level string) {
	switch level {
	case "debug":
		std.l.Level = log.DebugLevel
	case "warn":
		std.l.Level = log.WarnLevel
	case "error":
		std.l.Level = log.ErrorLevel
	default:
		std.l.Level = log.InfoLevel
	}
}

func init() {
	// Mirrors the teacher's log4go default of logging to stderr with no
	// file output configured unless the operator opts in.
	std.l.Writer = &log.ConsoleWriter{Writer: os.Stderr, ColorOutput: true}
}
