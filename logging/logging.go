// Package logging contains the shared logging setup for tweakstack
// components.
package logging

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"
)

// MakeDefaultLoggers returns the default logging configuration: output to
// stdout, except Error level which goes to stderr, with Debug disabled.
func MakeDefaultLoggers() ldlog.Loggers {
	loggers := ldlog.NewDefaultLoggers()
	loggers.SetMinLevel(ldlog.Info)
	return loggers
}

// MakeLoggersForLevel returns loggers with the default output configuration,
// filtered to the given minimum level.
func MakeLoggersForLevel(level ldlog.LogLevel) ldlog.Loggers {
	loggers := ldlog.NewDefaultLoggers()
	loggers.SetMinLevel(level)
	return loggers
}
