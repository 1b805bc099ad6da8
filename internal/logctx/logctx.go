// Package logctx is the ambient logging shim for confparse. It wraps a
// single github.com/juju/loggo.Logger so verbosity is controlled the
// normal loggo way, by module name and level, instead of a package-level
// on/off switch.
package logctx

import "github.com/juju/loggo"

var logger = loggo.GetLogger("confparse")

// Tracef logs the lexer/driver's per-state tracing, the loggo analogue
// of the goyang lexer's debug stateFn tracing. Silent unless the
// "confparse" module is configured at TRACE or below.
func Tracef(format string, args ...any) {
	logger.Tracef(format, args...)
}

// Debugf logs driver-level decisions (transitions, recovery jumps).
func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Errorf logs a reporter-rendered syntax error with full source
// context; this is the human-readable half of error reporting,
// distinct from the machine-readable Diagnostic appended to Result.
func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}

// SetLevel configures the confparse logger's level directly, a
// convenience for callers that don't want to reach for
// loggo.ConfigureLoggers themselves.
func SetLevel(level loggo.Level) {
	logger.SetLogLevel(level)
}
