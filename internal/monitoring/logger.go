// Package monitoring provides a pluggable diagnostic logger shared by the
// field and heuristic packages. Embedding applications (planners typically run
// inside a larger process) can redirect or mute the output without touching
// the global log package.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf but
// may be replaced by SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
