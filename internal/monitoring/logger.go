// Package monitoring provides the process-wide diagnostic logger used by the
// analysis engine. Failures inside a batch are reported here rather than
// propagated, so the batch can continue past individual bad files or metrics.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf but
// may be replaced by SetLogger. Tests or production code can redirect or mute
// it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Infof logs an informational message about normal batch progress.
func Infof(format string, v ...interface{}) {
	Logf("INFO: "+format, v...)
}

// Warnf logs a recoverable condition, such as a failed spreadsheet mirror.
func Warnf(format string, v ...interface{}) {
	Logf("WARNING: "+format, v...)
}

// Errorf logs a failure that excluded a file or metric from the results.
func Errorf(format string, v ...interface{}) {
	Logf("ERROR: "+format, v...)
}
