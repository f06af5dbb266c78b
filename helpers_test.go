package csmasim

import (
	"github.com/bassosimone/csmasim/internal/optional"
)

// nullLogger is a [Logger] that discards everything. Package internal's
// NullLogger cannot be used here: internal imports csmasim, so importing
// it from this package's own tests would be an import cycle.
type nullLogger struct{}

func (nullLogger) Debugf(format string, v ...any) {}
func (nullLogger) Debug(message string)           {}
func (nullLogger) Infof(format string, v ...any)  {}
func (nullLogger) Info(message string)            {}
func (nullLogger) Warnf(format string, v ...any)  {}
func (nullLogger) Warn(message string)            {}

func testLogger() Logger {
	return nullLogger{}
}

func noneDuration() optional.Value[int64] {
	return optional.None[int64]()
}
