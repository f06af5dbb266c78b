// Package internal contains internal implementation details.
package internal

import "github.com/bassosimone/csmasim"

// NullLogger is a [csmasim.Logger] that does not emit logs.
type NullLogger struct{}

// Debug implements csmasim.Logger
func (nl *NullLogger) Debug(message string) {
	// nothing
}

// Debugf implements csmasim.Logger
func (nl *NullLogger) Debugf(format string, v ...any) {
	// nothing
}

// Info implements csmasim.Logger
func (nl *NullLogger) Info(message string) {
	// nothing
}

// Infof implements csmasim.Logger
func (nl *NullLogger) Infof(format string, v ...any) {
	// nothing
}

// Warn implements csmasim.Logger
func (nl *NullLogger) Warn(message string) {
	// nothing
}

// Warnf implements csmasim.Logger
func (nl *NullLogger) Warnf(format string, v ...any) {
	// nothing
}

var _ csmasim.Logger = &NullLogger{}
