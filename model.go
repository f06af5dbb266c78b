package csmasim

//
// Data model: logging and constants shared across the package
//

// Logger is the logger used throughout csmasim.
type Logger interface {
	// Debugf formats and emits a debug message.
	Debugf(format string, v ...any)

	// Debug emits a debug message.
	Debug(message string)

	// Infof formats and emits an informational message.
	Infof(format string, v ...any)

	// Info emits an informational message.
	Info(message string)

	// Warnf formats and emits a warning message.
	Warnf(format string, v ...any)

	// Warn emits a warning message.
	Warn(message string)
}

const (
	// OneSecond is the number of simulated nanoseconds in one second.
	OneSecond = int64(1_000_000_000)

	// FrameSize is the default DATA frame size, in bits (1500 bytes).
	FrameSize = int64(1500 * 8)
)
