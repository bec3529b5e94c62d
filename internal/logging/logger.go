// Package logging provides colour-coded, levelled logging for human-time.
//
// Wraps charmbracelet/log with printf-style helpers so every package logs the
// same way. Every level, SUCCESS included, goes to stderr unless a single
// destination is configured with SetOutput. Stdout carries only the CLI's
// result line.
//
// The CLI runs at ERROR by default (see SuppressOutput) and only raises
// verbosity when asked to with --log-level or DEBUG=true.
//
// LOGGING FEATURES:
//   - Color-coded levels: DEBUG (purple), INFO (blue), WARN (yellow), ERROR (red), SUCCESS (green)
//   - Flexible output: log file or test buffer redirection with SetOutput
//   - Output suppression for quiet CLI runs with SuppressOutput/RestoreOutput
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	// Logger for every level (stderr by default)
	logger = newLogger(os.Stderr)

	// Destination set with SetOutput, nil when logging goes to stderr
	logOutput io.Writer
)

// newLogger creates a timestamped logger writing to w with the custom level styles.
func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	l.SetStyles(setupCustomStyles())
	return l
}

// setupCustomStyles creates custom color styling for log levels. The colours
// read well on both light and dark terminals.
func setupCustomStyles() *log.Styles {
	styles := log.DefaultStyles()

	// DEBUG: light purple
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(lipgloss.Color("#7F6DFF"))

	// INFO: light blue
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(lipgloss.Color("#42E7FF"))

	// WARN: light yellow
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(lipgloss.Color("#FFE763"))

	// ERROR: light red/pink
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(lipgloss.Color("#FF4473"))

	return styles
}

// destination returns where log lines currently go.
func destination() io.Writer {
	if logOutput != nil {
		return logOutput
	}
	return os.Stderr
}

// Info logs informational messages.
func Info(format string, v ...any) {
	logger.Info(fmt.Sprintf(format, v...))
}

// Warn logs warning messages for non-critical issues.
func Warn(format string, v ...any) {
	logger.Warn(fmt.Sprintf(format, v...))
}

// Error logs error messages.
func Error(format string, v ...any) {
	logger.Error(fmt.Sprintf(format, v...))
}

// Success logs successful operations in green using INFO level with custom styling.
// Implements a custom SUCCESS level that respects INFO level filtering.
func Success(format string, v ...any) {
	if logger.GetLevel() > log.InfoLevel {
		return
	}

	styles := setupCustomStyles()
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("SUCCESS").
		Foreground(lipgloss.Color("#60F281")) // Light green

	tempLogger := log.NewWithOptions(destination(), log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	tempLogger.SetStyles(styles)
	tempLogger.Info(fmt.Sprintf(format, v...))
}

// Debug logs detailed debugging information.
func Debug(format string, v ...any) {
	logger.Debug(fmt.Sprintf(format, v...))
}

// SetLevel configures the minimum level. Accepts DEBUG,
// INFO, WARN and ERROR; anything else falls back to INFO.
func SetLevel(level string) {
	var logLevel log.Level
	switch level {
	case "DEBUG":
		logLevel = log.DebugLevel
	case "INFO":
		logLevel = log.InfoLevel
	case "WARN":
		logLevel = log.WarnLevel
	case "ERROR":
		logLevel = log.ErrorLevel
	default:
		logLevel = log.InfoLevel
	}

	logger.SetLevel(logLevel)
}

// SetOutput sends every level to w while keeping the current level. A nil w
// suppresses all output.
func SetOutput(w io.Writer) {
	if w == nil {
		logger.SetLevel(log.FatalLevel + 1)
		logOutput = nil
		return
	}

	level := logger.GetLevel()
	logOutput = w
	logger = newLogger(w)
	logger.SetLevel(level)
}

// SuppressOutput disables INFO/WARN/DEBUG logs while keeping ERROR logs visible.
func SuppressOutput() {
	logger.SetLevel(log.ErrorLevel)
}

// RestoreOutput sends logging back to stderr at INFO level.
func RestoreOutput() {
	logOutput = nil
	logger = newLogger(os.Stderr)
	logger.SetLevel(log.InfoLevel)
}
