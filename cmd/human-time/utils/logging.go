// Package utils provides utility functions for the human-time CLI.
// This file contains logging setup and log file lifecycle utilities.
package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/concave-dev/humantime/cmd/human-time/config"
	fileconfig "github.com/concave-dev/humantime/internal/config"
	"github.com/concave-dev/humantime/internal/logging"
)

// Log file handle kept open for the duration of the command
var logFileHandle *os.File

// SetupLogging configures CLI logging behavior based on environment and config.
// DEBUG=true forces debug output, otherwise the --log-level flag applies and
// the default level keeps everything but errors off the terminal.
func SetupLogging() error {
	if config.Global.LogFile != "" {
		if err := openLogFile(config.Global.LogFile); err != nil {
			return err
		}
	}

	if os.Getenv("DEBUG") == "true" {
		if logFileHandle == nil {
			logging.RestoreOutput()
		}
		logging.SetLevel("DEBUG")
		return nil
	}

	if config.Global.LogLevel == fileconfig.DefaultLogLevel {
		logging.SuppressOutput()
		return nil
	}
	logging.SetLevel(config.Global.LogLevel)
	return nil
}

// openLogFile creates parent directories and redirects all logging to path.
func openLogFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", filepath.Dir(path), err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFileHandle = f
	logging.SetOutput(f)
	return nil
}

// CleanupLogFile closes the log file handle if it exists
func CleanupLogFile() {
	if logFileHandle != nil {
		if err := logFileHandle.Close(); err != nil {
			// Use fmt.Fprintf instead of logging since the log file is the destination
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
		logFileHandle = nil
		logging.RestoreOutput()
		logging.SuppressOutput()
	}
}
