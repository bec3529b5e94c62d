// Package config provides flag-bound configuration for the human-time CLI.
package config

import (
	fileconfig "github.com/concave-dev/humantime/internal/config"
	"github.com/concave-dev/humantime/internal/version"
)

const (
	OutputText = "text" // Print the formatted duration only
	OutputJSON = "json" // Print value, unit and formatted duration as JSON

	PresetDefault = "default" // Abbreviated labels, e.g. 1h,30m
	PresetLong    = "long"    // Spelled-out labels, e.g. 1 hour, 30 minutes
)

// Version is the human-time CLI version reported by --version
var Version = version.HumanTimeVersion

// Global holds the CLI configuration for a single invocation
var Global struct {
	Unit       string // Unit of the time value; falls back to the config's default unit
	UseConfig  bool   // Search for human-time.toml next to the executable, then in $HOME
	ConfigFile string // Explicit configuration file path (implies UseConfig)
	Preset     string // Built-in configuration used when no file is loaded
	Output     string // Output format: text, json
	LogLevel   string // Log level for CLI operations
	LogFile    string // Optional log file; all log levels go there when set
}

// Reset restores every Global field to its flag default.
func Reset() {
	Global.Unit = ""
	Global.UseConfig = false
	Global.ConfigFile = ""
	Global.Preset = PresetDefault
	Global.Output = OutputText
	Global.LogLevel = fileconfig.DefaultLogLevel
	Global.LogFile = ""
}
