// Package commands provides the command definition for human-time.
//
// human-time is a single-command CLI: the root command takes an optional
// TIME_DURATION argument (or reads it from stdin), interprets it in the unit
// given by --unit or the configuration's default unit, and prints it as a
// human-readable, unit-decomposed string.
package commands

import "github.com/spf13/cobra"

// Root command
var RootCmd = &cobra.Command{
	Use:   "human-time [TIME_DURATION]",
	Short: "Converts a time duration to a human-readable format",
	Long: `human-time converts a number of seconds, milliseconds or microseconds
into a human-readable duration such as "1h,30m" or "3 seconds, 600 milliseconds".

The value is taken from the positional argument or, when that is absent and
stdin is not a terminal, from the first line of stdin.

Output can be customised with a human-time.toml file placed next to the
executable or in the home directory (enable with --config), or with an
explicit --config-file (TOML or YAML).`,
	SilenceUsage: true,
	Args:         cobra.MaximumNArgs(1),
	Example: `  # Seconds are the default unit
  human-time 5400

  # Interpret the value as milliseconds
  human-time -u ms 3600

  # Read the value from stdin
  echo 7200 | human-time

  # Spelled-out labels without a config file
  human-time --preset=long 93784

  # Use human-time.toml from the executable directory or $HOME
  human-time --config 3600

  # Explicit configuration file and JSON output
  human-time --config-file=./human-time.yaml -o json 3600`,
	// Version, PersistentPreRunE and RunE are set by the main package
}

// SetupFlags configures all command line flags
func SetupFlags(cmd *cobra.Command, unitPtr *string, useConfigPtr *bool, configFilePtr *string,
	presetPtr *string, outputPtr *string, logLevelPtr *string, logFilePtr *string,
	defaultPreset, defaultOutput, defaultLogLevel string) {
	cmd.Flags().StringVarP(unitPtr, "unit", "u", "",
		"Unit of the time value: seconds (s, sec), milliseconds (ms, milli), microseconds (micro)\n"+
			"Defaults to the config's default_time_value_units")
	cmd.Flags().BoolVarP(useConfigPtr, "config", "c", false,
		"Load human-time.toml from the executable directory or home directory")
	cmd.Flags().StringVar(configFilePtr, "config-file", "",
		"Path to a configuration file (.toml, .yaml or .yml); implies --config")
	cmd.Flags().StringVar(presetPtr, "preset", defaultPreset,
		"Built-in configuration when no file is loaded: default, long")
	cmd.Flags().StringVarP(outputPtr, "output", "o", defaultOutput,
		"Output format: text, json")
	cmd.Flags().StringVar(logLevelPtr, "log-level", defaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR (logs go to stderr)")
	cmd.Flags().StringVar(logFilePtr, "log-file", "",
		"Write logs to this file instead of stderr")
}
