// Package main provides the entry point for the human-time CLI.
//
// human-time converts a time duration given in seconds, milliseconds or
// microseconds into a human-readable, unit-decomposed string such as
// "1h,30m" or "3 seconds, 600 milliseconds".
//
// INITIALIZATION FLOW:
// 1. Flag configuration bound to the config.Global struct
// 2. Flag validation and logging setup in PersistentPreRunE
// 3. Handler assignment linking the root command to the conversion pipeline
// 4. Command execution; any returned error exits with status 1
package main

import (
	"os"

	"github.com/concave-dev/humantime/cmd/human-time/commands"
	"github.com/concave-dev/humantime/cmd/human-time/config"
	"github.com/concave-dev/humantime/cmd/human-time/handlers"
	"github.com/concave-dev/humantime/cmd/human-time/utils"
	fileconfig "github.com/concave-dev/humantime/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd := commands.RootCmd

	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = preRun
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		utils.CleanupLogFile()
	}
	rootCmd.RunE = handlers.HandleFormat

	commands.SetupFlags(rootCmd, &config.Global.Unit, &config.Global.UseConfig,
		&config.Global.ConfigFile, &config.Global.Preset, &config.Global.Output,
		&config.Global.LogLevel, &config.Global.LogFile,
		config.PresetDefault, config.OutputText, fileconfig.DefaultLogLevel)
}

// preRun validates flags, then configures logging and environment overrides
func preRun(cmd *cobra.Command, args []string) error {
	if err := config.ValidateGlobalFlags(cmd, args); err != nil {
		return err
	}

	if err := utils.SetupLogging(); err != nil {
		return err
	}

	config.InitializeConfig()
	return nil
}

// main is the main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		utils.CleanupLogFile()
		os.Exit(1)
	}
}
