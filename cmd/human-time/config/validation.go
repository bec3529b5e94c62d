package config

import (
	"os"
	"strings"

	fileconfig "github.com/concave-dev/humantime/internal/config"
	"github.com/concave-dev/humantime/internal/logging"
	"github.com/concave-dev/humantime/internal/validate"
	"github.com/spf13/cobra"
)

// InitializeConfig applies environment overrides before validation runs.
func InitializeConfig() {
	if Global.ConfigFile == "" {
		if path := os.Getenv(fileconfig.EnvConfigPath); path != "" {
			Global.ConfigFile = path
			logging.Info("%s environment variable detected, using config file %s", fileconfig.EnvConfigPath, path)
		}
	}
	if Global.ConfigFile != "" {
		Global.UseConfig = true
	}
}

// ValidateGlobalFlags validates all flags before running the command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := ValidateOutputFormat(); err != nil {
		return err
	}

	if err := ValidatePreset(); err != nil {
		return err
	}

	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		logging.Error("Rejected --log-level value '%s': %v", Global.LogLevel, err)
		return err
	}

	// A blank unit would otherwise fall back to the config's default unit
	if cmd.Flags().Changed("unit") {
		if err := validate.ValidateRequiredString(strings.TrimSpace(Global.Unit), "--unit"); err != nil {
			logging.Error("Rejected --unit value '%s': %v", Global.Unit, err)
			return err
		}
	}

	if cmd.Flags().Changed("config-file") {
		if err := validate.ValidateRequiredString(strings.TrimSpace(Global.ConfigFile), "--config-file"); err != nil {
			logging.Error("Rejected --config-file value '%s': %v", Global.ConfigFile, err)
			return err
		}
	}

	return nil
}

// ValidateOutputFormat validates the --output flag
func ValidateOutputFormat() error {
	if err := validate.ValidateOneOf(Global.Output, "output format", OutputText, OutputJSON); err != nil {
		logging.Error("Rejected --output value '%s': %v", Global.Output, err)
		return err
	}
	return nil
}

// ValidatePreset validates the --preset flag
func ValidatePreset() error {
	if err := validate.ValidateOneOf(Global.Preset, "preset", PresetDefault, PresetLong); err != nil {
		logging.Error("Rejected --preset value '%s': %v", Global.Preset, err)
		return err
	}
	return nil
}
