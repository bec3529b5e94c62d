// Package handlers provides command handler functions for human-time.
//
// The package is organized as follows:
//   - handlers.go: the root command handler running the whole pipeline
//   - input.go: reading the raw time value from the argument or stdin
//   - settings.go: choosing the configuration and the effective unit
//
// Handlers never exit the process; they return errors to cobra and leave
// the exit status to main.
package handlers

import (
	"github.com/concave-dev/humantime/cmd/human-time/config"
	"github.com/concave-dev/humantime/cmd/human-time/display"
	"github.com/concave-dev/humantime/internal/format"
	"github.com/concave-dev/humantime/internal/logging"
	"github.com/concave-dev/humantime/internal/units"
	"github.com/spf13/cobra"
)

// HandleFormat converts the time value to a human-readable string and prints it
func HandleFormat(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	value, err := ReadTimeValue(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	unit := EffectiveUnit(cfg)
	family, err := units.Normalize(unit)
	if err != nil {
		logging.Error("Unit '%s' did not match any unit family: %v", unit, err)
		return err
	}
	logging.Debug("Formatting %d %s", value, family)

	formatted := format.Family(value, family, cfg)

	return display.PrintResult(cmd.OutOrStdout(), config.Global.Output, display.Result{
		Value:     value,
		Unit:      family.String(),
		Formatted: formatted,
	})
}
