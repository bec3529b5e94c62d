package handlers

import (
	"strings"

	"github.com/concave-dev/humantime/cmd/human-time/config"
	fileconfig "github.com/concave-dev/humantime/internal/config"
	"github.com/concave-dev/humantime/internal/logging"
)

// LoadConfig returns the validated configuration for this invocation: the
// explicit --config-file, a discovered human-time.toml when --config is set,
// or the built-in preset.
func LoadConfig() (*fileconfig.Config, error) {
	if !config.Global.UseConfig {
		cfg := presetConfig(config.Global.Preset)
		if err := cfg.Validate(); err != nil {
			logging.Error("Built-in '%s' configuration is invalid: %v", config.Global.Preset, err)
			return nil, err
		}
		logging.Debug("Using built-in '%s' configuration", config.Global.Preset)
		return cfg, nil
	}

	path := config.Global.ConfigFile
	if path == "" {
		found, err := fileconfig.Find()
		if err != nil {
			logging.Error("No %s found: %v", fileconfig.FileName, err)
			return nil, err
		}
		path = found
	}

	cfg, err := fileconfig.LoadFromFile(path)
	if err != nil {
		logging.Error("Loading %s failed: %v", path, err)
		logging.Debug("Loading %s failed: %+v", path, err)
		return nil, err
	}
	if config.Global.Preset != config.PresetDefault {
		logging.Warn("--preset %s ignored because %s is loaded", config.Global.Preset, path)
	}
	logging.Success("Loaded configuration from %s", path)
	return cfg, nil
}

func presetConfig(name string) *fileconfig.Config {
	if name == config.PresetLong {
		return fileconfig.Long()
	}
	return fileconfig.Default()
}

// EffectiveUnit returns the --unit flag value when given, otherwise the
// configuration's default unit.
func EffectiveUnit(cfg *fileconfig.Config) string {
	if unit := strings.TrimSpace(config.Global.Unit); unit != "" {
		return unit
	}
	return cfg.DefaultTimeValueUnits
}
