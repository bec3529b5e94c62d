package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Syntax selects the decoder used for a configuration file.
type Syntax int

const (
	TOML Syntax = iota
	YAML
)

// requiredKeys lists every key a configuration file must define.
var requiredKeys = [][]string{
	{"default_time_value_units"},
	{"formatting", "format"},
	{"formatting", "delimiter_text"},
	{"units", "d"},
	{"units", "h"},
	{"units", "m"},
	{"units", "s"},
	{"units", "ms"},
	{"units", "us"},
}

// MissingKeyError reports a required key absent from a configuration file.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing required key '%s'", e.Key)
}

// ErrNotFound is returned by Find when no configuration file exists in any
// of the searched locations.
var ErrNotFound = errors.New("config file '" + FileName + "' not found in the executable directory or home directory")

// SyntaxFor picks the decoder from the file extension. Anything that is not
// .yaml or .yml is treated as TOML.
func SyntaxFor(path string) Syntax {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return TOML
	}
}

// LoadFromFile reads, decodes and validates the configuration at path.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("config file not found at this location: %s", path)
		}
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg, err := LoadFromReader(bytes.NewReader(data), SyntaxFor(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config file %s", path)
	}
	return cfg, nil
}

// LoadFromReader decodes a configuration in the given syntax, checks that
// every required key is present and validates the result.
func LoadFromReader(r io.Reader, syntax Syntax) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	switch syntax {
	case YAML:
		cfg, err = decodeYAML(r)
	default:
		cfg, err = decodeTOML(r)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeTOML(r io.Reader) (*Config, error) {
	cfg := &Config{}
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse the config file")
	}

	for _, key := range requiredKeys {
		if !md.IsDefined(key...) {
			return nil, &MissingKeyError{Key: strings.Join(key, ".")}
		}
	}
	return cfg, nil
}

func decodeYAML(r io.Reader) (*Config, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if err == io.EOF {
			return nil, errors.New("failed to parse the config file: empty document")
		}
		return nil, errors.Wrap(err, "failed to parse the config file")
	}

	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "failed to parse the config file")
	}
	for _, key := range requiredKeys {
		if !yamlDefined(raw, key) {
			return nil, &MissingKeyError{Key: strings.Join(key, ".")}
		}
	}

	cfg := &Config{}
	if err := node.Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse the config file")
	}
	return cfg, nil
}

// yamlDefined walks nested mappings along key.
func yamlDefined(raw map[string]any, key []string) bool {
	current := raw
	for i, part := range key {
		value, ok := current[part]
		if !ok {
			return false
		}
		if i == len(key)-1 {
			return true
		}
		next, ok := value.(map[string]any)
		if !ok {
			return false
		}
		current = next
	}
	return false
}

// Find returns the first existing configuration file, looking next to the
// running executable and then in the user's home directory.
func Find() (string, error) {
	return findIn(searchPaths())
}

func searchPaths() []string {
	var paths []string
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), FileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, FileName))
	}
	return paths
}

func findIn(paths []string) (string, error) {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", ErrNotFound
}
