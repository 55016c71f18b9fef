// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvPython  = "PYCONFIG_PYTHON"
	EnvFixture = "PYCONFIG_FIXTURE"
	EnvDebug   = "PYCONFIG_DEBUG"
	EnvConfig  = "PYCONFIG_CONFIG"
)

// Config holds pyconfig configuration
type Config struct {
	Python  string      `yaml:"python" toml:"python"`   // Interpreter path or name; version is detected
	Version string      `yaml:"version" toml:"version"` // "2" or "3" when Python is empty
	Fixture string      `yaml:"fixture" toml:"fixture"` // Recorded responses to replay instead of an interpreter
	Debug   bool        `yaml:"debug" toml:"debug"`
	Usage   UsagePolicy `yaml:"usage" toml:"usage"`
}

// UsagePolicy controls where the usage message goes and how the process
// exits when it is printed. python3-config and the older python-config
// disagree on this, so it is configurable.
type UsagePolicy struct {
	Stream      string `yaml:"stream" toml:"stream"`             // "stdout" or "stderr"
	FailureCode int    `yaml:"failure_code" toml:"failure_code"` // No flags or an unknown flag
	HelpCode    int    `yaml:"help_code" toml:"help_code"`       // --help
}

// Usage streams
const (
	StreamStdout = "stdout"
	StreamStderr = "stderr"
)

// Python3Policy matches python3-config: usage on stderr, --help exits 0
func Python3Policy() UsagePolicy {
	return UsagePolicy{Stream: StreamStderr, FailureCode: 1, HelpCode: 0}
}

// LegacyPolicy matches the Python 2 era python-config, where --help exits 1
func LegacyPolicy() UsagePolicy {
	return UsagePolicy{Stream: StreamStderr, FailureCode: 1, HelpCode: 1}
}

// Validate checks the policy values
func (p UsagePolicy) Validate() error {
	switch p.Stream {
	case StreamStdout, StreamStderr:
	default:
		return fmt.Errorf("usage stream must be %q or %q, got %q", StreamStdout, StreamStderr, p.Stream)
	}
	if p.FailureCode == 0 {
		return fmt.Errorf("usage failure_code must be non-zero")
	}
	return nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Python:  "", // python3 unless Version says otherwise
		Version: "3",
		Debug:   false,
		Usage:   Python3Policy(),
	}
}

// DefaultPath returns $PYCONFIG_CONFIG or $HOME/.config/pyconfig/config.yaml
func DefaultPath() string {
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pyconfig", "config.yaml")
}

// LoadConfig loads configuration from file. Files ending in .toml are read as
// TOML, anything else as YAML. A missing file yields the defaults. Values not
// present in the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	return LoadConfigWith(path, DefaultConfig())
}

// LoadConfigWith is LoadConfig with caller-supplied defaults. cfg is filled
// in place and returned.
func LoadConfigWith(path string, cfg *Config) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Usage.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides cfg from PYCONFIG_* environment variables
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvPython); v != "" {
		c.Python = v
	}
	if v := getenv(EnvFixture); v != "" {
		c.Fixture = v
	}
	if v := getenv(EnvDebug); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Debug = debug
		}
	}
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultPath()
		if path == "" {
			return fmt.Errorf("no config path")
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	defer f.Close()

	if isTOML(path) {
		err = toml.NewEncoder(f).Encode(cfg)
	} else {
		enc := yaml.NewEncoder(f)
		if err = enc.Encode(cfg); err == nil {
			err = enc.Close()
		}
	}
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return f.Close()
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
