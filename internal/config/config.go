// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"secretmock-cli/internal/issue"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "secretmock"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

type (
	// Config is the root configuration structure.
	Config struct {
		Harness HarnessConfig `mapstructure:"harness" toml:"harness"`
		UI      UIConfig      `mapstructure:"ui" toml:"ui"`
	}

	// HarnessConfig holds the matrix test driver defaults.
	HarnessConfig struct {
		// Command is the test executable invoked once per trial.
		Command string `mapstructure:"command" toml:"command"`
		// Preload is the mock shared library installed via LD_PRELOAD.
		Preload string `mapstructure:"preload" toml:"preload"`
		// Passwords are the password axis values (the "no override" trial
		// is always appended by the driver).
		Passwords []string `mapstructure:"passwords" toml:"passwords"`
	}

	// UIConfig holds user interface settings.
	UIConfig struct {
		// Verbose enables debug-level trial logging.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
	}
)

// DefaultConfig returns the built-in defaults, matching the stock layout
// of the mocklibsecret build tree.
func DefaultConfig() *Config {
	return &Config{
		Harness: HarnessConfig{
			Command:   "./test.js",
			Preload:   "./build/libsecret.so",
			Passwords: []string{"aPassword", "another"},
		},
	}
}

// configFilePathOverride allows the --config flag (and tests) to point at
// an explicit config file.
var configFilePathOverride string

// SetConfigFilePathOverride sets an explicit config file path that takes
// precedence over the default search locations.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// ConfigDir returns the secretmock configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration, resolving the file from the --config
// override, the platform config directory, or the current directory, in
// that order. A missing config file is not an error; defaults apply.
func Load() (*Config, error) {
	path := configFilePathOverride
	if path == "" {
		resolved, err := resolveConfigPath()
		if err != nil {
			return nil, err
		}
		path = resolved
	} else if !fileExists(path) {
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Run 'secretmock config init' to create a default config").
			Wrap(fmt.Errorf("config file not found: %s", path)).
			BuildError()
	}

	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from the given file. An empty
// path returns the defaults unchanged.
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(ConfigFileExt)
		if err := v.ReadInConfig(); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid TOML syntax").
				WithSuggestion("See 'secretmock config --help' for configuration options").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse configuration").
			WithResource(path).
			WithSuggestion("Verify the configuration values match the expected types").
			Wrap(err).
			BuildError()
	}

	return &cfg, nil
}

// ResolvedPath returns the config file that Load would read, or "" when
// only the built-in defaults apply.
func ResolvedPath() (string, error) {
	if configFilePathOverride != "" {
		return configFilePathOverride, nil
	}
	return resolveConfigPath()
}

// DefaultTOML renders the built-in defaults as a TOML document, suitable
// for seeding a new config file.
func DefaultTOML() ([]byte, error) {
	out, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to render default config: %w", err)
	}
	return out, nil
}

// MarshalTOML renders a configuration as a TOML document.
func MarshalTOML(cfg *Config) ([]byte, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}
	return out, nil
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("harness.command", defaults.Harness.Command)
	v.SetDefault("harness.preload", defaults.Harness.Preload)
	v.SetDefault("harness.passwords", defaults.Harness.Passwords)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
}

func resolveConfigPath() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	name := ConfigFileName + "." + ConfigFileExt
	path := filepath.Join(cfgDir, name)
	if fileExists(path) {
		return path, nil
	}
	if fileExists(name) {
		return name, nil
	}
	return "", nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
