// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as the file format.
//
// Configuration is loaded from ~/.config/secretmock/config.toml (or XDG equivalent on Linux,
// ~/Library/Application Support/secretmock/config.toml on macOS, %APPDATA%\secretmock\config.toml
// on Windows), falling back to a config.toml in the current directory. The package provides
// type-safe access to the test harness defaults and UI settings.
package config
