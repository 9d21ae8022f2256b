// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config keys and their defaults.
const (
	KeyDatabasePath   = "database.path"
	KeyCurrencySymbol = "currency.symbol"
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"

	defaultDatabasePath   = "$HOME/.local/share/budget/budget.db"
	defaultCurrencySymbol = "$"
)

// SetDefaults registers the application defaults with viper. Called once
// during CLI initialization, before the config file is read.
func SetDefaults() {
	viper.SetDefault(KeyDatabasePath, defaultDatabasePath)
	viper.SetDefault(KeyCurrencySymbol, defaultCurrencySymbol)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFormat, "console")
}

// DatabasePath returns the configured database path with ~ and
// environment variables expanded.
func DatabasePath() string {
	return ExpandPath(viper.GetString(KeyDatabasePath))
}

// CurrencySymbol returns the configured currency symbol.
func CurrencySymbol() string {
	return viper.GetString(KeyCurrencySymbol)
}

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
