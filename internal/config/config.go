// Package config loads and validates application configuration from
// environment variables and an optional YAML file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Environment variables are the config keys upper-cased with this prefix,
// e.g. MHIKE_DB_PATH.
const envPrefix = "MHIKE"

// Config keys, as written in a config file.
const (
	keyDBPath    = "db_path"
	keyLogLevel  = "log_level"
	keyLogFormat = "log_format"
)

// Supported log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all configuration values for the mhike CLI.
// Values are populated by Load.
type Config struct {
	// DBPath is the SQLite database file. Defaults to "mhike.db" in the
	// working directory.
	DBPath string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error. Unknown values fall back to info.
	LogLevel string

	// LogFormat selects the slog handler: "text" (default) or "json".
	LogFormat string
}

// Load reads configuration with the precedence MHIKE_* env > config file >
// defaults. configFile may be empty; when set, the file must exist.
// Returns an error naming any key with an unusable value.
func Load(configFile string) (Config, error) {
	v := viper.New()
	v.SetDefault(keyDBPath, "mhike.db")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, LogFormatText)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	cfg := Config{
		DBPath:    strings.TrimSpace(v.GetString(keyDBPath)),
		LogLevel:  strings.ToLower(strings.TrimSpace(v.GetString(keyLogLevel))),
		LogFormat: strings.ToLower(strings.TrimSpace(v.GetString(keyLogFormat))),
	}

	var invalid []string
	if cfg.DBPath == "" {
		invalid = append(invalid, keyDBPath)
	}
	if cfg.LogFormat != LogFormatText && cfg.LogFormat != LogFormatJSON {
		invalid = append(invalid, keyLogFormat)
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid configuration values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
