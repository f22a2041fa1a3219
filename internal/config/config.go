// Package config loads and validates application configuration from the
// environment and an optional config file.
package config

// Config holds all application configuration.
type Config struct {
	Log LogConfig `mapstructure:"log" validate:"required"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}
