package config

import "github.com/hance08/atm/internal/constants"

type Config struct {
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error, disabled
	Format string `mapstructure:"format"` // console, json
	File   string `mapstructure:"file"`   // empty means stderr
}

func NewDefault() *Config {
	return &Config{
		Defaults: DefaultsConfig{Currency: constants.DefaultCurrency},
		Log: LogConfig{
			Level:  constants.DefaultLogLevel,
			Format: "console",
			File:   "",
		},
	}
}
