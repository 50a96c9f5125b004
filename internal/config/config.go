// Package config loads CLI configuration from an optional kg.yaml file and
// KG_-prefixed environment variables, with flags taking precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggerConfig controls log output
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

// TransformConfig carries default directories for the transform command
type TransformConfig struct {
	InputDir        string `mapstructure:"input_dir"`
	OutputDir       string `mapstructure:"output_dir"`
	IncludeExcluded bool   `mapstructure:"include_excluded"`
}

// Config is the full application configuration
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Transform TransformConfig `mapstructure:"transform"`
}

// Load reads configuration. cfgFile overrides the default search for
// ./kg.yaml; a missing config file is not an error, defaults and environment
// variables still apply.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("transform.input_dir", "data/raw")
	v.SetDefault("transform.output_dir", "data/transformed")
	v.SetDefault("transform.include_excluded", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("kg")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("KG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}
