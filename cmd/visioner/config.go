package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mhr3/visioner/crack"
)

// Config holds the analysis settings shared by all subcommands.
// Zero or empty fields fall back to the language profile.
type Config struct {
	Alphabet       string  `mapstructure:"alphabet"`
	MaxKeyLength   int     `mapstructure:"max_key_length"`
	ExpectedIC     float64 `mapstructure:"expected_ic"`
	FrequentLetter string  `mapstructure:"frequent_letter"`
	PreviewLength  int     `mapstructure:"preview_length"`
}

func setDefaults() {
	viper.SetDefault("alphabet", "ru")
	viper.SetDefault("max_key_length", crack.DefaultMaxKeyLength)
	viper.SetDefault("expected_ic", 0.0)    // 0 = take from the language profile
	viper.SetDefault("frequent_letter", "") // "" = take from the language profile
	viper.SetDefault("preview_length", 200)
}

// loadFromEnv sets up environment variable loading.
func loadFromEnv() {
	viper.SetEnvPrefix("VISIONER")
	viper.AutomaticEnv()
}

// LoadConfig loads configuration from file and environment variables.
// A missing config file is fine unless an explicit path was given.
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("visioner")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/visioner")
	}

	setDefaults()
	loadFromEnv()

	if err := viper.ReadInConfig(); err != nil && path != "" {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
