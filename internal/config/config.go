// Package config loads pennypad settings from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI        UIConfig        `mapstructure:"ui"`
	Animation AnimationConfig `mapstructure:"animation"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	DateFormat     string `mapstructure:"date_format"`
	ReduceMotion   bool   `mapstructure:"reduce_motion"`
}

// AnimationConfig holds the spring parameters for the sheet transition.
// Frequency is the angular frequency in Hz, damping the damping ratio
// (under 1 overshoots, 1 settles without bounce).
type AnimationConfig struct {
	Frequency float64 `mapstructure:"frequency"`
	Damping   float64 `mapstructure:"damping"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		UI: UIConfig{
			CurrencySymbol: "$",
			DateFormat:     "02/01/2006",
			ReduceMotion:   false,
		},
		Animation: AnimationConfig{
			Frequency: 7.0,
			Damping:   0.8,
		},
	}
}

// Load reads configuration from file and env. Env var overrides use
// prefix PENNYPAD_; PENNYPAD_CONFIG names an explicit config file.
func Load() (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("ui.currency_symbol", def.UI.CurrencySymbol)
	v.SetDefault("ui.date_format", def.UI.DateFormat)
	v.SetDefault("ui.reduce_motion", def.UI.ReduceMotion)
	v.SetDefault("animation.frequency", def.Animation.Frequency)
	v.SetDefault("animation.damping", def.Animation.Damping)

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("PENNYPAD_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "pennypad"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PENNYPAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Animation.Frequency <= 0 {
		c.Animation.Frequency = def.Animation.Frequency
	}
	if c.Animation.Damping <= 0 {
		c.Animation.Damping = def.Animation.Damping
	}
	return c, nil
}
