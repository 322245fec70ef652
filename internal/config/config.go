// Package config loads tint configuration from file, environment and
// defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/tinthq/tint/internal/scheme"
)

// Config is the persisted tint configuration. Enum-typed fields are stored
// as strings and validated through the scheme fallbacks, so a stale or
// hand-edited file degrades to defaults instead of failing.
type Config struct {
	// Workspace pins the workspace identifier; empty means derive it from
	// the working directory.
	Workspace string `mapstructure:"workspace"`
	// Seed perturbs the derived hue.
	Seed int64 `mapstructure:"seed"`

	Style     string `mapstructure:"style"`
	Harmony   string `mapstructure:"harmony"`
	Method    string `mapstructure:"method"`
	ThemeType string `mapstructure:"theme_type"`

	// Theme names an entry of the bundled theme database to blend toward.
	Theme string `mapstructure:"theme"`
	// ThemeColors overrides individual theme entries by color key.
	ThemeColors map[string]string `mapstructure:"theme_colors"`

	BlendFactor  float64            `mapstructure:"blend_factor"`
	BlendFactors map[string]float64 `mapstructure:"blend_factors"`
	HueOnly      bool               `mapstructure:"hue_only"`

	Targets []string `mapstructure:"targets"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the given file path, falling back to the
// default search locations when path is empty. A missing config file is
// fine; defaults apply.
func Load(path string) (*Config, error) {
	// Color key names contain dots (editor.background), so viper's default
	// key delimiter would explode them into nested maps.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.config/tint")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TINT")
	v.SetEnvKeyReplacer(strings.NewReplacer("::", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("style", string(scheme.DefaultStyle))
	v.SetDefault("harmony", string(scheme.DefaultHarmony))
	v.SetDefault("method", "hueShift")
	v.SetDefault("theme_type", string(scheme.DefaultThemeType))
	v.SetDefault("blend_factor", 0.35)
	v.SetDefault("targets", []string{"titleBar", "statusBar", "activityBar"})
	v.SetDefault("log::level", "info")
	v.SetDefault("log::format", "console")
}

// normalize funnels enum-ish strings through the scheme validators and
// restores canonical casing on map keys, which viper lowercases on read.
func (c *Config) normalize() {
	c.Style = string(scheme.ParseStyle(c.Style))
	c.Harmony = string(scheme.ParseHarmony(c.Harmony))
	c.ThemeType = string(scheme.ParseThemeType(c.ThemeType))

	var targets []string
	for _, t := range c.Targets {
		if e, ok := scheme.ParseElement(t); ok && e != scheme.ElementEditor {
			targets = append(targets, string(e))
		}
	}
	c.Targets = targets

	if len(c.ThemeColors) > 0 {
		colors := make(map[string]string, len(c.ThemeColors))
		for k, hex := range c.ThemeColors {
			if name, ok := scheme.CanonicalKeyName(k); ok {
				colors[name] = hex
			} else {
				colors[k] = hex
			}
		}
		c.ThemeColors = colors
	}
	if len(c.BlendFactors) > 0 {
		factors := make(map[string]float64, len(c.BlendFactors))
		for k, f := range c.BlendFactors {
			if e, ok := scheme.ParseElement(k); ok {
				factors[string(e)] = f
			}
		}
		c.BlendFactors = factors
	}
}

// TargetElements converts the configured target names to elements.
func (c *Config) TargetElements() []scheme.Element {
	out := make([]scheme.Element, 0, len(c.Targets))
	for _, t := range c.Targets {
		if e, ok := scheme.ParseElement(t); ok {
			out = append(out, e)
		}
	}
	return out
}
