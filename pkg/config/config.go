// Package config loads run configuration from a YAML file, environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/tweetstats/models"
	"github.com/spf13/viper"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "tweetstats.yaml"

// Config represents the complete run configuration
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Phrases []string      `mapstructure:"phrases"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// InputConfig selects the corpus files
type InputConfig struct {
	Scheme   string   `mapstructure:"scheme"`
	Dir      string   `mapstructure:"dir"`
	Patterns []string `mapstructure:"patterns"`
}

// OutputConfig names the generated artifacts. An empty path skips that artifact.
type OutputConfig struct {
	PhraseChart string `mapstructure:"phrase_chart"`
	HourChart   string `mapstructure:"hour_chart"`
	Summary     string `mapstructure:"summary"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from path and TWEETSTATS_* environment variables.
// A missing file is an error only when required is set.
func Load(path string, required bool) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TWEETSTATS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		_, statErr := os.Stat(path)
		switch {
		case statErr == nil:
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		case errors.Is(statErr, os.ErrNotExist) && !required:
		default:
			return nil, fmt.Errorf("failed to read config file: %w", statErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	v.SetDefault("input.scheme", string(models.SchemeCondensed))
	v.SetDefault("input.dir", "")
	v.SetDefault("input.patterns", []string{})

	v.SetDefault("phrases", models.DefaultPhrases)

	v.SetDefault("output.phrase_chart", "tweet_counts.png")
	v.SetDefault("output.hour_chart", "tweet_hours.png")
	v.SetDefault("output.summary", "")

	v.SetDefault("logging.level", "info")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if !models.Scheme(c.Input.Scheme).Valid() {
		return fmt.Errorf("input.scheme must be one of: %s, %s", models.SchemeCondensed, models.SchemeMaster)
	}

	if len(c.Phrases) == 0 {
		return fmt.Errorf("phrases must contain at least one phrase")
	}
	for i, p := range c.Phrases {
		if p == "" {
			return fmt.Errorf("phrases[%d] is empty", i)
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	return nil
}

// Patterns returns the glob patterns for this run.
// Explicit patterns win over the scheme default; relative patterns are joined onto Input.Dir.
func (c *Config) Patterns() []string {
	patterns := c.Input.Patterns
	if len(patterns) == 0 {
		patterns = []string{models.Scheme(c.Input.Scheme).DefaultPattern()}
	}

	resolved := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if c.Input.Dir != "" && !filepath.IsAbs(p) {
			p = filepath.Join(c.Input.Dir, p)
		}
		resolved = append(resolved, p)
	}
	return resolved
}
