package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix      = "WEBVTT"
	defaultName    = "webvtt"
	defaultSeconds = 10
	defaultMPEGTS  = 900000
)

// Config holds the settings shared by the CLI commands.
type Config struct {
	Segment SegmentConfig `mapstructure:"segment" yaml:"segment"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

type SegmentConfig struct {
	TargetDuration int    `mapstructure:"target_duration" yaml:"target_duration"`
	MPEGTS         int    `mapstructure:"mpegts" yaml:"mpegts"`
	Output         string `mapstructure:"output" yaml:"output"`
}

type LogConfig struct {
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

// New returns a viper instance with defaults and WEBVTT_* environment
// overrides (segment.target_duration -> WEBVTT_SEGMENT_TARGET_DURATION).
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("segment.target_duration", defaultSeconds)
	v.SetDefault("segment.mpegts", defaultMPEGTS)
	v.SetDefault("segment.output", ".")
	v.SetDefault("log.verbose", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file at path into v and returns the merged settings.
// With an empty path it looks for webvtt.yaml in the working directory and
// carries on with defaults when there is none.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(defaultName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Segment.TargetDuration <= 0 {
		return fmt.Errorf(
			"segment.target_duration must be positive, got %d",
			c.Segment.TargetDuration,
		)
	}
	if c.Segment.MPEGTS < 0 {
		return fmt.Errorf(
			"segment.mpegts must not be negative, got %d",
			c.Segment.MPEGTS,
		)
	}
	return nil
}

// Dump writes c as YAML.
func Dump(w io.Writer, c *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
