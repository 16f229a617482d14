package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Built-in defaults, applied for fields the file leaves unset.
const (
	DefaultMaxGapToleranceMin = 5
	DefaultTimezone           = "UTC"
	DefaultGPXDir             = "gpx"
	DefaultExiftoolPath       = "exiftool"
	DefaultExiftoolTimeoutSec = 20
)

// DefaultConfig returns the configuration used when no config file
// exists.
func DefaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyDefaults(cfg)
	return cfg
}

// LoadAppConfig loads and validates the application configuration.
// With an explicit path the file must exist. With an empty path the
// default locations are tried (config.yml, then
// ~/.config/geotag/config.yml) and the built-in defaults are used when
// none is found.
func LoadAppConfig(path string) (*AppConfig, error) {
	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		paths := []string{"config.yml"}
		if home, homeErr := os.UserHomeDir(); homeErr == nil {
			paths = append(paths, filepath.Join(home, ".config", "geotag", "config.yml"))
		}
		for _, p := range paths {
			data, err = os.ReadFile(p)
			if err == nil {
				break
			}
		}
		if err != nil {
			return DefaultConfig(), nil
		}
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(cfg.Match); err != nil {
		return nil, fmt.Errorf("invalid match config: %w", err)
	}
	if err := v.Struct(cfg.Apply); err != nil {
		return nil, fmt.Errorf("invalid apply config: %w", err)
	}
	if err := v.Struct(cfg.Exiftool); err != nil {
		return nil, fmt.Errorf("invalid exiftool config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Match.MaxGapToleranceMin == 0 {
		cfg.Match.MaxGapToleranceMin = DefaultMaxGapToleranceMin
	}
	if cfg.Apply.Timezone == "" {
		cfg.Apply.Timezone = DefaultTimezone
	}
	if cfg.Track.GPXDir == "" {
		cfg.Track.GPXDir = DefaultGPXDir
	}
	if cfg.Exiftool.Path == "" {
		cfg.Exiftool.Path = DefaultExiftoolPath
	}
	if cfg.Exiftool.TimeoutSec == 0 {
		cfg.Exiftool.TimeoutSec = DefaultExiftoolTimeoutSec
	}
}
