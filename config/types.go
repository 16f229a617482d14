package config

import "time"

// MatchConfig contains matching engine configuration
type MatchConfig struct {
	MaxGapToleranceMin int `yaml:"maxGapToleranceMin" validate:"gte=0"`
}

// ApplyConfig contains batch apply configuration
type ApplyConfig struct {
	Overwrite bool   `yaml:"overwrite"`
	Timezone  string `yaml:"timezone" validate:"omitempty,timezone"`
}

// TrackConfig contains track source configuration
type TrackConfig struct {
	GPXDir    string `yaml:"gpxDir"`
	FITDir    string `yaml:"fitDir"`
	CacheFile string `yaml:"cacheFile"`
}

// ExiftoolConfig contains external exiftool configuration
type ExiftoolConfig struct {
	Path       string `yaml:"path"`
	TimeoutSec int    `yaml:"timeoutSec" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Match    MatchConfig    `yaml:"match"`
	Apply    ApplyConfig    `yaml:"apply"`
	Track    TrackConfig    `yaml:"track"`
	Exiftool ExiftoolConfig `yaml:"exiftool"`
}

// Tolerance returns the gap tolerance as a duration.
func (c *AppConfig) Tolerance() time.Duration {
	return time.Duration(c.Match.MaxGapToleranceMin) * time.Minute
}

// Location resolves the configured timezone for interpreting zoneless
// capture timestamps.
func (c *AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Apply.Timezone)
}

// ExiftoolTimeout returns the per-invocation exiftool timeout.
func (c *AppConfig) ExiftoolTimeout() time.Duration {
	return time.Duration(c.Exiftool.TimeoutSec) * time.Second
}
