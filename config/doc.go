// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct
// tags. Every field has a built-in default, so running without a
// config file is fine; CLI flags override their config counterparts.
package config
