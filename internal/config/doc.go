// Package config loads and validates the TOML configuration file.
//
// Configuration is optional: when no file exists at the default location
// (~/.config/trackinator/config.toml or a project-local trackinator.toml),
// repository defaults are used. All path fields are expanded and normalized
// before validation.
package config
