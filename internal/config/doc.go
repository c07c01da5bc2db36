// Package config loads, normalizes, and validates talknotes configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), and
// reads an optional TOML file. A missing file is not an error: every setting
// has a usable default, so the tool works with no configuration at all.
//
// Always obtain settings through this package so downstream code receives
// trimmed values, canonical log formats, and clear validation errors.
package config
