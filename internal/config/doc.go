// Package config loads, normalizes, and validates Ladle configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// LADLE_CATALOG. The Config type centralizes every knob the CLI and core
// packages need, so the catalog asset, data directory, and category set are
// discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
