// Package config loads, normalizes, and validates sabhook configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts),
// reads TOML files, loads optional .env files, and honours environment
// fallbacks such as DISCORD_WEBHOOK_URL. SABnzbd runs notification scripts
// with a minimal environment, so the config file is the primary source and
// the environment only fills gaps.
//
// Always obtain settings through this package so downstream code receives
// trimmed values, canonical log formats, and clear validation errors.
package config
