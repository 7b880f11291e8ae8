// Package config loads, normalizes, and validates streetmatch configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the STREETMATCH_DATA_DIR
// environment fallback for the corpus location. The Config type centralizes
// every matching threshold, keep count and worker setting so the core
// matchers receive them explicitly instead of reading globals.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical algorithm names, and clear validation errors.
package config
