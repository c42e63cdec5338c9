// Package config loads, normalizes, and validates gstsort configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and clamps out-of-range values such as the
// client folder length cap. The Config type centralizes every knob the CLI
// needs: scan and target roots, the processing mode, folder naming toggles,
// run-history storage, and log output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, a canonical processing mode, and clear validation errors.
package config
