// Package config loads, normalizes, and validates beatinfo configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment fallbacks such as BEATINFO_SONGS_DIR.
// The release and work-in-progress song roots are exposed through
// ReleaseRoot and WorkInProgressRoot so the descriptor store can derive a
// package directory for songs that have never been saved.
package config
