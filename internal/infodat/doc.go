// Package infodat reads and writes info.dat, the descriptor at the root of
// every level package.
//
// Reading is tolerant. Input may carry a byte order mark, comments, or
// trailing commas; unknown keys are skipped and wrong-typed values fall back
// to zero values. Only a missing file (ErrNotFound) or text that is not a
// JSON object (ErrCorrupt) stops a load.
//
// Writing is strict about shape. Fields are emitted in a fixed order, and
// optional customData entries that are blank or still at their defaults are
// pruned, because downstream validators reject them. The pruning rules live
// in sanitize.go and are idempotent: a write, read, write cycle produces
// identical bytes.
//
// # Entry Points
//
// Decode / Encode: convert between a parsed document and *song.Song.
// Render: Encode plus pretty printing with a two-space indent.
// Store: directory-level Load, Save, and LoadDifficultyContent with logging,
// per-package write locking, and atomic replacement of info.dat.
package infodat
