// Package preflight checks that the directories beatinfo writes to are usable.
//
// The CLI "config validate" command runs RunAll and prints one line per
// check. A song root that does not exist yet is reported but not fatal: the
// store creates package directories on first save.
package preflight
