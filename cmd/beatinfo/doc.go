// Package main hosts the beatinfo CLI entrypoint and command graph.
//
// The Cobra command tree inspects, creates, and normalizes the info.dat
// descriptor of song packages. Configuration resolution, logger setup, and
// store construction live in commandContext so subcommands only deal with
// songs and output.
package main
