// Package run provides the run subcommand, which executes one shell command
// and reports its combined output, exit code, and diagnostics.
package run
