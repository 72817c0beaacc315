// Package cli defines the Cobra command tree for the zedc CLI. Each file
// registers one top-level command with the root command. Commands only parse
// flags and arguments, then delegate to package harness; progress is printed
// through a report.Console on the command's output stream.
package cli
