// Package process runs external programs for the harness. It offers two
// modes: Run blocks until the program exits, Start spawns a detached child
// and returns immediately. Detached children are reaped in the background,
// so callers may ignore them entirely or observe completion through Done.
package process
