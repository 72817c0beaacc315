// Package report separates user-facing progress output from the harness
// logic. Operations emit Entries to a Reporter; Console renders them as the
// familiar emoji-prefixed lines, Recorder keeps them in memory for tests.
package report
