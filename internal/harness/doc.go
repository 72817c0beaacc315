// Package harness implements the filesystem and process steps behind the
// test commands: installing a private copy of Zowe CLI with npm, installing
// extension archives into a VS Code test instance and launching it against
// a sandbox, and resolving the archive paths given on the command line.
//
// Every operation reports progress through a report.Reporter and spawns
// programs through a process.Executor, so both can be replaced in tests.
package harness
