// Package npm builds npm invocations: the platform binary name, package
// specifiers with validated versions, and the argument list for an isolated
// global install under a prefix directory.
package npm
