// Package vscode knows the on-disk layout of a downloaded VS Code test
// instance: where the CLI script sits, where the Electron executable lives,
// and where the sandbox workspace used for isolated test runs goes.
package vscode
