package harness

import (
	"github.com/zowe-tools/zedc/internal/config"
	"github.com/zowe-tools/zedc/internal/npm"
	"github.com/zowe-tools/zedc/internal/process"
	"github.com/zowe-tools/zedc/internal/report"
)

// Harness holds the collaborators shared by the operations.
type Harness struct {
	Exec     process.Executor
	Reporter report.Reporter

	// NpmBin is the package manager executable.
	NpmBin string
	// CLIPackage is the npm package installed by InstallCLI.
	CLIPackage string
	// InstallDir is the prefix directory for InstallCLI, relative to the
	// working directory unless absolute.
	InstallDir string
}

// New returns a Harness with the OS executor and default settings.
func New(r report.Reporter) *Harness {
	if r == nil {
		r = report.Discard
	}
	return &Harness{
		Exec:       &process.OS{},
		Reporter:   r,
		NpmBin:     npm.Binary(),
		CLIPackage: config.DefaultCLIPackage,
		InstallDir: config.DefaultCLIInstallDir,
	}
}

// FromConfig returns a Harness whose settings come from the loaded config,
// falling back to the defaults of New for unset keys.
func FromConfig(r report.Reporter) *Harness {
	h := New(r)
	if v := config.Get(config.KeyNpmBin); v != "" {
		h.NpmBin = v
	}
	if v := config.Get(config.KeyCLIPackage); v != "" {
		h.CLIPackage = v
	}
	if v := config.Get(config.KeyCLIInstallDir); v != "" {
		h.InstallDir = v
	}
	return h
}
