package harness

import (
	"context"
	"fmt"
	"os"

	"github.com/zowe-tools/zedc/internal/npm"
	"github.com/zowe-tools/zedc/internal/process"
	"github.com/zowe-tools/zedc/internal/report"
)

// InstallCLI installs the given Zowe CLI version into a freshly recreated
// InstallDir. An invalid version fails before the directory is touched.
func (h *Harness) InstallCLI(ctx context.Context, version string) error {
	spec, err := npm.PackageSpec(h.CLIPackage, version)
	if err != nil {
		report.Failure(h.Reporter, fmt.Sprintf("Could not install Zowe CLI, error: %v", err))
		return err
	}

	if err := resetDir(h.InstallDir); err != nil {
		report.Failure(h.Reporter, fmt.Sprintf("Could not install Zowe CLI, error: %v", err))
		return err
	}

	out := h.Reporter.Output()
	err = h.Exec.Run(ctx, process.Command{
		Name:   h.NpmBin,
		Args:   npm.GlobalInstallArgs(h.InstallDir, spec),
		Stdout: out,
		Stderr: out,
	})
	if err != nil {
		report.Failure(h.Reporter, fmt.Sprintf("Could not install Zowe CLI, error: %v", err))
		return fmt.Errorf("installing %s: %w", spec, err)
	}

	report.Success(h.Reporter, "Installed Zowe CLI")
	return nil
}

// resetDir removes dir if present and creates it again, empty.
func resetDir(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", dir, err)
	}
	if err := os.Mkdir(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}
