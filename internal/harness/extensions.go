package harness

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/zowe-tools/zedc/internal/process"
	"github.com/zowe-tools/zedc/internal/report"
	"github.com/zowe-tools/zedc/internal/vscode"
)

var (
	// ErrNoFiles is returned when there is nothing to install.
	ErrNoFiles = errors.New("no valid files provided; supported formats: .vsix, .tar.gz, .tgz")
	// ErrLaunch is returned when the editor could not be started.
	ErrLaunch = errors.New("could not launch VS Code")
)

// Launch describes the detached processes started by InstallFromPaths.
type Launch struct {
	Layout *vscode.Layout
	// Install is the extension install run; it may still be running.
	Install *process.Detached
	// Editor is the launched VS Code instance.
	Editor *process.Detached
}

// InstallFromPaths installs the extension archives with the VS Code CLI at
// vscBin, then launches VS Code on the sandbox next to the install with
// ZOWE_CLI_HOME pointing at the sandbox profile. Neither process is waited
// on. An empty file list fails before anything is spawned.
//
// The sandbox profile directory is left in place if the launch fails.
func (h *Harness) InstallFromPaths(ctx context.Context, vscBin string, files []string) (*Launch, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	layout, err := vscode.NewLayout(vscBin)
	if err != nil {
		return nil, err
	}

	report.Step(h.Reporter, report.IconWait, "Installing extensions...")
	install, err := h.Exec.Start(ctx, process.Command{
		Name:   vscBin,
		Args:   vscode.InstallArgs(files),
		Stderr: h.Reporter.Output(),
	})
	if err != nil {
		report.Failure(h.Reporter, fmt.Sprintf("Could not install extensions, error: %v", err))
		return nil, fmt.Errorf("installing extensions: %w", err)
	}

	if err := os.MkdirAll(layout.ConfigDir, 0755); err != nil {
		return nil, fmt.Errorf("creating sandbox profile %s: %w", layout.ConfigDir, err)
	}

	editor, err := h.Exec.Start(ctx, process.Command{
		Name: layout.Executable,
		Args: layout.LaunchArgs(),
		Env:  layout.LaunchEnv(),
	})
	if err != nil {
		report.Failure(h.Reporter, fmt.Sprintf("Could not launch VS Code, error: %v", err))
		return nil, fmt.Errorf("%w: %w", ErrLaunch, err)
	}

	report.Launched(h.Reporter, "Launched VS Code")
	return &Launch{Layout: layout, Install: install, Editor: editor}, nil
}
