package vscode

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
)

// Command-line flags and environment understood by the editor.
const (
	FlagInstallExtension = "--install-extension"
	FlagDisableUpdates   = "--disable-updates"
	EnvZoweCLIHome       = "ZOWE_CLI_HOME"
)

// Directory names inside the test area.
const (
	SandboxDir   = "sandbox"
	ZoweHomeDir  = ".zowe"
	macAppBundle = "Visual Studio Code.app"
)

// Layout is the set of paths derived from a VS Code CLI binary, e.g.
//
//	.vscode-test/vscode-linux-x64-1.90.0/bin/code   CLI
//	.vscode-test/vscode-linux-x64-1.90.0            InstallDir
//	.vscode-test/vscode-linux-x64-1.90.0/code       Executable
//	.vscode-test/sandbox                            SandboxDir
//	.vscode-test/sandbox/.zowe                      ConfigDir
type Layout struct {
	CLI        string
	InstallDir string
	Executable string
	SandboxDir string
	ConfigDir  string
}

// ExecutableName returns the editor executable path relative to the install
// directory for goos.
func ExecutableName(goos string) string {
	switch goos {
	case "windows":
		return "Code.exe"
	case "darwin":
		return filepath.Join(macAppBundle, "Contents", "MacOS", "Electron")
	default:
		return "code"
	}
}

// NewLayout derives the layout for the current platform.
func NewLayout(cliBin string) (*Layout, error) {
	return NewLayoutFor(cliBin, runtime.GOOS)
}

// NewLayoutFor derives the layout from cliBin for goos. cliBin is made
// absolute first so relative paths like "bin/code" still have parents.
func NewLayoutFor(cliBin, goos string) (*Layout, error) {
	if cliBin == "" {
		return nil, errors.New("vscode binary path must not be empty")
	}
	abs, err := filepath.Abs(cliBin)
	if err != nil {
		return nil, fmt.Errorf("resolving vscode binary %s: %w", cliBin, err)
	}

	installDir := filepath.Dir(filepath.Dir(abs))
	sandbox := filepath.Join(filepath.Dir(installDir), SandboxDir)
	return &Layout{
		CLI:        abs,
		InstallDir: installDir,
		Executable: filepath.Join(installDir, ExecutableName(goos)),
		SandboxDir: sandbox,
		ConfigDir:  filepath.Join(sandbox, ZoweHomeDir),
	}, nil
}

// InstallArgs returns one install flag per file, in order.
func InstallArgs(files []string) []string {
	args := make([]string, 0, 2*len(files))
	for _, f := range files {
		args = append(args, FlagInstallExtension, f)
	}
	return args
}

// LaunchArgs returns the arguments that open the sandbox with updates off.
func (l *Layout) LaunchArgs() []string {
	return []string{FlagDisableUpdates, l.SandboxDir}
}

// LaunchEnv returns the environment pointing Zowe at the sandbox profile.
func (l *Layout) LaunchEnv() map[string]string {
	return map[string]string{EnvZoweCLIHome: l.ConfigDir}
}
