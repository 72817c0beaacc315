package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zowe-tools/zedc/internal/config"
	"github.com/zowe-tools/zedc/internal/harness"
	"github.com/zowe-tools/zedc/internal/plan"
	"github.com/zowe-tools/zedc/internal/vscode"
)

var doctorPlan string

func init() {
	doctorCmd.Flags().StringVar(&doctorPlan, "check-plan", "", "Validate a test plan file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local test setup",
	Long:  `Check that npm and the configured VS Code test instance are usable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if doctorPlan != "" {
			return runPlanCheck(out, doctorPlan)
		}

		h := harness.FromConfig(nil)
		npmOK := checkNpm(out, h.NpmBin)
		checkCLIInstall(out, h.InstallDir, h.CLIPackage)
		vscodeOK := checkVSCode(out, config.Get(config.KeyVSCodeBin))
		if !npmOK || !vscodeOK {
			return fmt.Errorf("doctor found problems")
		}
		return nil
	},
}

func checkNpm(out io.Writer, bin string) bool {
	fmt.Fprintln(out, "Package manager:")
	path, err := exec.LookPath(bin)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %s not found: %v\n", bin, err)
		return false
	}
	fmt.Fprintf(out, "  [ OK ] %s\n", path)
	return true
}

func checkCLIInstall(out io.Writer, installDir, pkg string) {
	fmt.Fprintln(out, "Zowe CLI:")
	pkgDir := filepath.Join(installDir, "lib", "node_modules", filepath.FromSlash(pkg))
	if _, err := os.Stat(pkgDir); err != nil {
		fmt.Fprintf(out, "  [WARN] %s not installed in %s (run `zedc install-cli <version>`)\n", pkg, installDir)
		return
	}
	fmt.Fprintf(out, "  [ OK ] %s\n", pkgDir)
}

func checkVSCode(out io.Writer, bin string) bool {
	fmt.Fprintln(out, "VS Code:")
	if bin == "" {
		fmt.Fprintf(out, "  [WARN] %s not set; pass --vsc-bin to test\n", config.KeyVSCodeBin)
		return true
	}

	layout, err := vscode.NewLayout(bin)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return false
	}

	ok := true
	for _, p := range []struct{ label, path string }{
		{"CLI", layout.CLI},
		{"executable", layout.Executable},
	} {
		if _, err := os.Stat(p.path); err != nil {
			fmt.Fprintf(out, "  [FAIL] %s missing: %s\n", p.label, p.path)
			ok = false
			continue
		}
		fmt.Fprintf(out, "  [ OK ] %s: %s\n", p.label, p.path)
	}
	fmt.Fprintf(out, "  sandbox: %s\n", layout.SandboxDir)
	return ok
}

func runPlanCheck(out io.Writer, path string) error {
	fmt.Fprintf(out, "Plan validation: %s\n", path)

	p, err := plan.Load(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("plan validation failed: %w", err)
	}

	fmt.Fprintf(out, "  [ OK ] Valid plan: %d file(s)\n", len(p.Files))
	for _, f := range p.ResolvedFiles() {
		if !harness.IsArchive(f) {
			fmt.Fprintf(out, "  [WARN] %s: invalid extension\n", f)
		}
	}
	return nil
}
