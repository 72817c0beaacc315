package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zowe-tools/zedc/internal/config"
	"github.com/zowe-tools/zedc/internal/harness"
	"github.com/zowe-tools/zedc/internal/plan"
)

var (
	testVSCodeBin  string
	testCLIVersion string
	testPlanFile   string
)

func init() {
	testCmd.Flags().StringVar(&testVSCodeBin, "vsc-bin", "", "Path to the VS Code CLI binary (…/bin/code)")
	testCmd.Flags().StringVar(&testCLIVersion, "cli-version", "", "Install this Zowe CLI version first")
	testCmd.Flags().StringVar(&testPlanFile, "plan", "", "Test plan file (default: ./"+plan.DefaultFile+" if present)")
	rootCmd.AddCommand(testCmd)
}

var testCmd = &cobra.Command{
	Use:   "test [file]...",
	Short: "Install extension archives into VS Code and launch it",
	Long: `Install .vsix/.tgz extension archives into a VS Code test instance and launch
it against a sandbox directory next to the install, with ZOWE_CLI_HOME set to
the sandbox profile.

Files and settings not given on the command line are taken from the test
plan (zedc.yaml), then from the user config.

Example:
  zedc test dist/zowe-explorer.vsix --vsc-bin .vscode-test/vscode-linux-x64-1.90.0/bin/code
  zedc test --plan ci/zedc.yaml --cli-version 8.0.0`,
	RunE: runTest,
}

// testInputs is the merged view of flags, plan and config.
type testInputs struct {
	Files      []string
	VSCodeBin  string
	CLIVersion string
}

func runTest(cmd *cobra.Command, args []string) error {
	p, err := loadPlan(testPlanFile)
	if err != nil {
		return err
	}
	in := mergeTestInputs(args, testVSCodeBin, testCLIVersion, p, config.Get(config.KeyVSCodeBin))
	if in.VSCodeBin == "" {
		return fmt.Errorf("no VS Code binary: pass --vsc-bin, set vscode_bin in %s, set %s or run `%s config set %s <path>`",
			plan.DefaultFile, config.EnvVar(config.KeyVSCodeBin), rootCmd.Name(), config.KeyVSCodeBin)
	}

	h := harness.FromConfig(newReporter(cmd))
	if in.CLIVersion != "" {
		if err := h.InstallCLI(cmd.Context(), in.CLIVersion); err != nil {
			return err
		}
	}

	files := h.ResolvePaths(in.Files)
	if _, err := h.InstallFromPaths(cmd.Context(), in.VSCodeBin, files); err != nil {
		return err
	}
	return nil
}

func loadPlan(path string) (*plan.Plan, error) {
	if path != "" {
		return plan.Load(path)
	}
	return plan.LoadIfExists(plan.DefaultFile)
}

// mergeTestInputs prefers command-line values, then the plan, then config.
func mergeTestInputs(args []string, vscBin, cliVersion string, p *plan.Plan, configBin string) testInputs {
	in := testInputs{Files: args, VSCodeBin: vscBin, CLIVersion: cliVersion}
	if p != nil {
		if len(in.Files) == 0 {
			in.Files = p.ResolvedFiles()
		}
		if in.VSCodeBin == "" {
			in.VSCodeBin = p.ResolvedVSCodeBin()
		}
		if in.CLIVersion == "" {
			in.CLIVersion = p.CLIVersion
		}
	}
	if in.VSCodeBin == "" {
		in.VSCodeBin = configBin
	}
	return in
}
