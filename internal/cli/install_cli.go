package cli

import (
	"github.com/spf13/cobra"
	"github.com/zowe-tools/zedc/internal/harness"
)

func init() {
	rootCmd.AddCommand(installCLICmd)
}

var installCLICmd = &cobra.Command{
	Use:   "install-cli <version>",
	Short: "Install a private copy of Zowe CLI",
	Long: `Install the given Zowe CLI version with npm into ./node_modules.

The install directory is deleted and recreated first, so it only ever holds
the version installed by the last run. The version may be an exact version,
a semver range or an npm dist-tag.

Example:
  zedc install-cli 8.0.0
  zedc install-cli zowe-v2-lts`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h := harness.FromConfig(newReporter(cmd))
		return h.InstallCLI(cmd.Context(), args[0])
	},
}
