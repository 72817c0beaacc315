package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zowe-tools/zedc/internal/harness"
	"github.com/zowe-tools/zedc/internal/report"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <file>...",
	Short: "Resolve extension archives to absolute paths",
	Long: `Resolve each file to its absolute, symlink-free path and keep it only if it
is a .vsix, .tgz or .gz archive. Progress goes to stderr and the accepted
paths are printed to stdout, one per line.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h := harness.FromConfig(report.NewConsole(cmd.ErrOrStderr()))
		for _, p := range h.ResolvePaths(args) {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}
