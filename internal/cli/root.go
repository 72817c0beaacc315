package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zowe-tools/zedc/internal/branding"
	"github.com/zowe-tools/zedc/internal/config"
	"github.com/zowe-tools/zedc/internal/logging"
	"github.com/zowe-tools/zedc/internal/report"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log spawned commands and other debug detail to stderr")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` installs Zowe CLI and extension archives into a VS Code test
instance, then launches it against an isolated sandbox profile.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		level := config.Get(config.KeyLogLevel)
		if verbose {
			level = "debug"
		}
		logging.Init(level)
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// newReporter prints progress to the command's output stream.
func newReporter(cmd *cobra.Command) report.Reporter {
	return report.NewConsole(cmd.OutOrStdout())
}
