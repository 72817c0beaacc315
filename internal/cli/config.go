package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zowe-tools/zedc/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write zedc configuration stored at ~/.zedc/config.yaml.

Keys:
  npm.bin           npm executable (default: npm, npm.cmd on Windows)
  cli.package       package installed by install-cli (default: @zowe/cli)
  cli.install_dir   install prefix for install-cli (default: node_modules)
  vscode.bin        VS Code CLI binary used by test when --vsc-bin is not given
  log.level         debug, info, warn, error or off

Every key can also be set through the environment, e.g. ` + config.EnvVar(config.KeyVSCodeBin) + `.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
