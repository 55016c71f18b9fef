// internal/cli/config.go
package cli

import (
	"fmt"

	"github.com/arc-language/pyconfig/pkg/core"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration after the config file, PYCONFIG_* environment
variables and flags are applied. With --write it is saved to the config file
instead (TOML when the path ends in .toml).`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configWrite, "write", false, "save the effective configuration to the config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configWrite {
		path := cfgFile
		if path == "" {
			path = core.DefaultPath()
		}
		if err := core.SaveConfig(config, path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
		return nil
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(config); err != nil {
		return err
	}
	return enc.Close()
}
