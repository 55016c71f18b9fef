// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "pyconfig version %s\n", toolVersion)
		fmt.Fprintln(out, "https://github.com/arc-language/pyconfig")

		py, err := resolve(config, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("resolving python: %w", err)
		}
		ver, err := py.SemanticVersion()
		if err != nil {
			return fmt.Errorf("querying python version: %w", err)
		}
		fmt.Fprintf(out, "%s: Python %s\n", py.Program(), ver)
		return nil
	},
}
