// internal/cli/flags.go
package cli

import (
	"github.com/arc-language/pyconfig"
	"github.com/spf13/cobra"
)

var flagsCmd = &cobra.Command{
	Use:   "flags [--prefix|--exec-prefix|--includes|--libs|--cflags|--ldflags|--extension-suffix|--help|--abiflags|--configdir]",
	Short: "Print values the way python3-config does",
	Long: `Print one line per option, in the order given, exactly as python3-config
would. Without options, or with an unknown one, the usage line is printed and
the command fails.`,
	DisableFlagParsing: true,
	RunE:               runFlags,
}

func runFlags(cmd *cobra.Command, args []string) error {
	c := &Compat{
		Program: cmd.CommandPath(),
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
		Extra:   cmd.InheritedFlags(),
		// Persistent flags are only seen by the compat parser here.
		AfterParse: func(c *Compat) {
			initConfig(cmd.ErrOrStderr())
			c.Policy = config.Usage
		},
		Resolve: func() (*pyconfig.PythonConfig, error) {
			return resolve(config, cmd.ErrOrStderr())
		},
	}

	if code := c.Run(args); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
