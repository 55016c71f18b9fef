// internal/cli/record.go
package cli

import (
	"fmt"

	"github.com/arc-language/pyconfig/pkg/cmdr"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <file>",
	Short: "Record the interpreter's answers to a fixture",
	Long: `Run every query against the selected interpreter and save the answers,
so they can be replayed later with --fixture.

Examples:
  pyconfig record py311.yaml
  pyconfig record --python /opt/python/bin/python3.11 py311.yaml.xz
  pyconfig record --python python2 py2.yaml.zst`,
	Args: cobra.ExactArgs(1),
	RunE: runRecord,
}

func runRecord(cmd *cobra.Command, args []string) error {
	path := args[0]

	if config.Fixture != "" {
		return fmt.Errorf("cannot record while replaying fixture %s", config.Fixture)
	}

	py, err := resolve(config, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("resolving python: %w", err)
	}

	var rec *cmdr.Recorder
	py = py.Wrap(func(c cmdr.Commander) cmdr.Commander {
		rec = cmdr.NewRecorder(c)
		return rec
	})

	if _, err := py.Info(); err != nil {
		return fmt.Errorf("querying %s: %w", py.Program(), err)
	}

	f := &cmdr.Fixture{
		Program:   py.Program(),
		Host:      string(py.Host()),
		Responses: rec.Responses(),
	}
	if err := cmdr.SaveFixture(path, f); err != nil {
		return fmt.Errorf("saving fixture: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Recorded %d responses from %s to %s\n", len(f.Responses), py.Program(), path)
	return nil
}
