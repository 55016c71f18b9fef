// internal/cli/info.go
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/arc-language/pyconfig"
	"github.com/arc-language/pyconfig/pkg/env"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var infoFormat string

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show every configuration value of the interpreter",
	Long: `Display every value python3-config can report for the selected
interpreter, plus the libpython found through its linker flags.`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().StringVar(&infoFormat, "format", "yaml", "output format (yaml, text)")
}

// infoReport is pyconfig.Info plus what was found on disk
type infoReport struct {
	pyconfig.Info `yaml:",inline"`
	Library       string `yaml:"library,omitempty"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	if infoFormat != "yaml" && infoFormat != "text" {
		return fmt.Errorf("unknown format %q (want yaml or text)", infoFormat)
	}

	py, err := resolve(config, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("resolving python: %w", err)
	}

	info, err := py.Info()
	if err != nil {
		return fmt.Errorf("getting python info: %w", err)
	}
	report := &infoReport{Info: *info}

	// Replayed fixtures describe another machine; don't look for its files here.
	if config.Fixture == "" {
		if e, err := env.Discover(py); err == nil {
			if lib := e.FindPythonLibrary(); lib != nil {
				report.Library = lib.Path
			}
		}
	}

	if infoFormat == "text" {
		return writeInfoText(cmd.OutOrStdout(), report)
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}

func writeInfoText(w io.Writer, r *infoReport) error {
	rows := [][2]string{
		{"Program", r.Program},
		{"Version", r.Version},
		{"Prefix", r.Prefix},
		{"Exec prefix", r.ExecPrefix},
		{"ABI flags", r.AbiFlags},
		{"Includes", r.Includes},
		{"Include paths", strings.Join(r.IncludePaths, " ")},
		{"CFLAGS", r.CFlags},
		{"Libs", r.Libs},
		{"LDFLAGS", r.LdFlags},
		{"Extension suffix", r.ExtensionSuffix},
		{"Config dir", r.ConfigDir},
		{"Library", r.Library},
	}

	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-17s %s\n", row[0]+":", row[1]); err != nil {
			return err
		}
	}
	return nil
}
