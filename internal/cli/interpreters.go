// internal/cli/interpreters.go
package cli

import (
	"fmt"

	"github.com/arc-language/pyconfig/pkg/platform"
	"github.com/spf13/cobra"
)

var interpretersCmd = &cobra.Command{
	Use:   "interpreters",
	Short: "List python interpreters on PATH",
	Long:  `List the Python interpreters found on PATH and the one pyconfig prefers.`,
	Args:  cobra.NoArgs,
	RunE:  runInterpreters,
}

func runInterpreters(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Detect platform
	plat, err := platform.Detect()
	if err != nil {
		return fmt.Errorf("detecting platform: %w", err)
	}

	fmt.Fprintf(out, "Platform: %s/%s\n\n", plat.OS, plat.Arch)
	fmt.Fprintf(out, "Available interpreters:\n")
	for _, in := range plat.Available {
		marker := " "
		if in.Name == plat.Preferred {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %-8s %s\n", marker, in.Name, in.Path)
	}

	fmt.Fprintf(out, "\n* = preferred interpreter\n")
	if config.Python != "" {
		fmt.Fprintf(out, "Configured interpreter: %s\n", config.Python)
	}

	return nil
}
