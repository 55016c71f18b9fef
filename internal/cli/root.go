// internal/cli/root.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arc-language/pyconfig/pkg/core"
	"github.com/spf13/cobra"
)

// toolVersion is the pyconfig tool version
const toolVersion = "0.1.0"

var (
	cfgFile string
	python  string
	fixture string
	debug   bool
	config  *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pyconfig",
	Short: "Python build configuration",
	Long: `pyconfig - Python build configuration

Reports the prefix, include paths and compiler/linker flags of a Python
installation, the way python3-config does, and can record an interpreter's
answers to a fixture for replay on another machine.`,
	Version:       toolVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExitError asks the process to exit with Code without printing anything
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode reports the code carried by an *ExitError
func ExitCode(err error) (int, bool) {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code, true
	}
	return 0, false
}

func init() {
	rootCmd.PersistentPreRun = loadConfig

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pyconfig/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&python, "python", "", "python interpreter name or path")
	rootCmd.PersistentFlags().StringVar(&fixture, "fixture", "", "replay a recorded fixture instead of running python")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(flagsCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(interpretersCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig runs before every command. Commands that parse their own flags
// call initConfig themselves once --config is known.
func loadConfig(cmd *cobra.Command, args []string) {
	if cmd.DisableFlagParsing {
		return
	}
	initConfig(cmd.ErrOrStderr())
}

func initConfig(errOut io.Writer) {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}
	config.ApplyEnv(os.Getenv)

	// Override config with flags
	if python != "" {
		config.Python = python
	}
	if fixture != "" {
		config.Fixture = fixture
	}
	if debug {
		config.Debug = true
	}
}
