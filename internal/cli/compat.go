// internal/cli/compat.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arc-language/pyconfig"
	"github.com/arc-language/pyconfig/pkg/core"
	"github.com/spf13/pflag"
)

// compatFlag is one python3-config option and the accessor it prints
type compatFlag struct {
	name  string
	query func(*pyconfig.PythonConfig) (string, error)
}

// compatFlags in usage order. help has no accessor.
var compatFlags = []compatFlag{
	{"prefix", (*pyconfig.PythonConfig).Prefix},
	{"exec-prefix", (*pyconfig.PythonConfig).ExecPrefix},
	{"includes", (*pyconfig.PythonConfig).Includes},
	{"libs", (*pyconfig.PythonConfig).Libs},
	{"cflags", (*pyconfig.PythonConfig).CFlags},
	{"ldflags", (*pyconfig.PythonConfig).LdFlags},
	{"extension-suffix", (*pyconfig.PythonConfig).ExtensionSuffix},
	{"help", nil},
	{"abiflags", (*pyconfig.PythonConfig).AbiFlags},
	{"configdir", (*pyconfig.PythonConfig).ConfigDir},
}

// Compat runs the python3-config command line
type Compat struct {
	Program string           // argv[0], shown in the usage line
	Policy  core.UsagePolicy // usage stream and exit codes
	Stdout  io.Writer
	Stderr  io.Writer

	// Extra flags are accepted and set, but print nothing
	Extra *pflag.FlagSet

	// AfterParse, if set, runs once the arguments are parsed and before
	// anything is printed
	AfterParse func(c *Compat)

	// Resolve is called once the arguments are known to be valid
	Resolve func() (*pyconfig.PythonConfig, error)
}

// Usage returns the usage line for program
func Usage(program string) string {
	names := make([]string, len(compatFlags))
	for i, f := range compatFlags {
		names[i] = "--" + f.name
	}
	return fmt.Sprintf("Usage: %s [%s]", program, strings.Join(names, "|"))
}

// Run handles args and returns the process exit code
func (c *Compat) Run(args []string) int {
	requested, err := parseCompatArgs(c.Program, args, c.Extra)
	if c.AfterParse != nil {
		c.AfterParse(c)
	}
	if err != nil || len(requested) == 0 {
		return c.usage(c.Policy.FailureCode)
	}

	for _, f := range requested {
		if f.query == nil {
			return c.usage(c.Policy.HelpCode)
		}
	}

	py, err := c.Resolve()
	if err != nil {
		fmt.Fprintf(c.Stderr, "Error: %v\n", err)
		return 1
	}

	for _, f := range requested {
		out, err := f.query(py)
		if err != nil {
			fmt.Fprintf(c.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintln(c.Stdout, out)
	}

	return 0
}

func (c *Compat) usage(code int) int {
	w := c.Stderr
	if c.Policy.Stream == core.StreamStdout {
		w = c.Stdout
	}
	fmt.Fprintln(w, Usage(c.Program))
	return code
}

var errPositional = errors.New("unexpected argument")

// parseCompatArgs returns the requested flags in command-line order,
// repeats included
func parseCompatArgs(program string, args []string, extra *pflag.FlagSet) ([]compatFlag, error) {
	byName := make(map[string]compatFlag, len(compatFlags))
	for _, f := range compatFlags {
		byName[f.name] = f
	}
	if err := checkCompatArgs(args, byName, extra); err != nil {
		return nil, err
	}

	fs := pflag.NewFlagSet(program, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	if extra != nil {
		fs.AddFlagSet(extra)
	}
	for _, f := range compatFlags {
		fs.Bool(f.name, false, "")
	}

	var requested []compatFlag
	err := fs.ParseAll(args, func(flag *pflag.Flag, value string) error {
		f, ok := byName[flag.Name]
		if !ok {
			return fs.Set(flag.Name, value)
		}
		requested = append(requested, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %s", errPositional, fs.Arg(0))
	}
	return requested, nil
}

// checkCompatArgs accepts compat flags only in their exact "--name" form.
// Extra flags may be written "--name value" or "--name=value".
func checkCompatArgs(args []string, compat map[string]compatFlag, extra *pflag.FlagSet) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, ok := strings.CutPrefix(arg, "--")
		if !ok || name == "" {
			return fmt.Errorf("%w: %s", errPositional, arg)
		}
		if _, ok := compat[name]; ok {
			continue
		}

		name, _, hasValue := strings.Cut(name, "=")
		var flag *pflag.Flag
		if extra != nil {
			flag = extra.Lookup(name)
		}
		if flag == nil {
			return fmt.Errorf("unknown flag: %s", arg)
		}
		if !hasValue && flag.NoOptDefVal == "" {
			i++ // value is the next argument
		}
	}
	return nil
}

// RunCompat is the entry point of the python3-config style binaries.
// policy is the default usage policy; the config file may override it.
func RunCompat(program string, args []string, policy core.UsagePolicy) int {
	base := core.DefaultConfig()
	base.Usage = policy

	cfg, err := core.LoadConfigWith("", base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = base
	}
	cfg.ApplyEnv(os.Getenv)

	c := &Compat{
		Program: program,
		Policy:  cfg.Usage,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Resolve: func() (*pyconfig.PythonConfig, error) {
			return resolve(cfg, os.Stderr)
		},
	}
	return c.Run(args)
}
