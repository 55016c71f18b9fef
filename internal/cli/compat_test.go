package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/arc-language/pyconfig"
	"github.com/arc-language/pyconfig/pkg/core"
	"github.com/spf13/pflag"
)

// fakePython answers query scripts by what they print
type fakePython struct {
	version string
}

func (f fakePython) Command(arg string) (string, error) {
	return f.Commands(arg)
}

func (f fakePython) Commands(args ...string) (string, error) {
	if len(args) == 1 && args[0] == "--version" {
		return "Python " + f.version, nil
	}
	if len(args) != 2 || args[0] != "-c" {
		return "", errors.New("unexpected command")
	}

	s := args[1]
	switch {
	case strings.Contains(s, "print(getvar('prefix'))"):
		return "/usr", nil
	case strings.Contains(s, "print(getvar('exec_prefix'))"):
		return "/usr/exec", nil
	case strings.Contains(s, "print(sys.abiflags)"):
		return "m", nil
	case strings.Contains(s, "LINKFORSHARED"):
		return "-L/usr/lib -lpython3.7m -ldl", nil
	case strings.Contains(s, "'-lpython'"):
		return "-lpython3.7m -ldl", nil
	case strings.Contains(s, "CFLAGS"):
		return "-I/usr/include/python3.7m -O2", nil
	case strings.Contains(s, "print(sysconfig.get_path('include'))"):
		return "/usr/include/python3.7m\n/usr/include/python3.7m", nil
	case strings.Contains(s, "print(' '.join(flags))"):
		return "-I/usr/include/python3.7m -I/usr/include/python3.7m", nil
	case strings.Contains(s, "EXT_SUFFIX"):
		return ".cpython-37m-x86_64-linux-gnu.so", nil
	case strings.Contains(s, "print(getvar('LIBPL'))"):
		return "/usr/lib/python3.7/config", nil
	}
	return "", errors.New("unexpected script")
}

type compatRun struct {
	code     int
	stdout   string
	stderr   string
	resolved bool
}

func runCompat(t *testing.T, policy core.UsagePolicy, version pyconfig.Version, args ...string) compatRun {
	t.Helper()

	var stdout, stderr bytes.Buffer
	var run compatRun

	c := &Compat{
		Program: "python3-config",
		Policy:  policy,
		Stdout:  &stdout,
		Stderr:  &stderr,
		Resolve: func() (*pyconfig.PythonConfig, error) {
			run.resolved = true
			ver := "3.7.2"
			if version == pyconfig.Two {
				ver = "2.7.18"
			}
			return pyconfig.WithCommander(version, "python", fakePython{version: ver}), nil
		},
	}

	run.code = c.Run(args)
	run.stdout = stdout.String()
	run.stderr = stderr.String()
	return run
}

const wantUsage = "Usage: python3-config [--prefix|--exec-prefix|--includes|--libs|--cflags|--ldflags|--extension-suffix|--help|--abiflags|--configdir]\n"

func TestUsageLine(t *testing.T) {
	if got := Usage("python3-config") + "\n"; got != wantUsage {
		t.Errorf("Usage() = %q", got)
	}
}

func TestCompatUsageFailures(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"no flags", nil},
		{"unknown flag", []string{"--bogus"}},
		{"unknown after known", []string{"--prefix", "--bogus"}},
		{"positional", []string{"prefix"}},
		{"short help", []string{"-h"}},
		{"terminator only", []string{"--"}},
		{"trailing terminator", []string{"--prefix", "--"}},
		{"bool value false", []string{"--prefix=false"}},
		{"bool value true", []string{"--prefix=true"}},
		{"help with value", []string{"--help=false", "--prefix"}},
		{"single dash", []string{"-prefix"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run := runCompat(t, core.Python3Policy(), pyconfig.Three, tc.args...)
			if run.code != 1 {
				t.Errorf("exit code = %d, want 1", run.code)
			}
			if run.stderr != wantUsage {
				t.Errorf("stderr = %q", run.stderr)
			}
			if run.stdout != "" {
				t.Errorf("stdout = %q, want nothing", run.stdout)
			}
			if run.resolved {
				t.Error("interpreter should not be resolved for a usage error")
			}
		})
	}
}

func TestCheckCompatArgsExtraFlags(t *testing.T) {
	extra := pflag.NewFlagSet("extra", pflag.ContinueOnError)
	extra.String("fixture", "", "")
	extra.Bool("debug", false, "")

	compat := make(map[string]compatFlag)
	for _, f := range compatFlags {
		compat[f.name] = f
	}

	testCases := []struct {
		name string
		args []string
		ok   bool
	}{
		{"separate value", []string{"--fixture", "py.yaml", "--prefix"}, true},
		{"inline value", []string{"--fixture=py.yaml", "--prefix"}, true},
		{"bool extra", []string{"--debug", "--prefix"}, true},
		{"compat with value", []string{"--debug", "--prefix=true"}, false},
		{"unknown", []string{"--fixtures", "py.yaml"}, false},
		{"trailing terminator", []string{"--debug", "--"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkCompatArgs(tc.args, compat, extra)
			if (err == nil) != tc.ok {
				t.Errorf("checkCompatArgs(%q) = %v, want ok=%v", tc.args, err, tc.ok)
			}
		})
	}
}

func TestCompatHelp(t *testing.T) {
	testCases := []struct {
		name   string
		policy core.UsagePolicy
		code   int
	}{
		{"python3", core.Python3Policy(), 0},
		{"legacy", core.LegacyPolicy(), 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run := runCompat(t, tc.policy, pyconfig.Three, "--prefix", "--help")
			if run.code != tc.code {
				t.Errorf("exit code = %d, want %d", run.code, tc.code)
			}
			if run.stderr != wantUsage || run.stdout != "" {
				t.Errorf("stdout = %q, stderr = %q", run.stdout, run.stderr)
			}
			if run.resolved {
				t.Error("--help should not resolve the interpreter")
			}
		})
	}
}

func TestCompatUsageOnStdout(t *testing.T) {
	policy := core.UsagePolicy{Stream: core.StreamStdout, FailureCode: 2, HelpCode: 0}
	run := runCompat(t, policy, pyconfig.Three)
	if run.code != 2 || run.stdout != wantUsage || run.stderr != "" {
		t.Errorf("got %+v", run)
	}
}

func TestCompatOutputOrder(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{"prefix includes", []string{"--prefix", "--includes"},
			"/usr\n-I/usr/include/python3.7m -I/usr/include/python3.7m\n"},
		{"includes prefix", []string{"--includes", "--prefix"},
			"-I/usr/include/python3.7m -I/usr/include/python3.7m\n/usr\n"},
		{"repeated", []string{"--prefix", "--exec-prefix", "--prefix"},
			"/usr\n/usr/exec\n/usr\n"},
		{"link", []string{"--libs", "--ldflags"},
			"-lpython3.7m -ldl\n-L/usr/lib -lpython3.7m -ldl\n"},
		{"python3 only", []string{"--abiflags", "--extension-suffix", "--configdir"},
			"m\n.cpython-37m-x86_64-linux-gnu.so\n/usr/lib/python3.7/config\n"},
		{"cflags", []string{"--cflags"}, "-I/usr/include/python3.7m -O2\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run := runCompat(t, core.Python3Policy(), pyconfig.Three, tc.args...)
			if run.code != 0 {
				t.Fatalf("exit code = %d, stderr = %q", run.code, run.stderr)
			}
			if run.stdout != tc.want {
				t.Errorf("stdout = %q, want %q", run.stdout, tc.want)
			}
		})
	}
}

func TestCompatAccessorErrorAborts(t *testing.T) {
	run := runCompat(t, core.Python3Policy(), pyconfig.Two, "--prefix", "--abiflags", "--exec-prefix")
	if run.code != 1 {
		t.Errorf("exit code = %d, want 1", run.code)
	}
	if run.stdout != "/usr\n" {
		t.Errorf("stdout = %q, want only the prefix", run.stdout)
	}
	if !strings.HasPrefix(run.stderr, "Error: ") {
		t.Errorf("stderr = %q", run.stderr)
	}
}

func TestCompatResolveError(t *testing.T) {
	var stderr bytes.Buffer
	c := &Compat{
		Program: "python3-config",
		Policy:  core.Python3Policy(),
		Stdout:  &bytes.Buffer{},
		Stderr:  &stderr,
		Resolve: func() (*pyconfig.PythonConfig, error) {
			return nil, pyconfig.ErrProcessLaunch
		},
	}
	if code := c.Run([]string{"--prefix"}); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.HasPrefix(stderr.String(), "Error: ") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
