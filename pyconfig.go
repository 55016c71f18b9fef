// pyconfig.go

// Package pyconfig finds information about an installed Python distribution,
// just like the python[3]-config script that ships with it.
//
// It works directly with the Python interpreter, so it also works where no
// python-config script is installed. Use it from build tooling that needs
//
//   - the location of the Python library
//   - the include directories for Python headers
//   - compiler and linker flags
//   - the ABI flags and extension module suffix
//
// Python 3 is the default. Python 2 is reachable through NewVersion or by
// pointing FromInterpreter at a Python 2 binary; queries that only exist in
// Python 3 then fail with ErrVersionMismatch without running anything.
package pyconfig

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arc-language/pyconfig/pkg/cmdr"
	"github.com/arc-language/pyconfig/pkg/script"
)

// Version is the major Python version a handle targets
type Version int

const (
	// Two is Python 2
	Two Version = 2
	// Three is Python 3
	Three Version = 3
)

func (v Version) String() string {
	switch v {
	case Two:
		return "2"
	case Three:
		return "3"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// ParseVersion accepts "2" or "3" (optionally prefixed with "python").
func ParseVersion(s string) (Version, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "python") {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	default:
		return 0, fmt.Errorf("unsupported python version %q (want 2 or 3)", s)
	}
}

// Default interpreter names per version
const (
	DefaultPython3 = "python3"
	DefaultPython2 = "python2"
)

// PythonConfig exposes Python distribution information.
//
// A PythonConfig is immutable and holds no process state: every query spawns
// a fresh interpreter. It is safe for concurrent use.
type PythonConfig struct {
	program string
	version Version
	cmdr    cmdr.Commander
	host    script.Target
}

// New returns a handle on the system Python 3.
func New() *PythonConfig {
	return NewVersion(Three)
}

// NewVersion returns a handle on the system interpreter for version:
// python3 for Three, python2 for Two. No process is started.
func NewVersion(version Version) *PythonConfig {
	if version == Two {
		return WithCommander(Two, DefaultPython2, cmdr.NewSysCommand(DefaultPython2))
	}
	return WithCommander(Three, DefaultPython3, cmdr.NewSysCommand(DefaultPython3))
}

// FromInterpreter returns a handle on the interpreter at path. The version is
// detected by running `path --version`: a major version of 2 selects Two,
// anything else Three.
//
// Only stdout is read. Python 2 and 3.0 to 3.3 print their version to
// stderr, so on those interpreters this fails with ErrParse; use NewVersion
// or a recorded fixture to get a Two handle.
func FromInterpreter(path string) (*PythonConfig, error) {
	if !utf8.ValidString(path) {
		return nil, opError("interpreter", fmt.Errorf("%w: %q", ErrPathEncoding, path))
	}
	return FromCommander(path, cmdr.NewSysCommand(path))
}

// FromCommander is FromInterpreter with an explicit Commander, e.g. a
// replayed fixture.
func FromCommander(program string, c cmdr.Commander) (*PythonConfig, error) {
	py := WithCommander(Three, program, c)

	ver, err := py.SemanticVersion()
	if err != nil {
		return nil, err
	}
	if ver.Major() == 2 {
		py.version = Two
	}
	return py, nil
}

// WithCommander builds a handle from its parts without any I/O.
func WithCommander(version Version, program string, c cmdr.Commander) *PythonConfig {
	return &PythonConfig{
		program: program,
		version: version,
		cmdr:    c,
		host:    script.Host(),
	}
}

// Program returns the interpreter name or path the handle runs.
func (py *PythonConfig) Program() string {
	return py.program
}

// Version returns the Python version the handle targets.
func (py *PythonConfig) Version() Version {
	return py.version
}

// Host returns the platform the query scripts are built for.
func (py *PythonConfig) Host() script.Target {
	return py.host
}

// ForHost returns a copy of py whose query scripts are built for host. A
// replayed fixture must be queried with the host it was recorded on.
func (py *PythonConfig) ForHost(host script.Target) *PythonConfig {
	cp := *py
	cp.host = host
	return &cp
}

// Wrap returns a copy of py whose commands go through wrap(c), where c is the
// current Commander.
func (py *PythonConfig) Wrap(wrap func(cmdr.Commander) cmdr.Commander) *PythonConfig {
	cp := *py
	cp.cmdr = wrap(py.cmdr)
	return &cp
}

// requireThree fails op without any I/O unless the handle is Python 3
func (py *PythonConfig) requireThree(op string) error {
	if py.version != Three {
		return opError(op, fmt.Errorf("%w (handle is Python %s)", ErrVersionMismatch, py.version))
	}
	return nil
}

// runScript evaluates the query lines, after the prelude, inside the interpreter
func (py *PythonConfig) runScript(op string, lines ...script.Line) (string, error) {
	out, err := py.cmdr.Commands("-c", script.BuildFor(py.host, lines...))
	if err != nil {
		return "", opError(op, err)
	}
	return out, nil
}
