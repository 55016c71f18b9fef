// pkg/platform/resolver.go
package platform

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/arc-language/pyconfig"
	"github.com/arc-language/pyconfig/pkg/cmdr"
	"github.com/arc-language/pyconfig/pkg/core"
	"github.com/arc-language/pyconfig/pkg/script"
)

// ResolvePython builds the interpreter handle described by config
func ResolvePython(config *core.Config) (*pyconfig.PythonConfig, error) {
	// Priority:
	// 1. A recorded fixture, replayed without spawning anything
	// 2. An explicit interpreter, version detected from --version
	// 3. A version selection (python3 / python2)
	// 4. python3
	if config.Fixture != "" {
		fixture, err := cmdr.LoadFixture(config.Fixture)
		if err != nil {
			return nil, fmt.Errorf("loading fixture: %w", err)
		}
		program := fixture.Program
		if program == "" {
			program = pyconfig.DefaultPython3
		}
		py, err := pyconfig.FromCommander(program, fixture.Commander())
		if err != nil {
			return nil, err
		}
		if fixture.Host != "" {
			py = py.ForHost(script.Target(fixture.Host))
		}
		return py, nil
	}

	if config.Python != "" {
		path, err := lookupInterpreter(config.Python)
		if err != nil {
			return nil, err
		}
		return pyconfig.FromInterpreter(path)
	}

	if config.Version != "" {
		version, err := pyconfig.ParseVersion(config.Version)
		if err != nil {
			return nil, err
		}
		return pyconfig.NewVersion(version), nil
	}

	return pyconfig.New(), nil
}

// lookupInterpreter resolves bare names through PATH; paths are used as given
func lookupInterpreter(name string) (string, error) {
	if strings.ContainsAny(name, `/\`) {
		return name, nil
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s not found in PATH", pyconfig.ErrProcessLaunch, name)
	}
	return path, nil
}
