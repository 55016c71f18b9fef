// pkg/platform/detect.go
package platform

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/arc-language/pyconfig/pkg/script"
)

// Candidates are the interpreter names looked up on PATH, in preference order
var Candidates = []string{"python3", "python", "python2"}

// Platform represents the detected host and the Python interpreters on it
type Platform struct {
	OS        string        // linux, darwin, windows
	Arch      string        // amd64, arm64, 386, arm
	Target    script.Target // script target for platform-specific query lines
	Available []Interpreter // Interpreters found on PATH
	Preferred string        // Preferred interpreter name
}

// Interpreter is a Python executable found on PATH
type Interpreter struct {
	Name string // Name looked up, e.g. "python3"
	Path string // Resolved executable path
}

// Detect detects the current platform and the Python interpreters on PATH
func Detect() (*Platform, error) {
	return detect(runtime.GOOS, runtime.GOARCH, exec.LookPath)
}

func detect(goos, goarch string, lookPath func(string) (string, error)) (*Platform, error) {
	p := &Platform{
		OS:        goos,
		Arch:      goarch,
		Target:    script.TargetFor(goos),
		Available: []Interpreter{},
	}

	for _, name := range Candidates {
		if path, err := lookPath(name); err == nil {
			p.Available = append(p.Available, Interpreter{Name: name, Path: path})
		}
	}

	if len(p.Available) == 0 {
		return p, fmt.Errorf("no python interpreter found in PATH (tried %v)", Candidates)
	}

	p.Preferred = p.Available[0].Name
	return p, nil
}

// Names returns the names of the available interpreters
func (p *Platform) Names() []string {
	names := make([]string, 0, len(p.Available))
	for _, in := range p.Available {
		names = append(names, in.Name)
	}
	return names
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (available: %v, preferred: %s)",
		p.OS, p.Arch, p.Names(), p.Preferred)
}
