// pkg/env/environment.go
package env

import (
	"fmt"
	"path/filepath"
)

// Source is anything that can report an interpreter's build flags.
// *pyconfig.PythonConfig satisfies it.
type Source interface {
	ExecPrefix() (string, error)
	CFlags() (string, error)
	LdFlags() (string, error)
}

// New creates an environment from already-known flags
func New(execPrefix string, flags CompilerFlags) *Environment {
	return &Environment{
		ExecPrefix: execPrefix,
		Flags:      flags,
	}
}

// Discover queries src for its exec prefix, cflags and ldflags
func Discover(src Source) (*Environment, error) {
	execPrefix, err := src.ExecPrefix()
	if err != nil {
		return nil, fmt.Errorf("querying exec prefix: %w", err)
	}

	cflags, err := src.CFlags()
	if err != nil {
		return nil, fmt.Errorf("querying cflags: %w", err)
	}

	ldflags, err := src.LdFlags()
	if err != nil {
		return nil, fmt.Errorf("querying ldflags: %w", err)
	}

	flags := ParseFlags(cflags)
	flags.Merge(ldflags)
	return New(execPrefix, flags), nil
}

// GetIncludePaths returns the header directories
func (e *Environment) GetIncludePaths() []string {
	return e.Flags.IncludeDirs()
}

// GetLibraryPaths returns the library search directories: -L flags first,
// then the exec prefix's lib directories
func (e *Environment) GetLibraryPaths() []string {
	paths := e.Flags.LibraryDirs()
	if e.ExecPrefix == "" {
		return paths
	}

	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		seen[p] = true
	}
	for _, dir := range []string{"lib64", "lib"} {
		p := filepath.Join(e.ExecPrefix, dir)
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	return paths
}

// GetCompilerFlags returns the flags grouped by kind
func (e *Environment) GetCompilerFlags() CompilerFlags {
	return e.Flags
}
