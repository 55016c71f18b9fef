// pkg/env/library.go
package env

import (
	"os"
	"path/filepath"
	"strings"
)

// FindLibrary searches for a specific library by name
// Returns the first match found in library search paths
func (e *Environment) FindLibrary(name string) *Library {
	return e.find(name, GetLibraryExtensions(), true)
}

// FindSharedLibrary searches specifically for shared libraries (.so, .dylib, .dll)
func (e *Environment) FindSharedLibrary(name string) *Library {
	return e.find(name, GetSharedLibraryExtensions(), true)
}

// FindStaticLibrary searches specifically for static libraries (.a, .lib)
func (e *Environment) FindStaticLibrary(name string) *Library {
	return e.find(name, GetStaticLibraryExtensions(), false)
}

// FindPythonLibrary finds the libpython named by the -lpython flag
func (e *Environment) FindPythonLibrary() *Library {
	for _, name := range e.Flags.Libraries() {
		if strings.HasPrefix(name, "python") {
			return e.FindLibrary(name)
		}
	}
	return nil
}

// LinkedLibraries resolves every -l flag; unresolved names are skipped
func (e *Environment) LinkedLibraries() []*Library {
	var libs []*Library
	for _, name := range e.Flags.Libraries() {
		if lib := e.FindLibrary(name); lib != nil {
			libs = append(libs, lib)
		}
	}
	return libs
}

// HasLibrary checks if a library exists in the environment
func (e *Environment) HasLibrary(name string) bool {
	return e.FindLibrary(name) != nil
}

func (e *Environment) find(name string, extensions []string, versioned bool) *Library {
	for _, dir := range e.GetLibraryPaths() {
		for _, ext := range extensions {
			// Try lib{name}{ext} pattern (e.g., libpython3.11.so)
			filename := "lib" + name + ext
			fullPath := filepath.Join(dir, filename)

			if fileExists(fullPath) {
				return newLibrary(name, fullPath, ext)
			}

			if !versioned {
				continue
			}

			// Try versioned: lib{name}{ext}.* (e.g., libpython3.11.so.1.0)
			matches, _ := filepath.Glob(filepath.Join(dir, filename+".*"))
			if len(matches) > 0 {
				return newLibrary(name, matches[0], ext)
			}
		}
	}

	return nil
}

func newLibrary(name, path, ext string) *Library {
	return &Library{
		Name:     name,
		Path:     path,
		Type:     ext,
		IsStatic: ext == ".a" || ext == ".lib",
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
