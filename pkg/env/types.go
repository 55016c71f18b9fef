// pkg/env/types.go
package env

// Library represents a found library file
type Library struct {
	Name     string // Library name (e.g., "python3.11")
	Path     string // Absolute path to library file
	Type     string // Extension: ".so", ".a", ".dylib", ".dll", ".lib"
	IsStatic bool   // True for .a files
}

// Environment describes where an interpreter's headers and libraries live
type Environment struct {
	ExecPrefix string        // Installation root for platform files (e.g., /usr)
	Flags      CompilerFlags // Flags reported by the interpreter
}

// CompilerFlags holds compiler and linker flags
type CompilerFlags struct {
	IncludeFlags []string // -I flags
	LibraryFlags []string // -L flags
	LinkFlags    []string // -l flags
	Other        []string // Everything else, in reported order
}
