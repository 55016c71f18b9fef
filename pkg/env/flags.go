// pkg/env/flags.go
package env

import "strings"

// ParseFlags splits a cflags/ldflags line into its flag groups.
// Order within each group is preserved.
func ParseFlags(line string) CompilerFlags {
	var flags CompilerFlags
	flags.Merge(line)
	return flags
}

// Merge appends the flags found in line to f
func (f *CompilerFlags) Merge(line string) {
	for _, tok := range strings.Fields(line) {
		switch {
		case strings.HasPrefix(tok, "-I") && len(tok) > 2:
			f.IncludeFlags = append(f.IncludeFlags, tok)
		case strings.HasPrefix(tok, "-L") && len(tok) > 2:
			f.LibraryFlags = append(f.LibraryFlags, tok)
		case strings.HasPrefix(tok, "-l") && len(tok) > 2:
			f.LinkFlags = append(f.LinkFlags, tok)
		default:
			f.Other = append(f.Other, tok)
		}
	}
}

// IncludeDirs returns the directories named by -I flags, without duplicates
func (f CompilerFlags) IncludeDirs() []string {
	return trimmed(f.IncludeFlags, "-I")
}

// LibraryDirs returns the directories named by -L flags, without duplicates
func (f CompilerFlags) LibraryDirs() []string {
	return trimmed(f.LibraryFlags, "-L")
}

// Libraries returns the library names named by -l flags, without duplicates
func (f CompilerFlags) Libraries() []string {
	return trimmed(f.LinkFlags, "-l")
}

func trimmed(flags []string, prefix string) []string {
	out := make([]string, 0, len(flags))
	seen := make(map[string]bool)
	for _, flag := range flags {
		v := strings.TrimPrefix(flag, prefix)
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
