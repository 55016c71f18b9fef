// query.go
package pyconfig

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/arc-language/pyconfig/pkg/script"
)

// Query lines, evaluated after script.Prelude.
var (
	prefixQuery = []script.Line{
		script.L("print(getvar('prefix'))"),
	}

	execPrefixQuery = []script.Line{
		script.L("print(getvar('exec_prefix'))"),
	}

	abiFlagsQuery = []script.Line{
		script.L("import sys"),
		script.L("print(sys.abiflags)"),
	}

	includesQuery = []script.Line{
		script.L("flags = ['-I' + sysconfig.get_path('include'), '-I' + sysconfig.get_path('platinclude')]"),
		script.L("print(' '.join(flags))"),
	}

	includePathsQuery = []script.Line{
		script.L("print(sysconfig.get_path('include'))"),
		script.L("print(sysconfig.get_path('platinclude'))"),
	}

	cflagsQuery = []script.Line{
		script.L("flags = ['-I' + sysconfig.get_path('include'), '-I' + sysconfig.get_path('platinclude')]"),
		script.LinuxLine("flags.extend(getvar('BASECFLAGS').split())"),
		script.LinuxLine("flags.extend(getvar('CONFIGURE_CFLAGS').split())"),
		script.MacOSLine("flags.extend(getvar('CFLAGS').split())"),
		script.L("print(' '.join(flags))"),
	}

	libsQuery = []script.Line{
		script.L("import sys"),
		script.L("libs = ['-lpython' + pyver + getattr(sys, 'abiflags', '')]"),
		script.L("libs += getvar('LIBS').split()"),
		script.L("libs += getvar('SYSLIBS').split()"),
		script.L("print(' '.join(libs))"),
	}

	ldflagsQuery = []script.Line{
		script.L("import sys"),
		script.L("libs = ['-lpython' + pyver + getattr(sys, 'abiflags', '')]"),
		script.L("libs += getvar('LIBS').split()"),
		script.L("libs += getvar('SYSLIBS').split()"),
		script.LinuxLine("libs.insert(0, '-L' + getvar('exec_prefix') + '/lib')"),
		script.L("if not getvar('Py_ENABLE_SHARED'):"),
		script.L(script.Tab("libs.insert(0, '-L' + getvar('LIBPL'))")),
		script.L("if not getvar('PYTHONFRAMEWORK'):"),
		script.L(script.Tab("libs.extend(getvar('LINKFORSHARED').split())")),
		script.L("print(' '.join(libs))"),
	}

	extensionSuffixQuery = []script.Line{
		script.L("print(getvar('EXT_SUFFIX'))"),
	}

	configDirQuery = []script.Line{
		script.L("print(getvar('LIBPL'))"),
	}
)

// VersionRaw returns the output of `python --version`, e.g. "Python 3.7.2".
func (py *PythonConfig) VersionRaw() (string, error) {
	out, err := py.cmdr.Command("--version")
	if err != nil {
		return "", opError("version", err)
	}
	return strings.TrimSpace(out), nil
}

// SemanticVersion parses VersionRaw as "<name> X.Y.Z".
func (py *PythonConfig) SemanticVersion() (*semver.Version, error) {
	raw, err := py.VersionRaw()
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(raw)
	if len(fields) < 2 {
		return nil, opError("semantic_version",
			fmt.Errorf("%w: expected --version to return a string resembling 'Python X.Y.Z', got %q", ErrParse, raw))
	}

	ver, err := semver.StrictNewVersion(fields[1])
	if err != nil {
		return nil, opError("semantic_version", fmt.Errorf("%w: unable to parse %q as a version: %v", ErrParse, fields[1], err))
	}
	return ver, nil
}

// Prefix returns the installation prefix (python3-config --prefix).
func (py *PythonConfig) Prefix() (string, error) {
	return py.runScript("prefix", prefixQuery...)
}

// PrefixPath returns Prefix as a cleaned filesystem path.
func (py *PythonConfig) PrefixPath() (string, error) {
	return asPath("prefix", py.Prefix)
}

// ExecPrefix returns the platform-specific installation prefix
// (python3-config --exec-prefix).
func (py *PythonConfig) ExecPrefix() (string, error) {
	return py.runScript("exec_prefix", execPrefixQuery...)
}

// ExecPrefixPath returns ExecPrefix as a cleaned filesystem path.
func (py *PythonConfig) ExecPrefixPath() (string, error) {
	return asPath("exec_prefix", py.ExecPrefix)
}

// AbiFlags returns sys.abiflags. Python 3 only.
func (py *PythonConfig) AbiFlags() (string, error) {
	if err := py.requireThree("abiflags"); err != nil {
		return "", err
	}
	return py.runScript("abiflags", abiFlagsQuery...)
}

// Includes returns the -I flags for the general and platform include
// directories, space separated. Identical directories are repeated.
func (py *PythonConfig) Includes() (string, error) {
	return py.runScript("includes", includesQuery...)
}

// IncludePaths returns the general and platform include directories, in
// that order.
func (py *PythonConfig) IncludePaths() ([]string, error) {
	out, err := py.runScript("include_paths", includePathsQuery...)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		return nil, opError("include_paths", fmt.Errorf("%w: expected 2 include paths, got %d lines", ErrParse, len(lines)))
	}

	paths := make([]string, 0, len(lines))
	for _, line := range lines {
		paths = append(paths, strings.TrimSpace(line))
	}
	return paths, nil
}

// CFlags returns the include flags followed by the C compiler flags Python
// was built with (python3-config --cflags).
func (py *PythonConfig) CFlags() (string, error) {
	return py.runScript("cflags", cflagsQuery...)
}

// Libs returns -lpythonX.Y<abiflags> followed by LIBS and SYSLIBS
// (python3-config --libs).
func (py *PythonConfig) Libs() (string, error) {
	return py.runScript("libs", libsQuery...)
}

// LdFlags returns the linker flags for embedding Python
// (python3-config --ldflags). Token order is: -L<LIBPL> when Python is not a
// shared build, -L<exec_prefix>/lib on Linux, -lpythonX.Y<abiflags>, LIBS,
// SYSLIBS, then LINKFORSHARED when Python is not a framework build.
func (py *PythonConfig) LdFlags() (string, error) {
	return py.runScript("ldflags", ldflagsQuery...)
}

// ExtensionSuffix returns the file suffix of compiled extension modules,
// e.g. ".cpython-37m-x86_64-linux-gnu.so". Python 3 only.
func (py *PythonConfig) ExtensionSuffix() (string, error) {
	if err := py.requireThree("extension_suffix"); err != nil {
		return "", err
	}
	return py.runScript("extension_suffix", extensionSuffixQuery...)
}

// ConfigDir returns the directory holding Python's Makefile and static
// library (LIBPL). Python 3 only.
func (py *PythonConfig) ConfigDir() (string, error) {
	if err := py.requireThree("configdir"); err != nil {
		return "", err
	}
	return py.runScript("configdir", configDirQuery...)
}

// ConfigDirPath returns ConfigDir as a cleaned filesystem path.
func (py *PythonConfig) ConfigDirPath() (string, error) {
	return asPath("configdir", py.ConfigDir)
}

// asPath runs query and cleans its output as a filesystem path
func asPath(op string, query func() (string, error)) (string, error) {
	s, err := query()
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", opError(op, fmt.Errorf("%w: empty path", ErrParse))
	}
	return filepath.Clean(s), nil
}
