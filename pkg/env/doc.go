// pkg/env/doc.go
package env

/*
Package env turns the flags reported by a Python interpreter into an
environment that can be searched for headers and libraries.

It handles:
  - Splitting cflags/ldflags output into -I, -L and -l groups
  - Deriving library search paths from -L flags and the exec prefix
  - Finding libpython (shared or static) inside those paths

Basic Usage:

    import "github.com/arc-language/pyconfig/pkg/env"

    py := pyconfig.New()
    e, err := env.Discover(py)
    if err != nil {
        return err
    }

    for _, dir := range e.GetIncludePaths() {
        fmt.Println(dir) // /usr/include/python3.11
    }

    if lib := e.FindPythonLibrary(); lib != nil {
        fmt.Printf("Found: %s at %s\n", lib.Name, lib.Path)
    }
*/
