// errors.go
package pyconfig

import (
	"errors"
	"fmt"

	"github.com/arc-language/pyconfig/pkg/cmdr"
)

var (
	// ErrProcessLaunch indicates the interpreter could not be started
	ErrProcessLaunch = cmdr.ErrLaunch

	// ErrDecode indicates the interpreter printed invalid UTF-8
	ErrDecode = cmdr.ErrDecode

	// ErrParse indicates interpreter output did not have the expected shape
	ErrParse = errors.New("unexpected interpreter output")

	// ErrVersionMismatch indicates a Python 3 only query on a Python 2 handle
	ErrVersionMismatch = errors.New("operation requires Python 3")

	// ErrPathEncoding indicates an interpreter path that is not valid text
	ErrPathEncoding = errors.New("interpreter path is not valid UTF-8")
)

// Error wraps an error with the configuration query that failed
type Error struct {
	Op  string // Query that failed, e.g. "ldflags"
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func opError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
