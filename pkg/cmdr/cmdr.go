// Package cmdr provides a terminal-like input/output interface to an
// external program: give it arguments, get back what it printed.
package cmdr

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"
)

var (
	// ErrLaunch indicates the program could not be started
	ErrLaunch = errors.New("process launch failed")

	// ErrDecode indicates the program printed something that is not UTF-8
	ErrDecode = errors.New("output is not valid UTF-8")
)

// Commander runs a program with arguments and returns its standard output.
//
// Implementations return the trimmed stdout even when the program exits with
// a non-zero status; interpreting the output is left to the caller.
type Commander interface {
	// Command runs the program with a single argument
	Command(arg string) (string, error)

	// Commands runs the program with an argument list
	Commands(args ...string) (string, error)
}

// SysCommand spawns a system program for every call.
type SysCommand struct {
	Program string
}

// NewSysCommand creates a commander for the named program or path.
func NewSysCommand(program string) *SysCommand {
	return &SysCommand{Program: program}
}

// Command runs the program with a single argument
func (c *SysCommand) Command(arg string) (string, error) {
	return c.Commands(arg)
}

// Commands runs the program with args and waits for it to exit
func (c *SysCommand) Commands(args ...string) (string, error) {
	if c.Program == "" {
		return "", fmt.Errorf("%w: empty program name", ErrLaunch)
	}

	var stdout bytes.Buffer
	cmd := exec.Command(c.Program, args...)
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s: %v", ErrLaunch, c.Program, err)
		}
		// Exit status is the caller's business; keep whatever was printed.
	}

	return decode(stdout.Bytes())
}

// decode validates and trims raw process output
func decode(out []byte) (string, error) {
	if !utf8.Valid(out) {
		return "", ErrDecode
	}
	return strings.TrimSpace(string(out)), nil
}

// Key returns the lookup key for an argument list: the arguments joined by a
// single space.
func Key(args ...string) string {
	return strings.Join(args, " ")
}
