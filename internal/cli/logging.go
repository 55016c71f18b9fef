// internal/cli/logging.go
package cli

import (
	"io"
	"log"
	"strings"
	"time"

	"github.com/arc-language/pyconfig"
	"github.com/arc-language/pyconfig/pkg/cmdr"
	"github.com/arc-language/pyconfig/pkg/core"
	"github.com/arc-language/pyconfig/pkg/platform"
)

func newLogger(debug bool, w io.Writer) *log.Logger {
	if !debug {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, "[pyconfig] ", log.LstdFlags)
}

// loggingCommander logs every interpreter invocation
type loggingCommander struct {
	next   cmdr.Commander
	logger *log.Logger
}

func (l *loggingCommander) Command(arg string) (string, error) {
	return l.Commands(arg)
}

func (l *loggingCommander) Commands(args ...string) (string, error) {
	start := time.Now()
	out, err := l.next.Commands(args...)
	if err != nil {
		l.logger.Printf("%s: %v", describe(args), err)
		return out, err
	}
	l.logger.Printf("%s: %d bytes in %v", describe(args), len(out), time.Since(start))
	return out, nil
}

// describe shortens query scripts to their last statement
func describe(args []string) string {
	if len(args) == 2 && args[0] == "-c" {
		lines := strings.Split(strings.TrimSpace(args[1]), "\n")
		return "-c ..." + strings.TrimSpace(lines[len(lines)-1])
	}
	return strings.Join(args, " ")
}

// resolve picks the interpreter cfg describes and routes it through the
// debug logger
func resolve(cfg *core.Config, logOut io.Writer) (*pyconfig.PythonConfig, error) {
	logger := newLogger(cfg.Debug, logOut)

	py, err := platform.ResolvePython(cfg)
	if err != nil {
		return nil, err
	}
	logger.Printf("using %s (Python %s, host %q)", py.Program(), py.Version(), py.Host())

	return py.Wrap(func(c cmdr.Commander) cmdr.Commander {
		return &loggingCommander{next: c, logger: logger}
	}), nil
}
