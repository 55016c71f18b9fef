package cmdr

import (
	"fmt"
	"sync/atomic"
)

// StaticCommand answers from a fixed table of responses keyed by the exact
// command string (see Key). It never spawns a process.
type StaticCommand struct {
	responses map[string]string
	calls     atomic.Int64
}

// NewStaticCommand creates a commander over the given responses.
// The map is copied.
func NewStaticCommand(responses map[string]string) *StaticCommand {
	table := make(map[string]string, len(responses))
	for k, v := range responses {
		table[k] = v
	}
	return &StaticCommand{responses: table}
}

// Command looks up a single argument
func (c *StaticCommand) Command(arg string) (string, error) {
	return c.Commands(arg)
}

// Commands looks up the joined argument list
func (c *StaticCommand) Commands(args ...string) (string, error) {
	c.calls.Add(1)

	key := Key(args...)
	resp, ok := c.responses[key]
	if !ok {
		return "", fmt.Errorf("no response recorded for command %q", key)
	}
	return resp, nil
}

// Calls reports how many commands have been issued.
func (c *StaticCommand) Calls() int {
	return int(c.calls.Load())
}

// Responses returns a copy of the response table.
func (c *StaticCommand) Responses() map[string]string {
	out := make(map[string]string, len(c.responses))
	for k, v := range c.responses {
		out[k] = v
	}
	return out
}
