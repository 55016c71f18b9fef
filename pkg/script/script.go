// Package script builds the inline Python programs pyconfig hands to an
// interpreter via `python -c`.
//
// Every program starts with the same prelude:
//
//	from __future__ import print_function
//	import sysconfig
//	getvar = sysconfig.get_config_var
//	pyver = getvar('VERSION')
//
// so query lines can call getvar(...) and read pyver without importing
// anything themselves. Lines are joined with newlines and are not validated;
// callers indent conditional bodies with Tab.
package script

import (
	"runtime"
	"strings"
)

// Target selects the host operating systems a line is emitted for.
type Target string

const (
	// Any lines are emitted on every host
	Any Target = ""
	// Linux lines are emitted only on Linux hosts
	Linux Target = "linux"
	// MacOS lines are emitted only on macOS hosts
	MacOS Target = "macos"
)

// Prelude is prepended to every program.
var Prelude = []string{
	"from __future__ import print_function",
	"import sysconfig",
	"getvar = sysconfig.get_config_var",
	"pyver = getvar('VERSION')",
}

// Line is one statement of a query, tagged with the hosts it applies to.
type Line struct {
	Target Target
	Text   string
}

// L returns a line emitted on every host.
func L(text string) Line {
	return Line{Target: Any, Text: text}
}

// LinuxLine returns a line emitted only on Linux.
func LinuxLine(text string) Line {
	return Line{Target: Linux, Text: text}
}

// MacOSLine returns a line emitted only on macOS.
func MacOSLine(text string) Line {
	return Line{Target: MacOS, Text: text}
}

// Tab indents text by one literal tab, for the body of an if statement.
func Tab(text string) string {
	return "\t" + text
}

// Host returns the Target matching the operating system this binary runs on.
// Hosts other than Linux and macOS only receive Any lines.
func Host() Target {
	return TargetFor(runtime.GOOS)
}

// TargetFor maps a GOOS value onto a Target.
func TargetFor(goos string) Target {
	switch goos {
	case "linux":
		return Linux
	case "darwin":
		return MacOS
	default:
		return Any
	}
}

// Render returns the text of the line for the given host, or the empty
// statement when the line targets another host.
func (l Line) Render(host Target) string {
	if l.Target == Any || l.Target == host {
		return l.Text
	}
	return ""
}

// Build renders the prelude and lines for the current host.
func Build(lines ...Line) string {
	return BuildFor(Host(), lines...)
}

// BuildFor renders the prelude and lines for host.
func BuildFor(host Target, lines ...Line) string {
	out := make([]string, 0, len(Prelude)+len(lines))
	out = append(out, Prelude...)
	for _, l := range lines {
		out = append(out, l.Render(host))
	}
	return strings.Join(out, "\n")
}
