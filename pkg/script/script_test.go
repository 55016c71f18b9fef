package script

import (
	"strings"
	"testing"
)

func TestBuildForStartsWithPrelude(t *testing.T) {
	got := BuildFor(Linux, L("print(getvar('prefix'))"))
	want := strings.Join(append(append([]string{}, Prelude...), "print(getvar('prefix'))"), "\n")
	if got != want {
		t.Errorf("BuildFor() = %q, want %q", got, want)
	}
}

func TestBuildForPlatformLines(t *testing.T) {
	lines := []Line{
		L("flags = []"),
		LinuxLine("flags.extend(getvar('BASECFLAGS').split())"),
		MacOSLine("flags.extend(getvar('CFLAGS').split())"),
		L("print(' '.join(flags))"),
	}

	testCases := []struct {
		host    Target
		present string
		absent  string
	}{
		{Linux, "BASECFLAGS", "'CFLAGS'"},
		{MacOS, "'CFLAGS'", "BASECFLAGS"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.host), func(t *testing.T) {
			got := BuildFor(tc.host, lines...)
			if !strings.Contains(got, tc.present) {
				t.Errorf("script for %s is missing %s:\n%s", tc.host, tc.present, got)
			}
			if strings.Contains(got, tc.absent) {
				t.Errorf("script for %s should not contain %s:\n%s", tc.host, tc.absent, got)
			}
			// A skipped line still occupies a (blank) statement slot.
			if n := len(strings.Split(got, "\n")); n != len(Prelude)+len(lines) {
				t.Errorf("line count = %d, want %d", n, len(Prelude)+len(lines))
			}
		})
	}
}

func TestBuildForOtherHostSkipsBothTargets(t *testing.T) {
	got := BuildFor(Any, LinuxLine("a = 1"), MacOSLine("b = 2"))
	if strings.Contains(got, "a = 1") || strings.Contains(got, "b = 2") {
		t.Errorf("unexpected platform lines in %q", got)
	}
}

func TestTab(t *testing.T) {
	if got := Tab("libs.insert(0, x)"); got != "\tlibs.insert(0, x)" {
		t.Errorf("Tab() = %q", got)
	}
}

func TestTargetFor(t *testing.T) {
	testCases := map[string]Target{
		"linux":   Linux,
		"darwin":  MacOS,
		"windows": Any,
		"freebsd": Any,
	}
	for goos, want := range testCases {
		if got := TargetFor(goos); got != want {
			t.Errorf("TargetFor(%q) = %q, want %q", goos, got, want)
		}
	}
}
