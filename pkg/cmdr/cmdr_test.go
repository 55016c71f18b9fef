package cmdr

import (
	"errors"
	"os/exec"
	"path/filepath"
	"testing"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found, skipping process test")
	}
}

func TestSysCommandLaunchFailure(t *testing.T) {
	c := NewSysCommand(filepath.Join(t.TempDir(), "no-such-python"))
	_, err := c.Command("--version")
	if !errors.Is(err, ErrLaunch) {
		t.Fatalf("expected ErrLaunch, got %v", err)
	}
}

func TestSysCommandEmptyProgram(t *testing.T) {
	_, err := NewSysCommand("").Command("--version")
	if !errors.Is(err, ErrLaunch) {
		t.Fatalf("expected ErrLaunch, got %v", err)
	}
}

func TestSysCommandTrimsOutput(t *testing.T) {
	requireShell(t)
	out, err := NewSysCommand("sh").Commands("-c", "echo '  Python 3.7.2  '")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Python 3.7.2" {
		t.Errorf("output = %q, want %q", out, "Python 3.7.2")
	}
}

func TestSysCommandNonZeroExitKeepsOutput(t *testing.T) {
	requireShell(t)
	out, err := NewSysCommand("sh").Commands("-c", "echo partial; exit 3")
	if err != nil {
		t.Fatalf("non-zero exit should not be an error, got %v", err)
	}
	if out != "partial" {
		t.Errorf("output = %q, want partial", out)
	}
}

func TestSysCommandDecodeFailure(t *testing.T) {
	requireShell(t)
	_, err := NewSysCommand("sh").Commands("-c", `printf '\377\376'`)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestStaticCommand(t *testing.T) {
	c := NewStaticCommand(map[string]string{
		"--version":         "Python 3.7.2",
		Key("-c", "print(1)"): "1",
	})

	if out, err := c.Command("--version"); err != nil || out != "Python 3.7.2" {
		t.Errorf("Command(--version) = %q, %v", out, err)
	}
	if out, err := c.Commands("-c", "print(1)"); err != nil || out != "1" {
		t.Errorf("Commands(-c, print(1)) = %q, %v", out, err)
	}
	if _, err := c.Commands("-c", "print(2)"); err == nil {
		t.Error("expected an error for an unknown command")
	}
	if c.Calls() != 3 {
		t.Errorf("Calls() = %d, want 3", c.Calls())
	}
}

func TestRecorder(t *testing.T) {
	inner := NewStaticCommand(map[string]string{"--version": "Python 3.11.4"})
	rec := NewRecorder(inner)

	if _, err := rec.Command("--version"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := rec.Command("--missing"); err == nil {
		t.Fatal("expected error to pass through")
	}

	got := rec.Responses()
	if len(got) != 1 || got["--version"] != "Python 3.11.4" {
		t.Errorf("Responses() = %v", got)
	}
}

func TestFixtureSaveLoad(t *testing.T) {
	script := "from __future__ import print_function\nimport sysconfig\nif x:\n\tprint(1)"
	fixture := &Fixture{
		Program: "python3",
		Host:    "linux",
		Responses: map[string]string{
			"--version":      "Python 3.7.2",
			Key("-c", script): "/usr/local",
		},
	}

	for _, name := range []string{"fixture.yaml", "fixture.yaml.xz", "fixture.yaml.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			if err := SaveFixture(path, fixture); err != nil {
				t.Fatalf("SaveFixture failed: %v", err)
			}

			loaded, err := LoadFixture(path)
			if err != nil {
				t.Fatalf("LoadFixture failed: %v", err)
			}
			if loaded.Program != "python3" || loaded.Host != "linux" {
				t.Errorf("metadata = %q/%q", loaded.Program, loaded.Host)
			}

			out, err := loaded.Commander().Commands("-c", script)
			if err != nil || out != "/usr/local" {
				t.Errorf("replayed script = %q, %v", out, err)
			}
		})
	}
}

func TestLoadFixtureMissing(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing fixture")
	}
}
