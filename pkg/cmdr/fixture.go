package cmdr

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"gopkg.in/yaml.v3"
)

// Fixture is a recorded set of interpreter responses.
type Fixture struct {
	Program   string            `yaml:"program,omitempty"`
	Host      string            `yaml:"host,omitempty"`
	Responses map[string]string `yaml:"responses"`
}

// Commander returns a StaticCommand replaying the fixture.
func (f *Fixture) Commander() *StaticCommand {
	return NewStaticCommand(f.Responses)
}

// SaveFixture writes f as YAML. Paths ending in .xz or .zst are compressed.
func SaveFixture(path string, f *Fixture) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating fixture directory: %w", err)
	}

	w, err := createFixture(path)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		w.Close()
		return fmt.Errorf("encoding fixture: %w", err)
	}
	if err := enc.Close(); err != nil {
		w.Close()
		return fmt.Errorf("encoding fixture: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	return nil
}

// LoadFixture reads a fixture written by SaveFixture.
func LoadFixture(path string) (*Fixture, error) {
	r, err := openFixture(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var f Fixture
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}
	if f.Responses == nil {
		f.Responses = make(map[string]string)
	}
	return &f, nil
}

func openFixture(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening fixture: %w", err)
	}

	switch compression(path) {
	case ".xz":
		xzReader, err := xz.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("creating xz reader: %w", err)
		}
		return &combinedCloser{Reader: xzReader, closers: []io.Closer{file}}, nil
	case ".zst":
		zstReader, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("creating zstd reader: %w", err)
		}
		return &combinedCloser{Reader: zstReader, closers: []io.Closer{zstReader.IOReadCloser(), file}}, nil
	default:
		return file, nil
	}
}

func createFixture(path string) (io.WriteCloser, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating fixture: %w", err)
	}

	switch compression(path) {
	case ".xz":
		xzWriter, err := xz.NewWriter(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("creating xz writer: %w", err)
		}
		return &combinedCloser{Writer: xzWriter, closers: []io.Closer{xzWriter, file}}, nil
	case ".zst":
		zstWriter, err := zstd.NewWriter(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("creating zstd writer: %w", err)
		}
		return &combinedCloser{Writer: zstWriter, closers: []io.Closer{zstWriter, file}}, nil
	default:
		return file, nil
	}
}

func compression(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xz" || ext == ".zst" {
		return ext
	}
	return ""
}

// combinedCloser closes a compression stream before the file beneath it
type combinedCloser struct {
	io.Reader
	io.Writer
	closers []io.Closer
}

func (c *combinedCloser) Close() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
