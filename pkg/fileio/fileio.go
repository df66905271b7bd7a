// Package fileio provides the file-backed persistence primitives used by the
// record store: whole-file reads and writes of JSON documents, creating
// parent directories as needed.
package fileio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotExist signals that the requested file is absent. Callers treat
// absence as a normal condition (seed or empty collection), not a failure.
var ErrNotExist = errors.New("file does not exist")

// Load reads the entire file at path. Absence is reported as ErrNotExist so
// callers can distinguish it from a real I/O failure.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, err
	}
	return data, nil
}

// Save writes data to path, creating parent directories first. The write is
// not atomic: a crash mid-write can leave a truncated file.
func Save(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
