package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HighScoreFile is the persisted best score: one file holding a decimal
// integer and nothing else.
type HighScoreFile struct {
	path string
}

// NewHighScoreFile returns the store for path. A leading ~ is expanded.
func NewHighScoreFile(path string) (*HighScoreFile, error) {
	p, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	return &HighScoreFile{path: p}, nil
}

// Path returns the expanded file path.
func (f *HighScoreFile) Path() string {
	return f.path
}

// Load reads the best score. A missing file is 0 with no error. An
// unreadable file or one that does not hold a non-negative integer is 0
// with an error describing why.
func (f *HighScoreFile) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: invalid high score in %s: %w", f.path, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("storage: negative high score %d in %s", n, f.path)
	}
	return n, nil
}

// Save overwrites the file with score, creating parent directories.
func (f *HighScoreFile) Save(score int) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(f.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	return nil
}
