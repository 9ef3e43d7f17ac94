package output

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// Extension is given to result files
	Extension = ".out"

	// MaxAttempts bounds the number of suffixed candidates tried
	MaxAttempts = 10000
)

// ErrNoFreePath is returned when every candidate path is taken
var ErrNoFreePath = errors.New("no free output path")

// DerivePath replaces the input file's extension with Extension
func DerivePath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + Extension
}

// Candidate returns path with "_n" inserted before its final extension.
// n == 0 returns path unchanged.
func Candidate(path string, n int) string {
	if n == 0 {
		return path
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + strconv.Itoa(n) + ext
}

// Create creates a new file at path, or at the first free "_n" variant of
// it. Existing files are never opened or truncated: each attempt uses
// O_EXCL, so a file created concurrently by someone else is skipped too.
func Create(path string) (*os.File, string, error) {
	for n := 0; n < MaxAttempts; n++ {
		candidate := Candidate(path, n)

		f, err := os.OpenFile(candidate, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, candidate, nil
		}
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return nil, "", fmt.Errorf("failed to create output file: %w", err)
	}

	return nil, "", fmt.Errorf("%w: %s", ErrNoFreePath, path)
}

// WriteFile writes data to a new file at path or its first free variant and
// returns the path written
func WriteFile(path string, data []byte) (string, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, written, err := Create(path)
	if err != nil {
		return "", err
	}

	if err := finish(f, written, data); err != nil {
		return "", err
	}
	return written, nil
}

// finish writes data and closes f. On failure the partial file at path is
// removed.
func finish(f io.WriteCloser, path string, data []byte) error {
	_, err := f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
