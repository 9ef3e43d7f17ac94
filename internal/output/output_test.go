package output

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivePath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"puzzle.txt", "puzzle.out"},
		{"/tmp/dir/puzzle.txt", "/tmp/dir/puzzle.out"},
		{"puzzle", "puzzle.out"},
		{"archive.tar.gz", "archive.tar.out"},
		{"dir.v2/puzzle", "dir.v2/puzzle.out"},
		{"puzzle.out", "puzzle.out"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivePath(tt.input))
		})
	}
}

func TestCandidate(t *testing.T) {
	assert.Equal(t, "puzzle.out", Candidate("puzzle.out", 0))
	assert.Equal(t, "puzzle_1.out", Candidate("puzzle.out", 1))
	assert.Equal(t, "/a/b/puzzle_12.out", Candidate("/a/b/puzzle.out", 12))
	assert.Equal(t, "noext_3", Candidate("noext", 3))
}

func TestWriteFile_FreePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzle.out")

	written, err := WriteFile(path, []byte("CAT (1, 1) (3, 1)\n"))
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "CAT (1, 1) (3, 1)\n", string(data))
}

func TestWriteFile_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzle.out")

	require.NoError(t, os.WriteFile(path, []byte("original"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "puzzle_1.out"), []byte("first"), 0644))

	written, err := WriteFile(path, []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "puzzle_2.out"), written)

	original, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(original))

	first, err := os.ReadFile(filepath.Join(dir, "puzzle_1.out"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(first))
}

func TestWriteFile_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "puzzle.out")

	written, err := WriteFile(path, []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, path, written)
}

// failingWriter fails every write but still closes the file it wraps
type failingWriter struct {
	f *os.File
}

func (w failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }
func (w failingWriter) Close() error { return w.f.Close() }

func TestFinish_RemovesPartialFile(t *testing.T) {
	f, written, err := Create(filepath.Join(t.TempDir(), "puzzle.out"))
	require.NoError(t, err)
	require.FileExists(t, written)

	err = finish(failingWriter{f: f}, written, []byte("CAT (1, 1) (3, 1)\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoFileExists(t, written)
}

func TestFinish_KeepsCompleteFile(t *testing.T) {
	f, written, err := Create(filepath.Join(t.TempDir(), "puzzle.out"))
	require.NoError(t, err)

	require.NoError(t, finish(f, written, []byte("done")))

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, "done", string(data))
}

func TestCreate_ConcurrentWritersGetDistinctPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzle.out")

	const writers = 8
	paths := make([]string, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			written, err := WriteFile(path, []byte("x"))
			assert.NoError(t, err)
			paths[i] = written
		}()
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, p := range paths {
		assert.False(t, seen[p], "path %s handed out twice", p)
		seen[p] = true
	}
	assert.Len(t, seen, writers)
}
