package solver

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/wordsearch/internal/formatter"
	"github.com/dshills/wordsearch/pkg/types"
)

const animalsPuzzle = "CATX\nOXTA\nWOLF\n\ncat\ncow\nflow\ndog\n"

const animalsOutput = "CAT (1, 1) (3, 1)\n" +
	"COW (1, 1) (1, 3)\n" +
	"FLOW (4, 3) (1, 3)\n" +
	"DOG not found\n"

func writePuzzle(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSolve_InMemory(t *testing.T) {
	sv := New(nil, nil)

	puzzle, err := sv.Parser().ParseString(animalsPuzzle)
	require.NoError(t, err)

	sol, err := sv.Solve(context.Background(), puzzle, formatter.DefaultOptions(), false)
	require.NoError(t, err)

	assert.Equal(t, animalsOutput, sol.Text)
	assert.Len(t, sol.Results, 4)
	assert.False(t, sol.CacheHit)
}

func TestSolve_UsesCache(t *testing.T) {
	sv := New(nil, nil)

	puzzle, err := sv.Parser().ParseString(animalsPuzzle)
	require.NoError(t, err)

	_, err = sv.Solve(context.Background(), puzzle, formatter.DefaultOptions(), true)
	require.NoError(t, err)

	sol, err := sv.Solve(context.Background(), puzzle, formatter.DefaultOptions(), true)
	require.NoError(t, err)
	assert.True(t, sol.CacheHit)
	assert.Equal(t, animalsOutput, sol.Text)
}

func TestSolveFile_WritesOutput(t *testing.T) {
	dir := t.TempDir()
	path := writePuzzle(t, dir, "animals.txt", animalsPuzzle)

	outcome, err := New(nil, nil).SolveFile(context.Background(), Job{Path: path}, nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "animals.out"), outcome.OutputPath)
	assert.Equal(t, 3, outcome.WordsFound)
	assert.Equal(t, 1, outcome.WordsNotFound)
	assert.Equal(t, animalsOutput, readFile(t, outcome.OutputPath))
}

func TestSolveFile_ZeroOffset(t *testing.T) {
	dir := t.TempDir()
	path := writePuzzle(t, dir, "animals.txt", animalsPuzzle)

	outcome, err := New(nil, nil).SolveFile(context.Background(), Job{Path: path}, &Config{Offset: 0})
	require.NoError(t, err)

	assert.Contains(t, readFile(t, outcome.OutputPath), "CAT (0, 0) (2, 0)\n")
}

func TestSolveFile_AvoidsCollision(t *testing.T) {
	dir := t.TempDir()
	path := writePuzzle(t, dir, "animals.txt", animalsPuzzle)
	existing := writePuzzle(t, dir, "animals.out", "keep me")

	outcome, err := New(nil, nil).SolveFile(context.Background(), Job{Path: path}, nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "animals_1.out"), outcome.OutputPath)
	assert.Equal(t, "keep me", readFile(t, existing))
	assert.Equal(t, animalsOutput, readFile(t, outcome.OutputPath))
}

func TestSolveFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := writePuzzle(t, dir, "ragged.txt", "ABC\nAB\n\nab\n")

	_, err := New(nil, nil).SolveFile(context.Background(), Job{Path: path}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrMalformedPuzzle)
	assert.ErrorIs(t, err, types.ErrInconsistentRows)

	_, statErr := os.Stat(filepath.Join(dir, "ragged.out"))
	assert.True(t, os.IsNotExist(statErr), "no output for a malformed puzzle")
}

func TestSolveFile_Missing(t *testing.T) {
	_, err := New(nil, nil).SolveFile(context.Background(), Job{Path: filepath.Join(t.TempDir(), "nope.txt")}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestSolveFiles_BatchInProgress(t *testing.T) {
	sv := New(nil, nil)
	require.True(t, sv.batch.TryAcquire())
	defer sv.batch.Release()

	_, err := sv.SolveFiles(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrBatchInProgress)
}

func TestSolveFiles_Cancelled(t *testing.T) {
	dir := t.TempDir()
	jobs := []Job{
		{Path: writePuzzle(t, dir, "a.txt", animalsPuzzle)},
		{Path: writePuzzle(t, dir, "b.txt", animalsPuzzle)},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil, nil).SolveFiles(ctx, jobs, &Config{Workers: 1, Offset: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveFiles_Empty(t *testing.T) {
	stats, err := New(nil, nil).SolveFiles(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Zero(t, stats.FilesSolved)
	assert.Zero(t, stats.FilesFailed)
	assert.Empty(t, stats.Outcomes)
	assert.Empty(t, stats.ErrorMessages)
}

func TestSolveFiles_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	sv := New(nil, log.New(&buf))

	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.txt")

	stats, err := sv.SolveFiles(context.Background(), []Job{{Path: missing}}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.FilesFailed)
	assert.Contains(t, buf.String(), "failed to solve puzzle")
	assert.Contains(t, buf.String(), missing)
}

func TestNormalizeConfig(t *testing.T) {
	cfg := normalizeConfig(nil)
	assert.Positive(t, cfg.Workers)
	assert.Equal(t, formatter.DefaultOffset, cfg.Offset)

	in := &Config{Workers: 0, Offset: 3}
	cfg = normalizeConfig(in)
	assert.Positive(t, cfg.Workers)
	assert.Equal(t, 3, cfg.Offset)
	assert.Zero(t, in.Workers, "caller's config is not modified")
}
