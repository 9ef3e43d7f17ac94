package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPuzzle_DerivesColumns(t *testing.T) {
	p, err := NewPuzzle([]string{"abc", "def", "ghi"}, []string{"adg"})
	require.NoError(t, err)

	assert.Equal(t, []string{"adg", "beh", "cfi"}, p.Columns)
	assert.Equal(t, 3, p.Width())
	assert.Equal(t, 3, p.Height())
}

func TestNewPuzzle_SingleCell(t *testing.T) {
	p, err := NewPuzzle([]string{"x"}, []string{"x"})
	require.NoError(t, err)

	assert.Equal(t, []string{"x"}, p.Rows)
	assert.Equal(t, []string{"x"}, p.Columns)
}

func TestPuzzle_Validate(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		words  []string
		reason error
	}{
		{name: "no rows", rows: nil, words: []string{"a"}, reason: ErrNoGrid},
		{name: "no words", rows: []string{"ab"}, words: nil, reason: ErrNoWords},
		{name: "ragged rows", rows: []string{"abc", "de"}, words: []string{"a"}, reason: ErrInconsistentRows},
		{name: "empty row", rows: []string{""}, words: []string{"a"}, reason: ErrNoGrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPuzzle(tt.rows, tt.words)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedPuzzle)
			assert.ErrorIs(t, err, tt.reason)

			var mpe *MalformedPuzzleError
			require.True(t, errors.As(err, &mpe))
			assert.Equal(t, tt.reason, mpe.Reason)
		})
	}
}

func TestMalformedPuzzleError_Message(t *testing.T) {
	err := NewMalformedPuzzleError(ErrInconsistentRows, "row 2 has length 2, expected 3")
	assert.Equal(t, "malformed puzzle: grid rows have inconsistent lengths (row 2 has length 2, expected 3)", err.Error())

	err = NewMalformedPuzzleError(ErrNoWords, "")
	assert.Equal(t, "malformed puzzle: no words to search for", err.Error())
}

func TestMatch_Direction(t *testing.T) {
	forward := Match{Word: "MATCH", Start: Position{0, 0}, End: Position{4, 0}, Axis: AxisHorizontal}
	assert.False(t, forward.IsBackward())
	assert.Equal(t, 5, forward.Length())

	backward := Match{Word: "MATCH", Start: Position{2, 4}, End: Position{2, 0}, Axis: AxisVertical}
	assert.True(t, backward.IsBackward())
	assert.Equal(t, 5, backward.Length())

	single := Match{Word: "A", Start: Position{3, 1}, End: Position{3, 1}, Axis: AxisHorizontal}
	assert.False(t, single.IsBackward())
	assert.Equal(t, 1, single.Length())
}

func TestResultSet(t *testing.T) {
	hit := Match{Word: "CAT", Start: Position{0, 0}, End: Position{2, 0}, Axis: AxisHorizontal}
	rs := ResultSet{
		{Word: "cat", Matches: []Match{hit}},
		{Word: "dog"},
		{Word: "cat", Matches: []Match{hit, hit}},
	}

	assert.Equal(t, 3, rs.TotalMatches())
	assert.Equal(t, []string{"dog"}, rs.NotFound())

	last, ok := rs.Lookup("cat")
	require.True(t, ok)
	assert.Len(t, last.Matches, 2)

	_, ok = rs.Lookup("cow")
	assert.False(t, ok)

	first, ok := rs[0].First()
	require.True(t, ok)
	assert.Equal(t, hit, first)

	clone := rs.Clone()
	clone[0].Matches[0].Word = "MUTATED"
	assert.Equal(t, "CAT", rs[0].Matches[0].Word)
}
