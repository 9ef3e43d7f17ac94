// Package types provides shared type definitions for the word search solver.
//
// This package defines the domain types used across the parser, searcher,
// formatter and solver: the parsed puzzle, located matches and per-word
// result sets.
//
// # Core Types
//
// Puzzle holds the grid rows, the columns derived from them and the words to
// look for:
//
//	puzzle, err := types.NewPuzzle(
//	    []string{"CAT", "ODO", "WGX"},
//	    []string{"cat", "cow", "dog"},
//	)
//
// Match describes one occurrence of a word. Coordinates are 0-indexed with X
// the column and Y the row. A backward match has its start after its end:
//
//	match := types.Match{
//	    Word:  "TAC",
//	    Start: types.Position{X: 2, Y: 0},
//	    End:   types.Position{X: 0, Y: 0},
//	    Axis:  types.AxisHorizontal,
//	}
//
// ResultSet keeps one WordResult per entry of the word list, in order. Words
// listed twice get two entries.
//
// # Validation
//
// Structural problems with a puzzle are reported as *MalformedPuzzleError.
// Every such error matches ErrMalformedPuzzle, and also the specific reason:
//
//	if errors.Is(err, types.ErrMalformedPuzzle) {
//	    switch {
//	    case errors.Is(err, types.ErrNoGrid):
//	    case errors.Is(err, types.ErrNoWords):
//	    case errors.Is(err, types.ErrInconsistentRows):
//	    }
//	}
//
// A word that does not occur in the grid is not an error; its WordResult
// simply has no matches.
package types
