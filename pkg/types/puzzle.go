package types

import (
	"fmt"
	"strings"
)

// Puzzle is a parsed word search: the grid rows, the derived columns and the
// words to look for. It is read-only once built.
type Puzzle struct {
	Rows    []string // Grid rows, top to bottom
	Columns []string // Grid columns, left to right
	Words   []string // Search terms in file order, duplicates kept
}

// NewPuzzle builds a puzzle from rows and words, deriving the columns.
// Returns a *MalformedPuzzleError if the rows or words are unusable.
func NewPuzzle(rows, words []string) (*Puzzle, error) {
	p := &Puzzle{
		Rows:  rows,
		Words: words,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	p.Columns = DeriveColumns(rows)
	return p, nil
}

// Validate checks the structural invariants of the puzzle
func (p *Puzzle) Validate() error {
	if len(p.Rows) == 0 {
		return NewMalformedPuzzleError(ErrNoGrid, "")
	}

	if len(p.Words) == 0 {
		return NewMalformedPuzzleError(ErrNoWords, "")
	}

	return ValidateGrid(p.Rows)
}

// ValidateGrid checks that rows form a non-empty rectangle
func ValidateGrid(rows []string) error {
	if len(rows) == 0 {
		return NewMalformedPuzzleError(ErrNoGrid, "")
	}

	width := len(rows[0])
	if width == 0 {
		return NewMalformedPuzzleError(ErrNoGrid, "first row is empty")
	}

	for i, row := range rows[1:] {
		if len(row) != width {
			return NewMalformedPuzzleError(ErrInconsistentRows,
				fmt.Sprintf("row %d has length %d, expected %d", i+2, len(row), width))
		}
	}

	return nil
}

// Width returns the number of columns in the grid
func (p *Puzzle) Width() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return len(p.Rows[0])
}

// Height returns the number of rows in the grid
func (p *Puzzle) Height() int {
	return len(p.Rows)
}

// DeriveColumns builds column i from character i of every row, top to bottom.
// All rows must have the same length.
func DeriveColumns(rows []string) []string {
	if len(rows) == 0 {
		return nil
	}

	width := len(rows[0])
	columns := make([]string, width)

	var col strings.Builder
	for x := 0; x < width; x++ {
		col.Reset()
		col.Grow(len(rows))
		for _, row := range rows {
			col.WriteByte(row[x])
		}
		columns[x] = col.String()
	}

	return columns
}
