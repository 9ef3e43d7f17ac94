// Package formatter renders search results as the solver's text output.
//
// Each word of the puzzle produces one line, in word-list order:
//
//	CAT (3, 1) (1, 1)
//	DOG not found
//
// Coordinates are (column, row) pairs for the first and last letter, shifted
// by Options.Offset; DefaultOptions uses 1 so the top-left cell is (1, 1).
// With Options.AllMatches every match gets its own line.
//
// Records produces the same information as JSON-friendly structs.
package formatter
