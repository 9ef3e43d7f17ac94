// Package parser reads word search puzzle files into types.Puzzle values.
//
// A puzzle file has two sections separated by a blank line: the grid, one row
// of letters per line, followed by the words to search for, one per line.
//
//	CATX
//	OWLD
//	GOAT
//
//	cat
//	goat
//	owl
//
// # Basic Usage
//
//	p := parser.New()
//	puzzle, err := p.ParseFile("/path/to/puzzle.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("%dx%d grid, %d words\n", puzzle.Width(), puzzle.Height(), len(puzzle.Words))
//
// # Parsing Rules
//
// Lines are processed in order by a two-state machine:
//   - Non-blank lines are grid rows until the first blank line that follows
//     at least one row; after that they are words
//   - Blank lines before the grid are ignored
//   - Blank lines inside the word section are ignored
//   - Leading and trailing whitespace, including the \r of CRLF line
//     endings, is removed from every line
//
// Columns are derived from the rows once parsing finishes.
//
// # Character Set
//
// Input is treated as ASCII. Row length, column derivation and every
// coordinate count bytes, and case folding is only exact for ASCII letters.
// A multi-byte UTF-8 letter occupies several grid cells, and case folding
// that changes a letter's byte length shifts reported positions.
//
// # Error Handling
//
// Validation runs after the whole input is read. A puzzle with no grid rows,
// no words, or rows of differing lengths is rejected with a
// *types.MalformedPuzzleError:
//
//	_, err := p.ParseFile("ragged.txt")
//	if errors.Is(err, types.ErrInconsistentRows) {
//	    fmt.Println(err) // malformed puzzle: grid rows have inconsistent lengths (...)
//	}
//
// Read failures are wrapped and returned as ordinary errors.
//
// ParseGrid accepts input with no word section, for callers that supply the
// words separately.
package parser
