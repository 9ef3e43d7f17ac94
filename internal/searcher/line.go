package searcher

import (
	"strings"

	"github.com/dshills/wordsearch/pkg/types"
)

// MatchLine finds every forward and backward occurrence of word in one grid
// line. index is the row number for a horizontal line or the column number
// for a vertical one. Comparison is case-insensitive.
//
// Backward matches come first, with Start at the higher index. Palindromes
// are only searched forwards, since the backward scan would report the same
// cells a second time.
func MatchLine(word, line string, index int, axis types.Axis) []types.Match {
	lowerWord := strings.ToLower(word)
	lowerLine := strings.ToLower(line)
	display := strings.ToUpper(word)

	forward := Locate(lowerWord, lowerLine)

	var spans []Span
	if isPalindrome(lowerWord) {
		spans = forward
	} else {
		backward := Locate(reverse(lowerWord), lowerLine)
		spans = make([]Span, 0, len(backward)+len(forward))
		for _, s := range backward {
			spans = append(spans, Span{Start: s.End, End: s.Start})
		}
		spans = append(spans, forward...)
	}

	if len(spans) == 0 {
		return nil
	}

	matches := make([]types.Match, len(spans))
	for i, s := range spans {
		matches[i] = newMatch(display, s, index, axis)
	}
	return matches
}

// newMatch places a span on the grid. The span indexes run along the line;
// index is the fixed coordinate.
func newMatch(word string, s Span, index int, axis types.Axis) types.Match {
	m := types.Match{Word: word, Axis: axis}
	if axis == types.AxisVertical {
		m.Start = types.Position{X: index, Y: s.Start}
		m.End = types.Position{X: index, Y: s.End}
	} else {
		m.Start = types.Position{X: s.Start, Y: index}
		m.End = types.Position{X: s.End, Y: index}
	}
	return m
}

// isPalindrome reports whether word reads the same reversed, ignoring case
func isPalindrome(word string) bool {
	lower := strings.ToLower(word)
	return reverse(lower) == lower
}

// reverse reverses s byte by byte
func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
