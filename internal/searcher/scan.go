package searcher

import "github.com/dshills/wordsearch/pkg/types"

// Scan searches every row, then every column, for word. Results keep that
// order: rows top to bottom, then columns left to right. Either slice may be
// empty.
func Scan(word string, rows, columns []string) []types.Match {
	var matches []types.Match

	for y, row := range rows {
		matches = append(matches, MatchLine(word, row, y, types.AxisHorizontal)...)
	}

	for x, col := range columns {
		matches = append(matches, MatchLine(word, col, x, types.AxisVertical)...)
	}

	return matches
}
