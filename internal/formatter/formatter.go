package formatter

import (
	"fmt"
	"strings"

	"github.com/dshills/wordsearch/pkg/types"
)

// DefaultOffset turns 0-indexed grid coordinates into the 1-indexed ones
// shown to users
const DefaultOffset = 1

// Options controls how results are rendered
type Options struct {
	AllMatches bool // Render every match instead of only the first
	Offset     int  // Added to every coordinate
}

// DefaultOptions returns first-match output with 1-indexed coordinates
func DefaultOptions() Options {
	return Options{
		AllMatches: false,
		Offset:     DefaultOffset,
	}
}

// Format renders one line per word in word-list order, or one line per match
// in all-matches mode. Words without a match render as "WORD not found".
func Format(results types.ResultSet, opts Options) string {
	var out strings.Builder

	for i := range results {
		wr := &results[i]

		if !wr.Found() {
			out.WriteString(NotFound(wr.Word))
			out.WriteByte('\n')
			continue
		}

		matches := wr.Matches
		if !opts.AllMatches {
			matches = matches[:1]
		}

		for _, m := range matches {
			out.WriteString(formatLine(wr.Word, m, opts.Offset))
			out.WriteByte('\n')
		}
	}

	return out.String()
}

// FormatMatch renders a single match as "WORD (sx, sy) (ex, ey)"
func FormatMatch(m types.Match, offset int) string {
	return formatLine(m.Word, m, offset)
}

// NotFound renders the line for a word with no match
func NotFound(word string) string {
	return strings.ToUpper(word) + " not found"
}

func formatLine(word string, m types.Match, offset int) string {
	return fmt.Sprintf("%s (%d, %d) (%d, %d)",
		strings.ToUpper(word),
		m.Start.X+offset, m.Start.Y+offset,
		m.End.X+offset, m.End.Y+offset)
}
