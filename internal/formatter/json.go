package formatter

import (
	"strings"

	"github.com/dshills/wordsearch/pkg/types"
)

// Coordinate is an offset-adjusted position for structured output
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MatchRecord is one match in structured output
type MatchRecord struct {
	Start     Coordinate `json:"start"`
	End       Coordinate `json:"end"`
	Direction string     `json:"direction"`
}

// WordRecord is the structured result for one word-list entry
type WordRecord struct {
	Word    string        `json:"word"`
	Found   bool          `json:"found"`
	Matches []MatchRecord `json:"matches"`
}

// Records converts results into JSON-friendly records. Every match is
// included; Found mirrors the "not found" line of the text output.
func Records(results types.ResultSet, offset int) []WordRecord {
	records := make([]WordRecord, len(results))

	for i := range results {
		wr := &results[i]
		rec := WordRecord{
			Word:    strings.ToUpper(wr.Word),
			Found:   wr.Found(),
			Matches: make([]MatchRecord, 0, len(wr.Matches)),
		}

		for _, m := range wr.Matches {
			rec.Matches = append(rec.Matches, MatchRecord{
				Start:     Coordinate{X: m.Start.X + offset, Y: m.Start.Y + offset},
				End:       Coordinate{X: m.End.X + offset, Y: m.End.Y + offset},
				Direction: Direction(m),
			})
		}

		records[i] = rec
	}

	return records
}

// Direction names the reading direction of a match: right, left, down or up
func Direction(m types.Match) string {
	switch {
	case m.Axis == types.AxisVertical && m.IsBackward():
		return "up"
	case m.Axis == types.AxisVertical:
		return "down"
	case m.IsBackward():
		return "left"
	default:
		return "right"
	}
}
