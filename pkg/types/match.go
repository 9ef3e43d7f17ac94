package types

// Axis identifies whether a line of the grid is a row or a column
type Axis string

const (
	AxisHorizontal Axis = "horizontal"
	AxisVertical   Axis = "vertical"
)

// Position is a 0-indexed grid coordinate: X is the column, Y is the row
type Position struct {
	X int
	Y int
}

// Match is one located occurrence of a word in the grid
type Match struct {
	Word  string // Upper-case form of the searched word
	Start Position
	End   Position
	Axis  Axis
}

// Length returns the number of cells the match covers
func (m *Match) Length() int {
	if m.Axis == AxisVertical {
		return abs(m.End.Y-m.Start.Y) + 1
	}
	return abs(m.End.X-m.Start.X) + 1
}

// IsBackward returns true if the word reads right-to-left or bottom-to-top
func (m *Match) IsBackward() bool {
	if m.Axis == AxisVertical {
		return m.Start.Y > m.End.Y
	}
	return m.Start.X > m.End.X
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
