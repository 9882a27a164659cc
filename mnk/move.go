package mnk

import "fmt"

// Move is a 0-indexed (row, col) coordinate.
type Move struct {
	Row, Col int
}

// NoMove is returned by searches that did not produce a move.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) Valid() bool {
	return m.Row >= 0 && m.Col >= 0
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}
