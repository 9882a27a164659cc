package mnk

// Player identifies one side of the game. First is the human side and
// carries the value +1; Second is the engine side and carries -1.
type Player int8

const (
	NoPlayer Player = 0
	First    Player = 1
	Second   Player = -1
)

func (p Player) Value() int {
	return int(p)
}

func (p Player) Opponent() Player {
	return -p
}

func (p Player) Cell() Cell {
	switch p {
	case First:
		return FirstMark
	case Second:
		return SecondMark
	}
	return Empty
}

func (p Player) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	case NoPlayer:
		return "none"
	}
	return "unknown"
}

// Cell is the contents of a single square.
type Cell byte

const (
	Empty Cell = iota
	FirstMark
	SecondMark
)

func (c Cell) Player() Player {
	switch c {
	case FirstMark:
		return First
	case SecondMark:
		return Second
	}
	return NoPlayer
}

func (c Cell) String() string {
	switch c {
	case FirstMark:
		return "X"
	case SecondMark:
		return "O"
	}
	return "."
}
