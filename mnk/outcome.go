package mnk

type Result byte

const (
	InProgress Result = iota
	Win
	Draw
)

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Draw:
		return "draw"
	}
	return "in progress"
}

// Outcome describes the state of a game. Winner is only meaningful when
// Result is Win.
type Outcome struct {
	Result Result
	Winner Player
}

func (o Outcome) Over() bool {
	return o.Result != InProgress
}

func (o Outcome) String() string {
	if o.Result == Win {
		return o.Winner.String() + " wins"
	}
	return o.Result.String()
}

// Outcome computes the game result from the current cells.
func (b *Board) Outcome() Outcome {
	for _, p := range []Player{First, Second} {
		if b.CheckWin(p) {
			return Outcome{Result: Win, Winner: p}
		}
	}
	if b.IsFull() {
		return Outcome{Result: Draw}
	}
	return Outcome{Result: InProgress}
}
