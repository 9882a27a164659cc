package ai

import (
	"math/rand"

	"github.com/nelhage/mnk/mnk"
	"golang.org/x/net/context"
)

type RandomAI struct {
	r *rand.Rand
}

func (r *RandomAI) GetMove(ctx context.Context, b *mnk.Board) (mnk.Move, error) {
	moves := b.EmptyCells()
	if len(moves) == 0 {
		return mnk.NoMove, ErrNoLegalMove
	}
	return moves[r.r.Intn(len(moves))], nil
}

func NewRandom(seed int64) *RandomAI {
	return &RandomAI{
		r: rand.New(rand.NewSource(seed)),
	}
}
