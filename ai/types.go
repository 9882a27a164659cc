package ai

import (
	"github.com/nelhage/mnk/mnk"
	"golang.org/x/net/context"
)

// Player chooses a move for the side to play without modifying the board.
type Player interface {
	GetMove(ctx context.Context, b *mnk.Board) (mnk.Move, error)
}
