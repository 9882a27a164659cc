// Package game pairs a board with the engine that plays Second against a
// human playing First.
package game

import (
	"errors"

	"golang.org/x/net/context"

	"github.com/nelhage/mnk/ai"
	"github.com/nelhage/mnk/mnk"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrNotYourTurn = errors.New("not your turn")
)

type Game struct {
	board  *mnk.Board
	engine *ai.Selector
	moves  []mnk.Move
}

// New starts a game on an empty size×size board where k in a row wins.
// cfg configures the engine; its Side is always Second.
func New(size, k int, cfg ai.Config) (*Game, error) {
	b, err := mnk.New(size, k)
	if err != nil {
		return nil, err
	}
	cfg.Side = mnk.Second
	return &Game{
		board:  b,
		engine: ai.NewSelector(cfg),
	}, nil
}

// Board returns the live board. Callers must not modify it.
func (g *Game) Board() *mnk.Board {
	return g.board
}

func (g *Game) Engine() *ai.Selector {
	return g.engine
}

// Moves lists the moves played so far, in order.
func (g *Game) Moves() []mnk.Move {
	return append([]mnk.Move(nil), g.moves...)
}

func (g *Game) Outcome() mnk.Outcome {
	return g.board.Outcome()
}

func (g *Game) ToMove() mnk.Player {
	return g.board.ToMove()
}

func (g *Game) PlayHuman(row, col int) error {
	if err := g.checkTurn(mnk.First); err != nil {
		return err
	}
	if err := g.board.Place(row, col, mnk.First); err != nil {
		return err
	}
	g.moves = append(g.moves, mnk.Move{Row: row, Col: col})
	return nil
}

// PlayEngine lets the engine choose and play its move.
func (g *Game) PlayEngine(ctx context.Context) (mnk.Move, error) {
	if err := g.checkTurn(mnk.Second); err != nil {
		return mnk.NoMove, err
	}
	m, err := g.engine.MakeMove(ctx, g.board)
	if err != nil {
		return mnk.NoMove, err
	}
	g.moves = append(g.moves, m)
	return m, nil
}

func (g *Game) checkTurn(p mnk.Player) error {
	if g.board.Outcome().Over() {
		return ErrGameOver
	}
	if g.board.ToMove() != p {
		return ErrNotYourTurn
	}
	return nil
}
