// Package mnktest has helpers for building boards in tests. Every helper
// panics on malformed input.
package mnktest

import (
	"github.com/nelhage/mnk/mnk"
	"github.com/nelhage/mnk/notation"
)

func Move(s string) mnk.Move {
	m, e := notation.ParseMove(s)
	if e != nil {
		panic(e)
	}
	return m
}

func Moves(s string) []mnk.Move {
	ms, e := notation.ParseMoves(s)
	if e != nil {
		panic(e)
	}
	return ms
}

// Board parses a position in MBN form.
func Board(mbn string) *mnk.Board {
	b, e := notation.ParseBoard(mbn)
	if e != nil {
		panic(e)
	}
	return b
}

// Position plays ms alternately, First moving first, on an empty board.
func Position(size, k int, ms string) *mnk.Board {
	b, e := mnk.New(size, k)
	if e != nil {
		panic(e)
	}
	for _, m := range Moves(ms) {
		if e := b.Place(m.Row, m.Col, b.ToMove()); e != nil {
			panic(e)
		}
	}
	return b
}
