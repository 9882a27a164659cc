package ai

import (
	"log"
	"time"

	"golang.org/x/net/context"

	"github.com/nelhage/mnk/mnk"
	"github.com/nelhage/mnk/notation"
)

// How a Selector arrived at its move.
type Reason byte

const (
	ReasonWin Reason = iota + 1
	ReasonBlock
	ReasonSearch
	ReasonFallback
)

func (r Reason) String() string {
	switch r {
	case ReasonWin:
		return "win"
	case ReasonBlock:
		return "block"
	case ReasonSearch:
		return "search"
	case ReasonFallback:
		return "fallback"
	}
	return "none"
}

// Selector picks the engine's moves. It takes an immediate win if one
// exists, otherwise blocks an immediate win of the opponent, and only then
// falls back to a full search.
type Selector struct {
	mm *MinimaxAI

	reason Reason
	value  int64
	stats  []Stats
}

func NewSelector(cfg Config) *Selector {
	return &Selector{mm: NewMinimax(cfg)}
}

func (s *Selector) Side() mnk.Player {
	return s.mm.cfg.Side
}

// Limit is the time budget of each search.
func (s *Selector) Limit() time.Duration {
	return s.mm.cfg.Limit
}

// SetLimit changes the time budget of subsequent searches. A non-positive
// limit selects DefaultLimit.
func (s *Selector) SetLimit(d time.Duration) {
	if d <= 0 {
		d = DefaultLimit
	}
	s.mm.cfg.Limit = d
}

// Reason reports how the last move was chosen.
func (s *Selector) Reason() Reason {
	return s.reason
}

// Stats returns the per-depth statistics of the last search, if the last
// move required one.
func (s *Selector) Stats() []Stats {
	return s.stats
}

// Value is the search value behind the last move, from Second's point of
// view. It is only meaningful when Reason is ReasonSearch.
func (s *Selector) Value() int64 {
	return s.value
}

func (s *Selector) GetMove(ctx context.Context, b *mnk.Board) (mnk.Move, error) {
	return s.SelectMove(ctx, b)
}

// MakeMove selects a move for the engine's side and plays it on b.
func (s *Selector) MakeMove(ctx context.Context, b *mnk.Board) (mnk.Move, error) {
	m, err := s.SelectMove(ctx, b)
	if err != nil {
		return m, err
	}
	if err := b.Place(m.Row, m.Col, s.Side()); err != nil {
		return mnk.NoMove, err
	}
	return m, nil
}

// SelectMove chooses a move without changing b.
func (s *Selector) SelectMove(ctx context.Context, b *mnk.Board) (mnk.Move, error) {
	start := time.Now()
	s.stats = nil
	s.value = 0
	me := s.Side()
	debug := s.mm.cfg.Debug

	if b.IsFull() {
		s.reason = 0
		return mnk.NoMove, ErrNoLegalMove
	}

	if m, ok := findImmediateWin(b, me); ok {
		s.reason = ReasonWin
		if debug > 0 {
			log.Printf("[selector] immediate win %s in %s", notation.FormatMove(m), time.Since(start))
		}
		return m, nil
	}
	if m, ok := findImmediateWin(b, me.Opponent()); ok {
		s.reason = ReasonBlock
		if debug > 0 {
			log.Printf("[selector] block %s in %s", notation.FormatMove(m), time.Since(start))
		}
		return m, nil
	}

	m, v, st := s.mm.Analyze(ctx, b)
	s.stats = st
	if debug > 0 {
		var nodes uint64
		for _, d := range st {
			nodes += d.Visited
		}
		log.Printf("[selector] search move=%s val=%d depths=%d nodes=%d time=%s",
			notation.FormatMove(m), v, len(st), nodes, time.Since(start))
	}
	if m.Valid() {
		s.reason = ReasonSearch
		s.value = v
		return m, nil
	}

	s.reason = ReasonFallback
	empty := b.EmptyCells()
	if debug > 0 {
		log.Printf("[selector] no search result, falling back to %s", notation.FormatMove(empty[0]))
	}
	return empty[0], nil
}

// findImmediateWin returns the first empty cell, in row-major order, on
// which player completes a line.
func findImmediateWin(b *mnk.Board, player mnk.Player) (mnk.Move, bool) {
	for _, m := range b.EmptyCells() {
		b.Place(m.Row, m.Col, player)
		won := b.CheckWin(player)
		b.Clear(m.Row, m.Col)
		if won {
			return m, true
		}
	}
	return mnk.NoMove, false
}
