package ai

import (
	"errors"
	"log"
	"time"

	"golang.org/x/net/context"

	"github.com/nelhage/mnk/mnk"
	"github.com/nelhage/mnk/notation"
)

const (
	// MaxEval and MinEval stand for a proven win for Second and First
	// respectively. Heuristic scores never reach WinThreshold.
	MaxEval      int64 = 1 << 62
	MinEval            = -MaxEval
	WinThreshold       = 1 << 61

	maxDepth = 100

	DefaultLimit = 10 * time.Millisecond
)

var ErrNoLegalMove = errors.New("no legal move")

type Stats struct {
	Depth     int
	Visited   uint64
	Evaluated uint64
	Terminal  uint64
	CutNodes  uint64
	Elapsed   time.Duration
	// Aborted marks a pass cut short by the time limit; its result was
	// discarded.
	Aborted bool
}

// CompletedDepth is the deepest pass in st that ran to completion, or 0.
func CompletedDepth(st []Stats) int {
	depth := 0
	for _, s := range st {
		if !s.Aborted {
			depth = s.Depth
		}
	}
	return depth
}

type Config struct {
	// Depth caps iterative deepening. Zero means maxDepth.
	Depth int
	// Limit is the wall-clock budget of one search. It is checked at
	// every node and between depths, so it may be overshot.
	Limit time.Duration
	Debug int

	// Side is the player the engine moves for; NoPlayer means Second.
	Side mnk.Player

	// UpdateHistory credits moves that cause cutoffs in the history
	// table. When unset the table stays empty and moves are searched in
	// row-major order.
	UpdateHistory bool
}

type MinimaxAI struct {
	cfg Config

	st Stats

	history historyTable

	ctx     context.Context
	start   time.Time
	aborted bool

	stack [][]mnk.Move
}

func NewMinimax(cfg Config) *MinimaxAI {
	m := &MinimaxAI{cfg: cfg}
	if m.cfg.Depth <= 0 {
		m.cfg.Depth = maxDepth
	}
	if m.cfg.Limit <= 0 {
		m.cfg.Limit = DefaultLimit
	}
	if m.cfg.Side == mnk.NoPlayer {
		m.cfg.Side = mnk.Second
	}
	m.history = make(historyTable)
	return m
}

func (m *MinimaxAI) Config() Config {
	return m.cfg
}

func (m *MinimaxAI) GetMove(ctx context.Context, b *mnk.Board) (mnk.Move, error) {
	mv, _, _ := m.Analyze(ctx, b)
	if !mv.Valid() {
		return mnk.NoMove, ErrNoLegalMove
	}
	return mv, nil
}

// Analyze runs an iterative-deepening search for cfg.Side and returns the
// move of the deepest completed depth, its value from Second's point of
// view, and per-depth statistics. The board is restored before Analyze
// returns. If no depth completes the move is mnk.NoMove.
// Deepening stops early once a pass proves a win or loss.
func (m *MinimaxAI) Analyze(ctx context.Context, b *mnk.Board) (mnk.Move, int64, []Stats) {
	if m.cfg.UpdateHistory {
		for mv, v := range m.history {
			m.history[mv] = v / 2
		}
	}
	m.reset(ctx)

	maximizing := m.cfg.Side == mnk.Second
	empty := len(b.EmptyCells())

	best := mnk.NoMove
	var v int64
	var stats []Stats
	for depth := 1; depth <= m.cfg.Depth; depth++ {
		m.st = Stats{Depth: depth}
		start := time.Now()
		score, mv := m.alphaBeta(b, 0, depth, MinEval, MaxEval, maximizing)
		m.st.Elapsed = time.Since(start)
		m.st.Aborted = m.aborted
		stats = append(stats, m.st)
		if m.aborted {
			if m.cfg.Debug > 0 {
				log.Printf("[minimax] abort: depth=%d nodes=%d total=%s",
					depth, m.st.Visited, time.Since(m.start))
			}
			break
		}
		if mv.Valid() {
			best, v = mv, score
		}
		if m.cfg.Debug > 0 {
			log.Printf("[minimax] deepen: depth=%d val=%d move=%s time=%s total=%s nodes=%d",
				depth, score, notation.FormatMove(mv), m.st.Elapsed, time.Since(m.start), m.st.Visited)
		}
		if m.cfg.Debug > 1 {
			log.Printf("[minimax]  stats: visited=%d evaluated=%d terminal=%d cut=%d",
				m.st.Visited, m.st.Evaluated, m.st.Terminal, m.st.CutNodes)
		}
		if score >= MaxEval || score <= MinEval {
			break
		}
		if depth >= empty {
			break
		}
		if time.Since(m.start) > m.cfg.Limit {
			break
		}
	}
	return best, v, stats
}

func (m *MinimaxAI) reset(ctx context.Context) {
	m.ctx = ctx
	m.start = time.Now()
	m.aborted = false
}

func (m *MinimaxAI) timedOut() bool {
	if m.aborted {
		return true
	}
	if time.Since(m.start) > m.cfg.Limit || m.ctx.Err() != nil {
		m.aborted = true
	}
	return m.aborted
}

// alphaBeta searches b to the given depth. Second maximizes. A timed-out
// call returns (0, NoMove) and sets m.aborted; callers must discard the
// result. b is unchanged on return.
func (m *MinimaxAI) alphaBeta(b *mnk.Board, ply, depth int, α, β int64, maximizing bool) (int64, mnk.Move) {
	m.st.Visited++
	if m.timedOut() {
		return 0, mnk.NoMove
	}
	if b.CheckWin(mnk.Second) {
		m.st.Terminal++
		return MaxEval, mnk.NoMove
	}
	if b.CheckWin(mnk.First) {
		m.st.Terminal++
		return MinEval, mnk.NoMove
	}
	if depth == 0 || b.IsFull() {
		m.st.Evaluated++
		return Evaluate(b), mnk.NoMove
	}

	moves := m.generate(b, ply)

	player, best := mnk.First, MaxEval
	if maximizing {
		player, best = mnk.Second, MinEval
	}
	bestMove := mnk.NoMove
	for _, mv := range moves {
		b.Place(mv.Row, mv.Col, player)
		v, _ := m.alphaBeta(b, ply+1, depth-1, α, β, !maximizing)
		b.Clear(mv.Row, mv.Col)
		if m.aborted {
			return 0, mnk.NoMove
		}

		if maximizing {
			if v > best || !bestMove.Valid() {
				best, bestMove = v, mv
			}
			if best > α {
				α = best
			}
		} else {
			if v < best || !bestMove.Valid() {
				best, bestMove = v, mv
			}
			if best < β {
				β = best
			}
		}
		if β <= α {
			m.st.CutNodes++
			if m.cfg.UpdateHistory {
				m.history.credit(mv, depth)
			}
			break
		}
	}
	return best, bestMove
}
