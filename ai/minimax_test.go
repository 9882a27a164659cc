package ai

import (
	"context"
	"flag"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/mnk/mnk"
	"github.com/nelhage/mnk/notation"
)

var size = flag.Int("size", 4, "board size to benchmark")
var k = flag.Int("k", 3, "win condition to benchmark")
var depth = flag.Int("depth", 4, "minimax search depth")

// plainMinimax is an unpruned reference search with the same terminal and
// cutoff rules as alphaBeta.
func plainMinimax(b *mnk.Board, depth int, maximizing bool, memo map[string]int64) int64 {
	key := notation.FormatBoard(b)
	if maximizing {
		key += " s"
	}
	key += string(rune('0' + depth))
	if v, ok := memo[key]; ok {
		return v
	}
	var v int64
	switch {
	case b.CheckWin(mnk.Second):
		v = MaxEval
	case b.CheckWin(mnk.First):
		v = MinEval
	case depth == 0 || b.IsFull():
		v = Evaluate(b)
	default:
		player := mnk.First
		v = MaxEval
		if maximizing {
			player = mnk.Second
			v = MinEval
		}
		for _, m := range b.EmptyCells() {
			b.Place(m.Row, m.Col, player)
			child := plainMinimax(b, depth-1, !maximizing, memo)
			b.Clear(m.Row, m.Col)
			if maximizing && child > v {
				v = child
			}
			if !maximizing && child < v {
				v = child
			}
		}
	}
	memo[key] = v
	return v
}

// reachable returns every position reachable from an empty board by
// alternating play that stops once someone has won.
func reachable(size, k int) []*mnk.Board {
	seen := make(map[string]bool)
	var out []*mnk.Board
	var walk func(b *mnk.Board)
	walk = func(b *mnk.Board) {
		key := notation.FormatBoard(b)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, b.Clone())
		if b.Outcome().Over() {
			return
		}
		p := b.ToMove()
		for _, m := range b.EmptyCells() {
			b.Place(m.Row, m.Col, p)
			walk(b)
			b.Clear(m.Row, m.Col)
		}
	}
	b, _ := mnk.New(size, k)
	walk(b)
	return out
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	positions := reachable(3, 3)
	if len(positions) != 5478 {
		t.Fatalf("reachable positions=%d, want 5478", len(positions))
	}
	memo := make(map[string]int64)
	ai := NewMinimax(Config{Limit: time.Hour})
	for _, b := range positions {
		maximizing := b.ToMove() == mnk.Second
		for _, d := range []int{1, 2, len(b.EmptyCells())} {
			ai.reset(context.Background())
			before := b.Clone()
			got, _ := ai.alphaBeta(b, 0, d, MinEval, MaxEval, maximizing)
			want := plainMinimax(b, d, maximizing, memo)
			if got != want {
				t.Fatalf("%s depth=%d: alphaBeta=%d minimax=%d",
					notation.FormatBoard(b), d, got, want)
			}
			if !b.Equal(before) {
				t.Fatalf("%s: board modified by search", notation.FormatBoard(b))
			}
		}
	}
}

func TestSearchRestoresBoard(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 30; trial++ {
		b := randomPosition(r, 4, 3, r.Intn(8))
		if b.Outcome().Over() {
			continue
		}
		before := b.Clone()
		ai := NewMinimax(Config{Depth: 3, Limit: time.Hour, UpdateHistory: trial%2 == 0})
		ai.Analyze(context.Background(), b)
		require.True(t, b.Equal(before), "board modified: %s", notation.FormatBoard(b))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Microsecond)
		ai = NewMinimax(Config{Limit: time.Hour})
		ai.Analyze(ctx, b)
		cancel()
		require.True(t, b.Equal(before), "board modified after timeout: %s", notation.FormatBoard(b))
	}
}

func TestAnalyzeFindsWin(t *testing.T) {
	b, err := notation.ParseBoard(`2,2,x/1,1,x/1,x2 3`)
	require.NoError(t, err)
	ai := NewMinimax(Config{Limit: time.Hour})
	m, v, st := ai.Analyze(context.Background(), b)
	assert.Equal(t, mnk.Move{Row: 0, Col: 2}, m)
	assert.Equal(t, MaxEval, v)
	assert.Len(t, st, 1, "a proven win ends iterative deepening")
}

func TestAnalyzeAsFirst(t *testing.T) {
	b, err := notation.ParseBoard(`1,1,x/2,2,x/x3 3`)
	require.NoError(t, err)
	ai := NewMinimax(Config{Limit: time.Hour, Side: mnk.First})
	m, v, _ := ai.Analyze(context.Background(), b)
	assert.Equal(t, mnk.Move{Row: 0, Col: 2}, m)
	assert.Equal(t, MinEval, v)
}

func TestAnalyzeExhaustive(t *testing.T) {
	b, err := notation.ParseBoard(`x3/x,1,x/x3 3`)
	require.NoError(t, err)
	ai := NewMinimax(Config{Limit: time.Hour})
	m, v, st := ai.Analyze(context.Background(), b)
	corners := []mnk.Move{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}
	assert.Contains(t, corners, m)
	assert.Equal(t, int64(0), v)
	assert.Len(t, st, 8, "deepening stops once every empty cell is searched")
	for i, s := range st {
		assert.Equal(t, i+1, s.Depth)
		assert.NotZero(t, s.Visited)
		assert.False(t, s.Aborted)
	}
	assert.Equal(t, 8, CompletedDepth(st))
}

func TestAnalyzeCancelled(t *testing.T) {
	b, _ := mnk.New(3, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ai := NewMinimax(Config{Limit: time.Hour})
	m, _, st := ai.Analyze(ctx, b)
	assert.Equal(t, mnk.NoMove, m)
	require.Len(t, st, 1)
	assert.True(t, st[0].Aborted)
	assert.Equal(t, 0, CompletedDepth(st))
	if _, err := ai.GetMove(ctx, b); err != ErrNoLegalMove {
		t.Errorf("GetMove err=%v", err)
	}
}

func TestAnalyzeRespectsDepth(t *testing.T) {
	b, _ := mnk.New(5, 4)
	ai := NewMinimax(Config{Depth: 2, Limit: time.Hour})
	m, _, st := ai.Analyze(context.Background(), b)
	assert.True(t, m.Valid())
	assert.Len(t, st, 2)
}

func TestCompletedDepth(t *testing.T) {
	cases := []struct {
		st   []Stats
		want int
	}{
		{nil, 0},
		{[]Stats{{Depth: 1}, {Depth: 2}}, 2},
		{[]Stats{{Depth: 1}, {Depth: 2}, {Depth: 3, Aborted: true}}, 2},
		{[]Stats{{Depth: 1, Aborted: true}}, 0},
	}
	for i, tc := range cases {
		assert.Equal(t, tc.want, CompletedDepth(tc.st), "case %d", i)
	}
}

func TestAnalyzeTimedOutPassDiscarded(t *testing.T) {
	b, _ := mnk.New(9, 5)
	b.Place(4, 4, mnk.First)
	ai := NewMinimax(Config{Limit: 20 * time.Millisecond})
	m, _, st := ai.Analyze(context.Background(), b)
	require.NotEmpty(t, st)
	for _, s := range st[:len(st)-1] {
		assert.False(t, s.Aborted, "only the last pass can be cut short")
	}
	last := st[len(st)-1]
	if last.Aborted {
		assert.Equal(t, last.Depth-1, CompletedDepth(st))
	} else {
		assert.Equal(t, last.Depth, CompletedDepth(st))
	}
	assert.Equal(t, CompletedDepth(st) > 0, m.Valid())
}

func BenchmarkMinimax(b *testing.B) {
	ai := NewMinimax(Config{Depth: *depth, Limit: time.Hour})
	p, _ := mnk.New(*size, *k)
	for i := 0; i < b.N; i++ {
		m, e := ai.GetMove(context.Background(), p)
		if e != nil {
			b.Fatal("no move", e)
		}
		p.Place(m.Row, m.Col, p.ToMove())
		if p.Outcome().Over() {
			p, _ = mnk.New(*size, *k)
		}
	}
}
