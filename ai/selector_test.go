package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/mnk/mnk"
	"github.com/nelhage/mnk/mnktest"
	"github.com/nelhage/mnk/notation"
)

func TestSelectorBlocks(t *testing.T) {
	b, err := notation.ParseBoard(`1,1,x/x,2,x/x3 3`)
	require.NoError(t, err)
	s := NewSelector(Config{})
	m, err := s.MakeMove(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, mnk.Move{Row: 0, Col: 2}, m)
	assert.Equal(t, mnk.SecondMark, b.At(0, 2))
	assert.Equal(t, ReasonBlock, s.Reason())
	assert.Nil(t, s.Stats())
}

func TestSelectorWins(t *testing.T) {
	b, err := notation.ParseBoard(`2,2,x/1,x2/x,1,1 3`)
	require.NoError(t, err)
	s := NewSelector(Config{})
	m, err := s.MakeMove(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, mnk.Move{Row: 0, Col: 2}, m)
	assert.True(t, b.CheckWin(mnk.Second))
	assert.Equal(t, ReasonWin, s.Reason())
}

func TestSelectorPrefersWinOverBlock(t *testing.T) {
	b, err := notation.ParseBoard(`1,1,x,x/2,2,x,x/x4/x3,1 3`)
	require.NoError(t, err)
	s := NewSelector(Config{})
	m, err := s.SelectMove(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, mnk.Move{Row: 1, Col: 2}, m)
	assert.Equal(t, ReasonWin, s.Reason())
	assert.Equal(t, mnk.Empty, b.At(1, 2), "SelectMove must not modify the board")
}

func TestSelectorFullBoard(t *testing.T) {
	b, err := notation.ParseBoard(`1,2,1/1,2,2/2,1,1 3`)
	require.NoError(t, err)
	assert.Equal(t, mnk.Outcome{Result: mnk.Draw}, b.Outcome())
	s := NewSelector(Config{})
	_, err = s.MakeMove(context.Background(), b)
	assert.Equal(t, ErrNoLegalMove, err)
}

func TestSelectorFallback(t *testing.T) {
	b := mnktest.Position(3, 3, "b2")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewSelector(Config{Limit: time.Hour})
	m, err := s.MakeMove(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, mnk.Move{Row: 0, Col: 0}, m)
	assert.Equal(t, ReasonFallback, s.Reason())
}

func TestSelectorTinyBudget(t *testing.T) {
	for _, cfg := range [][2]int{{3, 3}, {7, 4}, {15, 5}} {
		b, _ := mnk.New(cfg[0], cfg[1])
		b.Place(cfg[0]/2, cfg[0]/2, mnk.First)
		s := NewSelector(Config{Limit: time.Nanosecond})
		m, err := s.MakeMove(context.Background(), b)
		require.NoError(t, err)
		assert.True(t, b.InBounds(m.Row, m.Col))
		assert.Equal(t, mnk.SecondMark, b.At(m.Row, m.Col))
	}
}

func TestSelectorSearches(t *testing.T) {
	b := mnktest.Board(`x3/x,1,x/x3 3`)
	s := NewSelector(Config{Limit: time.Hour})
	m, err := s.SelectMove(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, ReasonSearch, s.Reason())
	assert.Contains(t, []mnk.Move{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}, m)
	assert.NotEmpty(t, s.Stats())
	assert.Equal(t, int64(0), s.Value())
}

func TestSelectorNeverLosesAt3x3(t *testing.T) {
	// Every reply by First is tried against the engine.
	var play func(b *mnk.Board)
	s := NewSelector(Config{Limit: time.Hour})
	play = func(b *mnk.Board) {
		if b.Outcome().Over() {
			if b.CheckWin(mnk.First) {
				t.Fatalf("engine lost: %s", notation.FormatBoard(b))
			}
			return
		}
		for _, m := range b.EmptyCells() {
			child := b.Clone()
			child.Place(m.Row, m.Col, mnk.First)
			if !child.Outcome().Over() {
				if _, err := s.MakeMove(context.Background(), child); err != nil {
					t.Fatalf("MakeMove: %v", err)
				}
			}
			play(child)
		}
	}
	b, _ := mnk.New(3, 3)
	play(b)
}

func TestSelectorSetLimit(t *testing.T) {
	s := NewSelector(Config{Limit: time.Second})
	assert.Equal(t, time.Second, s.Limit())
	s.SetLimit(time.Minute)
	assert.Equal(t, time.Minute, s.Limit())
	s.SetLimit(0)
	assert.Equal(t, DefaultLimit, s.Limit())
}
