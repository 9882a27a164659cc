package ai

import (
	"context"
	"testing"
	"time"

	"github.com/nelhage/mnk/mnk"
	"github.com/nelhage/mnk/mnktest"
	"github.com/nelhage/mnk/notation"
)

func TestMoveGeneratorRowMajor(t *testing.T) {
	b, _ := notation.ParseBoard(`1,x2/x,2,x/x2,1 3`)
	ai := NewMinimax(Config{})

	got := notation.FormatMoves(ai.generate(b, 0))
	if want := "b1 c1 a2 c2 a3 b3"; got != want {
		t.Errorf("generate=%q want %q", got, want)
	}
}

func TestMoveGeneratorHistory(t *testing.T) {
	b, _ := notation.ParseBoard(`1,x2/x,2,x/x2,1 3`)
	ai := NewMinimax(Config{})
	ai.history[mnktest.Move("a3")] = 100
	ai.history[mnktest.Move("c2")] = 100
	ai.history[mnktest.Move("c1")] = 50

	got := notation.FormatMoves(ai.generate(b, 1))
	if want := "c2 a3 c1 b1 a2 b3"; got != want {
		t.Errorf("generate=%q want %q", got, want)
	}
}

func TestHistoryInert(t *testing.T) {
	b, _ := mnk.New(4, 3)
	b.Place(1, 1, mnk.First)
	ai := NewMinimax(Config{Depth: 3, Limit: time.Hour})
	ai.Analyze(context.Background(), b)
	if len(ai.history) != 0 {
		t.Errorf("history written without UpdateHistory: %v", ai.history)
	}

	ai = NewMinimax(Config{Depth: 3, Limit: time.Hour, UpdateHistory: true})
	_, _, st := ai.Analyze(context.Background(), b)
	var cuts uint64
	for _, s := range st {
		cuts += s.CutNodes
	}
	if cuts == 0 {
		t.Fatal("expected some cutoffs")
	}
	if len(ai.history) == 0 {
		t.Error("history not updated with UpdateHistory set")
	}
}

func TestHistoryCreditDeep(t *testing.T) {
	h := make(historyTable)
	deep, shallow := mnktest.Move("a1"), mnktest.Move("b1")
	h.credit(deep, 100)
	h.credit(shallow, 3)
	if h[deep] <= h[shallow] || h[shallow] <= 0 {
		t.Errorf("credit(100)=%d credit(3)=%d", h[deep], h[shallow])
	}
	ms := []mnk.Move{shallow, deep}
	h.order(ms)
	if ms[0] != deep {
		t.Errorf("order=%v, want %v first", ms, deep)
	}
}
