package ai

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nelhage/mnk/mnk"
)

// pow10 saturates at 10^18 so that no window score overflows an int64.
var pow10 [19]int64

func init() {
	pow10[0] = 1
	for i := 1; i < len(pow10); i++ {
		pow10[i] = pow10[i-1] * 10
	}
}

func windowWeight(count int) int64 {
	if count >= len(pow10) {
		return pow10[len(pow10)-1]
	}
	return pow10[count]
}

// windowScore returns the contribution of a single window: 10^n for n
// Second marks, -10^n for n First marks, and 0 if the window is empty or
// contested.
func windowScore(b *mnk.Board, w []int) int64 {
	first, second := 0, 0
	for _, i := range w {
		switch b.CellAt(i) {
		case mnk.FirstMark:
			first++
		case mnk.SecondMark:
			second++
		}
	}
	switch {
	case first > 0 && second > 0:
		return 0
	case first > 0:
		return -windowWeight(first)
	case second > 0:
		return windowWeight(second)
	}
	return 0
}

// Evaluate scores a position from Second's point of view by summing
// windowScore over every window on the board. The result always lies
// strictly inside (MinEval, MaxEval).
func Evaluate(b *mnk.Board) int64 {
	var score int64
	for _, w := range b.Windows() {
		score = clamp(score + windowScore(b, w))
	}
	return score
}

func clamp(v int64) int64 {
	if v > WinThreshold {
		return WinThreshold
	}
	if v < -WinThreshold {
		return -WinThreshold
	}
	return v
}

// ExplainScore writes a breakdown of the windows each player controls,
// bucketed by how many marks they hold.
func ExplainScore(out io.Writer, b *mnk.Board) {
	counts := make([][2]int, b.K()+1)
	var contested, empty int
	for _, w := range b.Windows() {
		first, second := 0, 0
		for _, i := range w {
			switch b.CellAt(i) {
			case mnk.FirstMark:
				first++
			case mnk.SecondMark:
				second++
			}
		}
		switch {
		case first > 0 && second > 0:
			contested++
		case first > 0:
			counts[first][0]++
		case second > 0:
			counts[second][1]++
		default:
			empty++
		}
	}

	tw := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	fmt.Fprintf(tw, "marks\tfirst\tsecond\n")
	for n := 1; n <= b.K(); n++ {
		fmt.Fprintf(tw, "%d\t%d\t%d\n", n, counts[n][0], counts[n][1])
	}
	fmt.Fprintf(tw, "contested\t%d\n", contested)
	fmt.Fprintf(tw, "empty\t%d\n", empty)
	fmt.Fprintf(tw, "score\t%d\n", Evaluate(b))
	tw.Flush()
}
