package ai

import (
	"sort"

	"github.com/nelhage/mnk/mnk"
)

// historyTable maps moves to an ordering priority; higher is searched
// first.
type historyTable map[mnk.Move]int

// maxCreditShift bounds the per-cutoff credit so deep searches cannot
// overflow it.
const maxCreditShift = 30

func (h historyTable) credit(m mnk.Move, depth int) {
	if depth > maxCreditShift {
		depth = maxCreditShift
	}
	h[m] += 1 << uint(depth)
}

// order sorts ms by descending priority, keeping row-major order among
// equal priorities.
func (h historyTable) order(ms []mnk.Move) {
	if len(h) == 0 {
		return
	}
	sort.SliceStable(ms, func(i, j int) bool {
		return h[ms[i]] > h[ms[j]]
	})
}

// generate lists the candidate moves at ply into a buffer reused across
// searches.
func (m *MinimaxAI) generate(b *mnk.Board, ply int) []mnk.Move {
	for len(m.stack) <= ply {
		m.stack = append(m.stack, make([]mnk.Move, 0, b.Size()*b.Size()))
	}
	ms := b.AppendEmpty(m.stack[ply][:0])
	m.stack[ply] = ms
	m.history.order(ms)
	return ms
}
