package cli

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/net/context"

	"github.com/nelhage/mnk/ai"
	"github.com/nelhage/mnk/mnk"
	"github.com/nelhage/mnk/notation"
)

// NewCLIPlayer returns a player that reads moves from in, prompting on out
// until it gets one that is legal on the current board.
func NewCLIPlayer(out io.Writer, in *bufio.Reader) ai.Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *cliPlayer) GetMove(ctx context.Context, b *mnk.Board) (mnk.Move, error) {
	for {
		fmt.Fprintf(c.out, "%s> ", b.ToMove())
		line, err := c.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return mnk.NoMove, err
		}
		m, err := notation.ParseMove(line)
		if err != nil {
			fmt.Fprintln(c.out, "parse error:", err)
			continue
		}
		if !b.InBounds(m.Row, m.Col) {
			fmt.Fprintln(c.out, "illegal move:", mnk.ErrOutOfBounds)
			continue
		}
		if !b.IsAvailable(m.Row, m.Col) {
			fmt.Fprintln(c.out, "illegal move:", mnk.ErrCellOccupied)
			continue
		}
		return m, nil
	}
}
