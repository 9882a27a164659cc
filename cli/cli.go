package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/net/context"

	"github.com/nelhage/mnk/ai"
	"github.com/nelhage/mnk/mnk"
	"github.com/nelhage/mnk/notation"
)

type Glyphs struct {
	First, Second, Empty string
}

type CLI struct {
	moves []mnk.Move
	b     *mnk.Board

	Size   int
	K      int
	Glyphs *Glyphs
	Out    io.Writer
	First  ai.Player
	Second ai.Player
}

var DefaultGlyphs = Glyphs{
	First:  "X",
	Second: "O",
	Empty:  ".",
}

var UnicodeGlyphs = Glyphs{
	First:  "✕",
	Second: "◯",
	Empty:  "·",
}

// Play runs one game to completion and returns the final board. It stops
// early only if a player fails to produce a move.
func (c *CLI) Play(ctx context.Context) (*mnk.Board, error) {
	c.moves = nil
	b, err := mnk.New(c.Size, c.K)
	if err != nil {
		return nil, err
	}
	c.b = b
	for {
		c.render()
		if o := c.b.Outcome(); o.Over() {
			fmt.Fprintf(c.Out, "Game Over! ")
			if o.Result == mnk.Draw {
				fmt.Fprintln(c.Out, "Draw.")
			} else {
				fmt.Fprintf(c.Out, "%s wins with %d in a row.\n", o.Winner, c.K)
			}
			return c.b, nil
		}
		toMove := c.b.ToMove()
		player := c.First
		if toMove == mnk.Second {
			player = c.Second
		}
		m, err := player.GetMove(ctx, c.b)
		if err != nil {
			return c.b, fmt.Errorf("%s: %w", toMove, err)
		}
		if e := c.b.Place(m.Row, m.Col, toMove); e != nil {
			fmt.Fprintln(c.Out, "illegal move:", e)
			continue
		}
		n := len(c.moves)/2 + 1
		if toMove == mnk.First {
			fmt.Fprintf(c.Out, "%d. %s", n, notation.FormatMove(m))
		} else {
			fmt.Fprintf(c.Out, "%d. ... %s", n, notation.FormatMove(m))
		}
		c.moves = append(c.moves, m)
	}
}

func (c *CLI) Moves() []mnk.Move {
	return c.moves
}

func (c *CLI) render() {
	RenderBoard(c.Glyphs, c.Out, c.b)
}

func RenderBoard(g *Glyphs, out io.Writer, b *mnk.Board) {
	if g == nil {
		g = &DefaultGlyphs
	}
	fmt.Fprintln(out)
	if !b.Outcome().Over() {
		fmt.Fprintf(out, "[%s to play]\n", b.ToMove())
	}
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', 0)
	for r := 0; r < b.Size(); r++ {
		fmt.Fprintf(w, "%d.\t", r+1)
		for col := 0; col < b.Size(); col++ {
			var glyph string
			switch b.At(r, col) {
			case mnk.FirstMark:
				glyph = g.First
			case mnk.SecondMark:
				glyph = g.Second
			case mnk.Empty:
				glyph = g.Empty
			default:
				panic(fmt.Sprintf("bad cell %v", b.At(r, col)))
			}
			fmt.Fprintf(w, "%s\t", glyph)
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\t")
	for col := 0; col < b.Size(); col++ {
		fmt.Fprintf(w, "%c\t", 'a'+col)
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
	fmt.Fprintf(out, "marks: %s:%d %s:%d\n",
		g.First, b.Count(mnk.First), g.Second, b.Count(mnk.Second))
}
