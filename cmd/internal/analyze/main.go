package analyze

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/subcommands"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nelhage/mnk/ai"
	"github.com/nelhage/mnk/cli"
	"github.com/nelhage/mnk/cmd/internal/opt"
	"github.com/nelhage/mnk/mnk"
	"github.com/nelhage/mnk/notation"
)

type Command struct {
	mbn       bool
	quiet     bool
	eval      bool
	explain   bool
	variation string

	mmopt opt.Minimax
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Evaluate a position given in MBN" }
func (*Command) Usage() string {
	return `analyze [options] MBN

Search a position for the side to move and print the chosen move, its
value and per-depth statistics. MBN is a position such as

  analyze 'x2,1/x,2,x/1,x2 3'

Use -variation to play additional moves prior to analysis.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.mbn, "mbn", false, "print the analyzed position in MBN")
	flags.BoolVar(&c.quiet, "quiet", false, "don't print board diagrams")
	flags.BoolVar(&c.eval, "evaluate", false, "only show static evaluation")
	flags.BoolVar(&c.explain, "explain", false, "explain scoring")
	flags.StringVar(&c.variation, "variation", "", "apply the listed moves before analyzing")

	c.mmopt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() == 0 {
		log.Println("Must supply a position")
		return subcommands.ExitUsageError
	}
	b, e := notation.ParseBoard(strings.Join(flag.Args(), " "))
	if e != nil {
		log.Println("parse:", e)
		return subcommands.ExitUsageError
	}
	if c.variation != "" {
		if e := applyVariation(b, c.variation); e != nil {
			log.Println("-variation:", e)
			return subcommands.ExitUsageError
		}
	}
	if e := c.analyze(ctx, os.Stdout, b); e != nil {
		log.Println("analyze:", e)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func applyVariation(b *mnk.Board, variant string) error {
	ms, e := notation.ParseMoves(variant)
	if e != nil {
		return e
	}
	for _, m := range ms {
		if b.Outcome().Over() {
			return fmt.Errorf("move `%s': game is over", notation.FormatMove(m))
		}
		if e := b.Place(m.Row, m.Col, b.ToMove()); e != nil {
			return fmt.Errorf("bad move `%s': %w", notation.FormatMove(m), e)
		}
	}
	return nil
}

func (c *Command) analyze(ctx context.Context, out io.Writer, b *mnk.Board) error {
	p := message.NewPrinter(language.English)
	if !c.quiet {
		cli.RenderBoard(nil, out, b)
		if c.explain {
			ai.ExplainScore(out, b)
		}
	}
	if c.mbn {
		p.Fprintf(out, "[MBN \"%s\"]\n", notation.FormatBoard(b))
	}
	if c.eval {
		p.Fprintf(out, " value=%d\n", ai.Evaluate(b))
		return nil
	}
	if o := b.Outcome(); o.Over() {
		p.Fprintf(out, " game over: %s\n", o)
		return nil
	}

	cfg := c.mmopt.BuildConfig(b.Size(), b.K())
	cfg.Side = b.ToMove()
	mm := ai.NewMinimax(cfg)
	m, val, stats := mm.Analyze(ctx, b)
	if !m.Valid() {
		return ai.ErrNoLegalMove
	}
	p.Fprintf(out, "AI analysis for %s:\n", cfg.Side)
	p.Fprintf(out, " move=%s value=%d\n", notation.FormatMove(m), val)
	for _, st := range stats {
		p.Fprintf(out, " depth=%d visited=%d evaluated=%d terminal=%d cut=%d time=%s\n",
			st.Depth, st.Visited, st.Evaluated, st.Terminal, st.CutNodes, st.Elapsed)
	}

	if c.quiet {
		return nil
	}
	b = b.Clone()
	b.Place(m.Row, m.Col, cfg.Side)
	fmt.Fprintln(out, "Resulting position:")
	cli.RenderBoard(nil, out, b)
	if c.explain {
		ai.ExplainScore(out, b)
	}
	return nil
}
