package play

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/nelhage/mnk/ai"
	"github.com/nelhage/mnk/cli"
	"github.com/nelhage/mnk/cmd/internal/opt"
	"github.com/nelhage/mnk/logs"
	"github.com/nelhage/mnk/mnk"
)

type Command struct {
	first  string
	second string
	size   int
	k      int
	db     string

	unicode bool

	mmopt opt.Minimax
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play an m,n,k-game from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play on the command-line, against a human or AI. Players are one of
human, minimax[:DEPTH], rand[:SEED], mnkei:CMDLINE or rpc:ADDR.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.first, "first", "human", "first player")
	flags.StringVar(&c.second, "second", "minimax", "second player")
	flags.IntVar(&c.size, "size", 3, "board size")
	flags.IntVar(&c.k, "k", 3, "marks in a row needed to win")
	flags.StringVar(&c.db, "log", "", "record the result in this sqlite database")

	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")

	c.mmopt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := mnk.New(c.size, c.k); err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	in := bufio.NewReader(os.Stdin)
	first, done1 := c.parsePlayer(in, c.first, mnk.First)
	defer done1()
	second, done2 := c.parsePlayer(in, c.second, mnk.Second)
	defer done2()

	st := &cli.CLI{
		Size:   c.size,
		K:      c.k,
		Out:    os.Stdout,
		First:  first,
		Second: second,
		Glyphs: glyphs(c.unicode),
	}
	start := time.Now()
	b, err := st.Play(ctx)
	if err != nil {
		log.Println("play:", err)
		return subcommands.ExitFailure
	}
	if c.db != "" {
		repo, err := logs.Open(c.db)
		if err != nil {
			log.Println("open log:", err)
			return subcommands.ExitFailure
		}
		defer repo.Close()
		res := logs.NewResult(b, c.first, c.second, len(st.Moves()), time.Since(start))
		if err := repo.InsertResult(res); err != nil {
			log.Println("log result:", err)
			return subcommands.ExitFailure
		}
	}

	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

// aiWrapper bounds each move of a non-interactive player to twice the -limit
// flag plus one second.
type aiWrapper struct {
	limit time.Duration
	p     ai.Player
}

func (a *aiWrapper) GetMove(ctx context.Context, b *mnk.Board) (mnk.Move, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*a.limit+time.Second)
	defer cancel()
	return a.p.GetMove(ctx, b)
}

func (c *Command) parsePlayer(in *bufio.Reader, s string, side mnk.Player) (ai.Player, func()) {
	if s == "human" {
		return cli.NewCLIPlayer(os.Stdout, in), func() {}
	}
	p, err := c.mmopt.ParsePlayer(s, c.size, c.k, side)
	if err != nil {
		log.Fatal(err)
	}
	return &aiWrapper{c.mmopt.Limit, p}, p.Close
}
