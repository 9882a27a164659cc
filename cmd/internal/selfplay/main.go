package selfplay

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nelhage/mnk/ai"
	"github.com/nelhage/mnk/cmd/internal/opt"
	"github.com/nelhage/mnk/logs"
	"github.com/nelhage/mnk/mnk"
	"github.com/nelhage/mnk/notation"
)

type Command struct {
	size int
	k    int
	p1   string
	p2   string
	seed int64

	games int
	swap  bool

	threads int

	out     string
	summary string
	db      string
	verbose bool

	mmopt opt.Minimax
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]

Players are one of minimax[:DEPTH], rand[:SEED], mnkei:CMDLINE or
rpc:ADDR.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.size, "size", 3, "board size")
	flags.IntVar(&c.k, "k", 3, "marks in a row needed to win")
	flags.StringVar(&c.p1, "p1", "minimax", "player 1")
	flags.StringVar(&c.p2, "p2", "rand", "player 2")

	flags.Int64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.games, "games", 10, "number of games to play per color")
	flags.BoolVar(&c.swap, "swap", true, "swap colors each game")
	flags.IntVar(&c.threads, "threads", 4, "number of parallel threads")
	flags.StringVar(&c.out, "out", "", "directory to write games to")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.StringVar(&c.db, "log", "", "record results in this sqlite database")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")

	c.mmopt.AddFlags(flags)
}

func (c *Command) factory(spec string) PlayerFactory {
	return func(side mnk.Player, seed int64) (ai.Player, func(), error) {
		if spec == "rand" || spec == "random" {
			return ai.NewRandom(seed), func() {}, nil
		}
		p, err := c.mmopt.ParsePlayer(spec, c.size, c.k, side)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	}
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := mnk.New(c.size, c.k); err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}

	cfg := &Config{
		Size:    c.size,
		K:       c.k,
		Swap:    c.swap,
		Games:   c.games,
		Threads: c.threads,
		Seed:    c.seed,
		Limit:   2*c.mmopt.Limit + time.Second,
		Verbose: c.verbose,
		P1:      c.factory(c.p1),
		P2:      c.factory(c.p2),
	}

	start := time.Now()
	st, err := Simulate(ctx, cfg)
	if err != nil {
		log.Println("selfplay:", err)
		return subcommands.ExitFailure
	}

	if c.out != "" {
		if c.summary == "" {
			c.summary = path.Join(c.out, "summary.json")
		}
		for i := range st.Games {
			if err := writeGame(c.out, &st.Games[i]); err != nil {
				log.Println("writing game:", err)
			}
		}
	}
	if c.summary != "" {
		if err := c.writeSummary(c.summary, &st); err != nil {
			log.Println("writing summary: ", err.Error())
		}
	}
	if c.db != "" {
		if err := c.logResults(&st); err != nil {
			log.Println("logging results:", err)
			return subcommands.ExitFailure
		}
	}

	p := message.NewPrinter(language.English)
	log.Print(p.Sprintf("[selfplay] done games=%d seed=%d ties=%d first=%d second=%d limit=%s time=%s",
		len(st.Games), c.seed, st.Ties, st.First, st.Second, c.mmopt.Limit, time.Since(start)))
	printTable(os.Stderr, &st)

	a, b := int64(st.Players[0].Wins), int64(st.Players[1].Wins)
	if a < b {
		a, b = b, a
	}
	log.Printf("[selfplay] p[one-sided]=%f", binomTest(a, b, 0.5))

	return subcommands.ExitSuccess
}

func printTable(out io.Writer, st *Stats) {
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tfirst\tsecond\tsum\n")
	fmt.Fprintf(tw, "p1\t%d\t%d\t%d\n", st.Players[0].FirstWins, st.Players[0].SecondWins, st.Players[0].Wins)
	fmt.Fprintf(tw, "p2\t%d\t%d\t%d\n", st.Players[1].FirstWins, st.Players[1].SecondWins, st.Players[1].Wins)
	fmt.Fprintf(tw, "sum\t%d\t%d\t%d\n",
		st.Players[0].FirstWins+st.Players[1].FirstWins,
		st.Players[0].SecondWins+st.Players[1].SecondWins,
		st.Players[0].Wins+st.Players[1].Wins,
	)
	tw.Flush()
}

func (c *Command) logResults(st *Stats) error {
	repo, err := logs.Open(c.db)
	if err != nil {
		return err
	}
	defer repo.Close()
	var rs []*logs.Result
	for i := range st.Games {
		g := &st.Games[i]
		first, second := c.p1, c.p2
		if g.P1Side() != mnk.First {
			first, second = second, first
		}
		rs = append(rs, logs.NewResult(g.Board, first, second, len(g.Moves), g.Elapsed))
	}
	return repo.InsertResults(rs)
}

func writeGame(d string, r *Result) error {
	if err := os.MkdirAll(d, 0755); err != nil {
		return err
	}
	body := fmt.Sprintf("[Size \"%d\"]\n[K \"%d\"]\n[Player1 \"%s\"]\n[Result \"%s\"]\n\n%s\n%s\n",
		r.Board.Size(), r.Board.K(), r.P1Side(), r.Board.Outcome(),
		notation.FormatMoves(r.Moves), notation.FormatBoard(r.Board))
	p := path.Join(d, fmt.Sprintf("%d.mnk", r.spec.i))
	return ioutil.WriteFile(p, []byte(body), 0644)
}

type Summary struct {
	Cmdline []string
	Player1 string
	Player2 string
	Limit   time.Duration
	Stats   *Stats
}

func (c *Command) writeSummary(path string, stats *Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	summary := Summary{
		Cmdline: os.Args,
		Player1: c.p1,
		Player2: c.p2,
		Limit:   c.mmopt.Limit,
		Stats:   stats,
	}

	bs, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return err
	}
	_, err = f.Write(bs)
	return err
}
