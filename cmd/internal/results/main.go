package results

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/nelhage/mnk/logs"
)

type Command struct {
	db string
	n  int
}

func (*Command) Name() string     { return "results" }
func (*Command) Synopsis() string { return "Show logged game results" }
func (*Command) Usage() string {
	return `results -db FILE.db

Print the most recent results recorded by play -log or selfplay -log,
followed by per-player totals.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.db, "db", "", "sqlite database to read")
	flags.IntVar(&c.n, "n", 20, "number of recent games to show")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.db == "" {
		log.Println("Must supply -db")
		return subcommands.ExitUsageError
	}
	repo, err := logs.Open(c.db)
	if err != nil {
		log.Println("open:", err)
		return subcommands.ExitFailure
	}
	defer repo.Close()
	if err := show(os.Stdout, repo, c.n); err != nil {
		log.Println("query:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func show(out io.Writer, repo *logs.Repository, n int) error {
	rs, err := repo.Results(n)
	if err != nil {
		return err
	}
	sum, err := repo.Summary()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "id\ttime\tgame\tfirst\tsecond\twinner\tplies\tms\n")
	for _, r := range rs {
		fmt.Fprintf(tw, "%d\t%s\t%d,%d\t%s\t%s\t%s\t%d\t%d\n",
			r.ID, r.Time.Format("2006-01-02 15:04:05"), r.Size, r.K,
			r.First, r.Second, r.Winner, r.Plies, r.ElapsedMS)
	}
	tw.Flush()

	fmt.Fprintln(out)
	tw = tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "player\twins\tlosses\tdraws\n")
	for _, r := range sum {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", r.Player, r.Wins, r.Losses, r.Draws)
	}
	return tw.Flush()
}
