package mnkei

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/nelhage/mnk/cmd/internal/opt"
	"github.com/nelhage/mnk/mnkei"
)

type Command struct {
	opt opt.Minimax
}

func (*Command) Name() string     { return "mnkei" }
func (*Command) Synopsis() string { return "Launch the engine in mnkei mode" }
func (*Command) Usage() string {
	return `mnkei

Launch the engine in mnkei mode, a UCI-like protocol suitable for being
driven by an external GUI or controller.

`
}

func (c *Command) SetFlags(fs *flag.FlagSet) {
	c.opt.AddFlags(fs)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine := mnkei.NewEngine(os.Stdin, os.Stdout)
	engine.ConfigFactory = c.opt.BuildConfig
	if err := engine.Run(ctx); err != nil {
		log.Println("mnkei: ", err.Error())
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
