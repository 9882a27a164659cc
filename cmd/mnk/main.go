package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/nelhage/mnk/cmd/internal/analyze"
	"github.com/nelhage/mnk/cmd/internal/mnkei"
	"github.com/nelhage/mnk/cmd/internal/play"
	"github.com/nelhage/mnk/cmd/internal/results"
	"github.com/nelhage/mnk/cmd/internal/selfplay"
	"github.com/nelhage/mnk/cmd/internal/serve"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&results.Command{}, "")

	subcommands.Register(&mnkei.Command{}, "engines")
	subcommands.Register(&serve.Command{}, "engines")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
