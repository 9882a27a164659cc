package serve

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"

	"github.com/google/subcommands"
	"google.golang.org/grpc"

	"github.com/nelhage/mnk/rpc"
)

type Command struct {
	port  int
	debug int
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve position analysis via GRPC" }
func (*Command) Usage() string {
	return `serve
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.port, "port", 55430, "bind port")
	flags.IntVar(&c.debug, "debug", 0, "debug level")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log.Printf("[serve] listening on port %d", c.port)
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", c.port))
	if err != nil {
		log.Printf("failed to listen: %v", err)
		return subcommands.ExitFailure
	}
	grpcServer := grpc.NewServer()
	srv := rpc.NewServer()
	srv.Debug = c.debug
	srv.Register(grpcServer)

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()
	if err := grpcServer.Serve(lis); err != nil {
		log.Printf("[serve] %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
