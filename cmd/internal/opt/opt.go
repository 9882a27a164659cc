package opt

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"google.golang.org/grpc"

	"github.com/nelhage/mnk/ai"
	"github.com/nelhage/mnk/mnk"
	"github.com/nelhage/mnk/mnkei"
	"github.com/nelhage/mnk/rpc"
)

type Minimax struct {
	Debug   int
	Depth   int
	Limit   time.Duration
	History bool
	Config  string
}

func (o *Minimax) AddFlags(flags *flag.FlagSet) {
	flags.IntVar(&o.Debug, "debug", 0, "debug level")
	flags.IntVar(&o.Depth, "depth", 0, "maximum minimax depth (0 for no limit)")
	flags.DurationVar(&o.Limit, "limit", ai.DefaultLimit, "time limit per move")
	flags.BoolVar(&o.History, "history", false, "order moves with the history heuristic")
	flags.StringVar(&o.Config, "config", "", "JSON-encoded engine config, applied over the other flags")
}

// BuildConfig returns the engine configuration for a size×size board with
// win condition k.
func (o *Minimax) BuildConfig(size, k int) ai.Config {
	cfg := ai.Config{
		Depth:         o.Depth,
		Limit:         o.Limit,
		Debug:         o.Debug,
		UpdateHistory: o.History,
	}
	if o.Config != "" {
		if e := json.Unmarshal([]byte(o.Config), &cfg); e != nil {
			log.Fatalf("parse config: %v", e)
		}
	}
	return cfg
}

// Player is a non-interactive player built from a command-line spec.
type Player struct {
	ai.Player
	Name  string
	close func()
}

func (p *Player) Close() {
	if p.close != nil {
		p.close()
	}
}

// ParsePlayer builds a player for side from a spec:
//
//	minimax[:DEPTH]  the built-in engine
//	rand[:SEED]      uniformly random moves
//	mnkei:CMDLINE    an external engine speaking mnkei
//	rpc:ADDR         a remote analysis server
func (o *Minimax) ParsePlayer(spec string, size, k int, side mnk.Player) (*Player, error) {
	kind, arg := spec, ""
	if i := strings.Index(spec, ":"); i >= 0 {
		kind, arg = spec[:i], spec[i+1:]
	}
	switch kind {
	case "minimax":
		cfg := o.BuildConfig(size, k)
		if arg != "" {
			depth, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("minimax depth: %w", err)
			}
			cfg.Depth = depth
		}
		cfg.Side = side
		return &Player{Player: ai.NewSelector(cfg), Name: spec}, nil
	case "rand", "random":
		var seed int64
		if arg != "" {
			i, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("random seed: %w", err)
			}
			seed = i
		}
		return &Player{Player: ai.NewRandom(seed), Name: spec}, nil
	case "mnkei":
		cl, err := mnkei.NewClient(strings.Fields(arg))
		if err != nil {
			return nil, fmt.Errorf("starting %q: %w", arg, err)
		}
		p, err := cl.NewGame(size, k)
		if err != nil {
			cl.Close()
			return nil, fmt.Errorf("new game %q: %w", arg, err)
		}
		return &Player{Player: p, Name: spec, close: cl.Close}, nil
	case "rpc":
		cc, err := grpc.Dial(arg, grpc.WithInsecure())
		if err != nil {
			return nil, fmt.Errorf("dial %q: %w", arg, err)
		}
		return &Player{
			Player: rpc.NewClient(cc, o.Limit, o.Depth),
			Name:   spec,
			close:  func() { cc.Close() },
		}, nil
	}
	return nil, fmt.Errorf("unparseable player: %q", spec)
}
