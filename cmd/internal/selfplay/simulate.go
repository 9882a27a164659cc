package selfplay

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nelhage/mnk/ai"
	"github.com/nelhage/mnk/mnk"
	"github.com/nelhage/mnk/notation"
)

// PlayerFactory builds a fresh player for one game.
type PlayerFactory func(side mnk.Player, seed int64) (ai.Player, func(), error)

type Config struct {
	Games int

	Verbose bool

	P1, P2 PlayerFactory

	Size int
	K    int

	Swap    bool
	Threads int
	Seed    int64
	Limit   time.Duration
}

type Stats struct {
	Players [2]struct {
		Wins       int
		FirstWins  int
		SecondWins int
	}
	First, Second int
	Ties          int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.First + s.Second + s.Ties
}

type gameSpec struct {
	i       int
	seed    int64
	p1color mnk.Player
}

type Result struct {
	spec    gameSpec
	Board   *mnk.Board
	Moves   []mnk.Move
	Winner  mnk.Player
	Elapsed time.Duration
}

// P1Side is the side player one had in this game.
func (r *Result) P1Side() mnk.Player {
	return r.spec.p1color
}

func (s *Stats) add(r Result) {
	switch r.Winner {
	case mnk.First:
		s.First++
	case mnk.Second:
		s.Second++
	default:
		s.Ties++
		return
	}
	pst := &s.Players[0]
	if r.Winner != r.spec.p1color {
		pst = &s.Players[1]
	}
	if r.Winner == mnk.First {
		pst.FirstWins++
	} else {
		pst.SecondWins++
	}
	pst.Wins++
}

// Simulate plays c.Games games, twice as many with c.Swap, on c.Threads
// workers. It stops at the first player error.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	var st Stats
	rc := make(chan Result)
	gc := make(chan gameSpec)
	grp, ctx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		defer close(gc)
		r := rand.New(rand.NewSource(c.Seed))
		n := c.Games
		if c.Swap {
			n *= 2
		}
		for g := 0; g < n; g++ {
			spec := gameSpec{
				i:       g,
				p1color: mnk.First,
				seed:    r.Int63(),
			}
			if c.Swap && g%2 == 1 {
				spec.p1color = mnk.Second
			}
			select {
			case gc <- spec:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	threads := c.Threads
	if threads < 1 {
		threads = 1
	}
	for i := 0; i < threads; i++ {
		grp.Go(func() error {
			return worker(ctx, c, gc, rc)
		})
	}

	errc := make(chan error, 1)
	go func() {
		errc <- grp.Wait()
		close(rc)
	}()

	for r := range rc {
		if c.Verbose {
			log.Printf("[selfplay] game n=%d plies=%d p1=%s winner=%s time=%s",
				r.spec.i, len(r.Moves), r.spec.p1color, r.Winner, r.Elapsed)
		}
		st.add(r)
		st.Games = append(st.Games, r)
	}
	return st, <-errc
}

func worker(ctx context.Context, c *Config, games <-chan gameSpec, out chan<- Result) error {
	for g := range games {
		r, err := playGame(ctx, c, g)
		if err != nil {
			return fmt.Errorf("game %d: %w", g.i, err)
		}
		select {
		case out <- r:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func playGame(ctx context.Context, c *Config, g gameSpec) (Result, error) {
	r := rand.New(rand.NewSource(g.seed))
	p1, done1, err := c.P1(g.p1color, r.Int63())
	if err != nil {
		return Result{}, err
	}
	defer done1()
	p2, done2, err := c.P2(g.p1color.Opponent(), r.Int63())
	if err != nil {
		return Result{}, err
	}
	defer done2()
	first, second := p1, p2
	if g.p1color != mnk.First {
		first, second = p2, p1
	}

	b, err := mnk.New(c.Size, c.K)
	if err != nil {
		return Result{}, err
	}
	var ms []mnk.Move
	start := time.Now()
	for !b.Outcome().Over() {
		toMove := b.ToMove()
		player := first
		if toMove == mnk.Second {
			player = second
		}
		mctx, cancel := ctx, context.CancelFunc(func() {})
		if c.Limit != 0 {
			mctx, cancel = context.WithTimeout(ctx, c.Limit)
		}
		m, err := player.GetMove(mctx, b)
		cancel()
		if err != nil {
			return Result{}, fmt.Errorf("get move for %s: %w", toMove, err)
		}
		if err := b.Place(m.Row, m.Col, toMove); err != nil {
			return Result{}, fmt.Errorf("illegal move %s: %w", notation.FormatMove(m), err)
		}
		ms = append(ms, m)
	}
	return Result{
		spec:    g,
		Board:   b,
		Moves:   ms,
		Winner:  b.Outcome().Winner,
		Elapsed: time.Since(start),
	}, nil
}
