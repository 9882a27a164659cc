// Package mnkei implements a line protocol for driving the engine from a
// controlling program, in the style of UCI.
package mnkei

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/context"

	"github.com/nelhage/mnk/ai"
	"github.com/nelhage/mnk/mnk"
	"github.com/nelhage/mnk/notation"
)

const (
	defaultSize = 3
	defaultK    = 3
)

type Engine struct {
	ConfigFactory func(size, k int) ai.Config

	in  *bufio.Reader
	out io.Writer

	engines map[mnk.Player]*ai.Selector
	board   *mnk.Board
	size, k int
}

func NewEngine(in io.Reader, out io.Writer) *Engine {
	return &Engine{
		in:   bufio.NewReader(in),
		out:  out,
		size: defaultSize,
		k:    defaultK,
	}
}

// Run reads and executes commands until quit or end of input.
func (e *Engine) Run(ctx context.Context) error {
	for {
		line, err := e.in.ReadString('\n')
		if err == io.EOF && line == "" {
			return nil
		}
		if err != nil && err != io.EOF {
			return err
		}
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		switch words[0] {
		case "mnkei":
			fmt.Fprintln(e.out, "id name mnk")
			fmt.Fprintln(e.out, "id author Nelson Elhage")
			fmt.Fprintln(e.out, "mnkeiok")
		case "quit":
			return nil
		case "newgame":
			if err := e.newGame(words[1:]); err != nil {
				return err
			}
		case "position":
			b, err := parsePosition(e.size, e.k, words)
			if err != nil {
				return fmt.Errorf("error parsing position: %w", err)
			}
			if b.Size() != e.size || b.K() != e.k {
				e.size, e.k = b.Size(), b.K()
				e.engines = nil
			}
			e.board = b
		case "go":
			if err := e.analyze(ctx, words); err != nil {
				log.Printf("error in go: %v", err)
				fmt.Fprintln(e.out, "bestmove none")
			}
		case "stop":
		case "isready":
			fmt.Fprintln(e.out, "readyok")
		default:
			return fmt.Errorf("unknown command: %q", strings.TrimSpace(line))
		}
	}
}

func (e *Engine) newGame(args []string) error {
	e.engines = nil
	e.board = nil
	e.size, e.k = defaultSize, defaultK
	switch len(args) {
	case 0:
		return nil
	case 2:
	default:
		return errors.New("newgame: expected <size> <k>")
	}
	size, err := strconv.Atoi(args[0])
	if err != nil || size < 1 || size > notation.MaxSize {
		return fmt.Errorf("bad size: %s", args[0])
	}
	k, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad k: %s", args[1])
	}
	if _, err := mnk.New(size, k); err != nil {
		return err
	}
	e.size, e.k = size, k
	return nil
}

func parsePosition(size, k int, words []string) (*mnk.Board, error) {
	var b *mnk.Board
	var err error
	words = words[1:]
	if len(words) == 0 {
		return nil, errors.New("not enough arguments")
	}
	switch words[0] {
	case "startpos":
		words = words[1:]
		b, err = mnk.New(size, k)
		if err != nil {
			return nil, err
		}
	case "mbn":
		// mbn ROWS K
		if len(words) < 3 {
			return nil, errors.New("position mbn: not enough arguments")
		}
		b, err = notation.ParseBoard(strings.Join(words[1:3], " "))
		if err != nil {
			return nil, fmt.Errorf("parse mbn: %w", err)
		}
		if b.Size() > notation.MaxSize {
			return nil, fmt.Errorf("position mbn: size %d exceeds %d", b.Size(), notation.MaxSize)
		}
		words = words[3:]
	default:
		return nil, fmt.Errorf("unknown initial position: %q", words[0])
	}
	if len(words) == 0 {
		return b, nil
	}
	if words[0] != "moves" {
		return nil, errors.New("position: expected `moves'")
	}
	for _, w := range words[1:] {
		m, err := notation.ParseMove(w)
		if err != nil {
			return nil, fmt.Errorf("parse move %q: %w", w, err)
		}
		if b.Outcome().Over() {
			return nil, fmt.Errorf("move %q: game is over", w)
		}
		if err := b.Place(m.Row, m.Col, b.ToMove()); err != nil {
			return nil, fmt.Errorf("move %q: %w", w, err)
		}
	}
	return b, nil
}

func (e *Engine) engine(side mnk.Player) *ai.Selector {
	if s, ok := e.engines[side]; ok {
		return s
	}
	var cfg ai.Config
	if e.ConfigFactory != nil {
		cfg = e.ConfigFactory(e.size, e.k)
	}
	cfg.Side = side
	if e.engines == nil {
		e.engines = make(map[mnk.Player]*ai.Selector)
	}
	s := ai.NewSelector(cfg)
	e.engines[side] = s
	return s
}

func (e *Engine) analyze(ctx context.Context, words []string) error {
	if e.board == nil {
		return errors.New("no position provided")
	}
	if e.board.Outcome().Over() {
		return errors.New("game is over")
	}
	s := e.engine(e.board.ToMove())
	words = words[1:]
	if len(words) > 0 {
		if len(words) != 2 || words[0] != "movetime" {
			return errors.New("expected movetime <N>")
		}
		ms, err := strconv.ParseUint(words[1], 10, 64)
		if err != nil {
			return fmt.Errorf("bad ms: %v", words[1])
		}

		movetime := time.Duration(ms) * time.Millisecond
		prev := s.Limit()
		s.SetLimit(movetime)
		defer s.SetLimit(prev)

		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, movetime)
		defer cancel()
	}

	start := time.Now()
	m, err := s.SelectMove(ctx, e.board)
	if err != nil {
		return err
	}
	var nodes uint64
	for _, st := range s.Stats() {
		nodes += st.Visited
	}
	fmt.Fprintf(e.out, "info depth %d time %d nodes %d score %d\n",
		ai.CompletedDepth(s.Stats()),
		time.Since(start)/time.Millisecond,
		nodes,
		s.Value(),
	)
	fmt.Fprintf(e.out, "bestmove %s\n", notation.FormatMove(m))
	return nil
}
