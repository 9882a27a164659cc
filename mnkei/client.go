package mnkei

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/context"

	"github.com/nelhage/mnk/ai"
	"github.com/nelhage/mnk/mnk"
	"github.com/nelhage/mnk/notation"
)

var ErrDeadPlayer = errors.New("player belongs to a finished game")

// Client drives an engine speaking the mnkei protocol, usually in a child
// process.
type Client struct {
	cmd *exec.Cmd

	stdinPipe  io.WriteCloser
	stdoutPipe io.ReadCloser

	read  *bufio.Reader
	write io.Writer

	gameid int
}

func NewClient(cmdline []string) (*Client, error) {
	cmd := &exec.Cmd{
		Args: cmdline,
	}
	if path, err := exec.LookPath(cmdline[0]); err != nil {
		return nil, err
	} else {
		cmd.Path = path
	}

	cl := &Client{
		cmd: cmd,
	}

	if stdin, err := cmd.StdinPipe(); err != nil {
		cl.Close()
		return nil, err
	} else {
		cl.stdinPipe = stdin
		cl.write = stdin
	}

	if stdout, err := cmd.StdoutPipe(); err != nil {
		cl.Close()
		return nil, err
	} else {
		cl.stdoutPipe = stdout
		cl.read = bufio.NewReader(stdout)
	}

	if err := cl.cmd.Start(); err != nil {
		cl.Close()
		return nil, err
	}

	if err := cl.handshake(); err != nil {
		cl.Close()
		return nil, err
	}
	return cl, nil
}

// NewStreamClient speaks the protocol over an existing connection.
func NewStreamClient(r io.Reader, w io.Writer) (*Client, error) {
	cl := &Client{
		read:  bufio.NewReader(r),
		write: w,
	}
	if err := cl.handshake(); err != nil {
		return nil, err
	}
	return cl, nil
}

func (c *Client) handshake() error {
	_, err := c.sendCommand("mnkei", "mnkeiok")
	return err
}

// NewGame resets the engine and returns a player for the new game. Players
// from earlier games stop working.
func (c *Client) NewGame(size, k int) (ai.Player, error) {
	c.gameid++
	if _, err := c.sendCommand(fmt.Sprintf("newgame %d %d", size, k), ""); err != nil {
		return nil, err
	}
	return &player{
		client: c,
		gameid: c.gameid,
	}, nil
}

func (c *Client) Close() {
	if c.write != nil {
		c.sendCommand("quit", "")
	}
	if c.stdinPipe != nil {
		c.stdinPipe.Close()
	}
	if c.stdoutPipe != nil {
		c.stdoutPipe.Close()
	}
	if c.cmd != nil && c.cmd.Process != nil {
		c.cmd.Wait()
	}
}

func (c *Client) sendCommand(cmd string, expect string) ([]string, error) {
	if _, err := fmt.Fprintln(c.write, cmd); err != nil {
		return nil, err
	}
	if expect == "" {
		return nil, nil
	}

	for {
		line, err := c.read.ReadString('\n')
		if err != nil {
			return nil, err
		}
		words := strings.Fields(line)
		if len(words) > 0 && words[0] == expect {
			return words, nil
		}
	}
}

func formatTime(d time.Duration) string {
	ms := d / time.Millisecond
	if ms < 0 {
		ms = 0
	}
	return strconv.FormatUint(uint64(ms), 10)
}

type player struct {
	client *Client
	gameid int
}

func (p *player) GetMove(ctx context.Context, b *mnk.Board) (mnk.Move, error) {
	if p.gameid != p.client.gameid {
		return mnk.NoMove, ErrDeadPlayer
	}
	cmd := fmt.Sprintf("position mbn %s", notation.FormatBoard(b))
	if _, err := p.client.sendCommand(cmd, ""); err != nil {
		return mnk.NoMove, fmt.Errorf("send position: %w", err)
	}
	goCmd := "go"
	if deadline, ok := ctx.Deadline(); ok {
		goCmd = fmt.Sprintf("%s movetime %s", goCmd, formatTime(time.Until(deadline)))
	}
	bestmove, err := p.client.sendCommand(goCmd, "bestmove")
	if err != nil {
		return mnk.NoMove, err
	}
	if len(bestmove) != 2 {
		return mnk.NoMove, fmt.Errorf("bad bestmove: %q", strings.Join(bestmove, " "))
	}
	return notation.ParseMove(bestmove[1])
}
