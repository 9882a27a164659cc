package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nelhage/mnk/mnk"
)

// MaxSize is the largest board whose columns can be named by a single
// letter.
const MaxSize = 26

var moveRE = regexp.MustCompile(`^([a-z])([1-9][0-9]*)$`)

var ErrIllegalMove = errors.New("illegal move")

// ParseMove parses a move such as "b3": column letter, then the 1-based row
// counted from the top of the board.
func ParseMove(move string) (mnk.Move, error) {
	groups := moveRE.FindStringSubmatch(strings.ToLower(strings.TrimSpace(move)))
	if groups == nil {
		return mnk.NoMove, fmt.Errorf("%w: %q", ErrIllegalMove, move)
	}
	row, err := strconv.Atoi(groups[2])
	if err != nil {
		return mnk.NoMove, fmt.Errorf("%w: %q", ErrIllegalMove, move)
	}
	return mnk.Move{Row: row - 1, Col: int(groups[1][0] - 'a')}, nil
}

func FormatMove(m mnk.Move) string {
	if !m.Valid() || m.Col >= MaxSize {
		return m.String()
	}
	return fmt.Sprintf("%c%d", 'a'+m.Col, m.Row+1)
}

func FormatMoves(ms []mnk.Move) string {
	var bits []string
	for _, m := range ms {
		bits = append(bits, FormatMove(m))
	}
	return strings.Join(bits, " ")
}

// ParseMoves parses a space-separated list of moves.
func ParseMoves(s string) ([]mnk.Move, error) {
	var out []mnk.Move
	for _, bit := range strings.Fields(s) {
		m, err := ParseMove(bit)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
