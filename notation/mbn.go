package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nelhage/mnk/mnk"
)

// ParseBoard parses a position in MBN form: rows from the top joined by
// '/', cells separated by ',', '1' for First, '2' for Second and "x" or
// "xN" for runs of empty cells, followed by the win condition:
//
//	x2,1/x,2,x/1,x2 3
func ParseBoard(mbn string) (*mnk.Board, error) {
	words := strings.Fields(mbn)
	if len(words) != 2 {
		return nil, errors.New("bad MBN: wrong number of words")
	}
	k, err := strconv.Atoi(words[1])
	if err != nil {
		return nil, fmt.Errorf("bad win condition: %s", words[1])
	}
	var rows [][]mnk.Cell
	for _, r := range strings.Split(words[0], "/") {
		row, err := parseRow(r)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return mnk.FromCells(k, rows)
}

func parseRow(row string) ([]mnk.Cell, error) {
	var out []mnk.Cell
	for _, bit := range strings.Split(row, ",") {
		switch {
		case bit == "1":
			out = append(out, mnk.FirstMark)
		case bit == "2":
			out = append(out, mnk.SecondMark)
		case bit == "x":
			out = append(out, mnk.Empty)
		case strings.HasPrefix(bit, "x"):
			count, err := strconv.Atoi(bit[1:])
			if err != nil || count <= 0 {
				return nil, fmt.Errorf("malformed run: %q", bit)
			}
			for i := 0; i < count; i++ {
				out = append(out, mnk.Empty)
			}
		default:
			return nil, fmt.Errorf("malformed cell: %q", bit)
		}
	}
	return out, nil
}

func FormatBoard(b *mnk.Board) string {
	var rows []string
	for r := 0; r < b.Size(); r++ {
		rows = append(rows, mbnRow(b, r))
	}
	return fmt.Sprintf("%s %d", strings.Join(rows, "/"), b.K())
}

func mbnRow(b *mnk.Board, r int) string {
	var bits []string
	for c := 0; c < b.Size(); {
		var i int
		for i = 0; c+i < b.Size() && b.At(r, c+i) == mnk.Empty; i++ {
		}
		switch i {
		case 0:
			if b.At(r, c) == mnk.FirstMark {
				bits = append(bits, "1")
			} else {
				bits = append(bits, "2")
			}
			c++
		case 1:
			bits = append(bits, "x")
		default:
			bits = append(bits, fmt.Sprintf("x%d", i))
		}
		c += i
	}
	return strings.Join(bits, ",")
}
