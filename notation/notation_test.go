package notation

import (
	"errors"
	"testing"

	"github.com/nelhage/mnk/mnk"
)

func TestParseMove(t *testing.T) {
	cases := []struct {
		in  string
		out mnk.Move
	}{
		{"a1", mnk.Move{Row: 0, Col: 0}},
		{"c2", mnk.Move{Row: 1, Col: 2}},
		{"B3", mnk.Move{Row: 2, Col: 1}},
		{" z26\n", mnk.Move{Row: 25, Col: 25}},
		{"e12", mnk.Move{Row: 11, Col: 4}},
	}
	for _, tc := range cases {
		m, err := ParseMove(tc.in)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tc.in, err)
			continue
		}
		if m != tc.out {
			t.Errorf("ParseMove(%q)=%v want %v", tc.in, m, tc.out)
		}
	}
}

func TestParseMoveErrors(t *testing.T) {
	for _, in := range []string{"", "a", "1a", "a0", "aa1", "a-1", "?3"} {
		if _, err := ParseMove(in); !errors.Is(err, ErrIllegalMove) {
			t.Errorf("ParseMove(%q): err=%v", in, err)
		}
	}
}

func TestFormatMove(t *testing.T) {
	for _, s := range []string{"a1", "c2", "b3", "z26"} {
		m, err := ParseMove(s)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatMove(m); got != s {
			t.Errorf("FormatMove(ParseMove(%q))=%q", s, got)
		}
	}
	if got := FormatMove(mnk.NoMove); got != "(-1,-1)" {
		t.Errorf("FormatMove(NoMove)=%q", got)
	}
}

func TestParseMoves(t *testing.T) {
	ms, err := ParseMoves("a1 b2  c3")
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 3 || ms[2] != (mnk.Move{Row: 2, Col: 2}) {
		t.Errorf("ParseMoves=%v", ms)
	}
	if FormatMoves(ms) != "a1 b2 c3" {
		t.Errorf("FormatMoves=%q", FormatMoves(ms))
	}
	if _, err := ParseMoves("a1 zz"); err == nil {
		t.Error("expected an error")
	}
}

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard(`x2,1/x,2,x/1,x2 3`)
	if err != nil {
		t.Fatal("parse error", err)
	}
	if b.Size() != 3 || b.K() != 3 {
		t.Fatalf("size=%d k=%d", b.Size(), b.K())
	}
	expect := [][]mnk.Cell{
		{mnk.Empty, mnk.Empty, mnk.FirstMark},
		{mnk.Empty, mnk.SecondMark, mnk.Empty},
		{mnk.FirstMark, mnk.Empty, mnk.Empty},
	}
	for r, row := range expect {
		for c, cell := range row {
			if b.At(r, c) != cell {
				t.Errorf("(%d,%d)=%v want %v", r, c, b.At(r, c), cell)
			}
		}
	}
}

func TestFormatBoardRoundTrip(t *testing.T) {
	for _, s := range []string{
		`x3/x3/x3 3`,
		`1,2,1/2,1,2/2,1,2 3`,
		`x2,1/x,2,x/1,x2 3`,
		`x12,1,x2/x15/x15/x15/x15/x15/x15/x15/x15/x15/x15/x15/x15/x15/2,x14 5`,
	} {
		b, err := ParseBoard(s)
		if err != nil {
			t.Errorf("parse %q: %v", s, err)
			continue
		}
		if got := FormatBoard(b); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestParseBoardErrors(t *testing.T) {
	for _, s := range []string{
		``,
		`x3/x3/x3`,
		`x3/x3/x3 q`,
		`x3/x3/x2 3`,
		`x3/x3/x3 4`,
		`x3/x3/x,3,x 3`,
		`x3/x3/x0,x3 3`,
	} {
		if _, err := ParseBoard(s); err == nil {
			t.Errorf("ParseBoard(%q): expected an error", s)
		}
	}
}
