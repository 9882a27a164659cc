package mnk

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("move is out of bounds")
	ErrCellOccupied         = errors.New("cell is occupied")
)

// Board is an n×n grid on which k marks in a row win. It holds only the
// present state of the game; callers are responsible for alternating
// turns.
type Board struct {
	size, k int
	cells   []Cell

	// windows is shared between clones and never mutated.
	windows [][]int
}

// New returns an empty board of the given size and win condition.
func New(size, k int) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size=%d", ErrInvalidConfiguration, size)
	}
	if k <= 0 || k > size {
		return nil, fmt.Errorf("%w: k=%d size=%d", ErrInvalidConfiguration, k, size)
	}
	return &Board{
		size:    size,
		k:       k,
		cells:   make([]Cell, size*size),
		windows: precomputeWindows(size, k),
	}, nil
}

// FromCells builds a board from rows of cells, listed top to bottom.
func FromCells(k int, rows [][]Cell) (*Board, error) {
	b, err := New(len(rows), k)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != b.size {
			return nil, fmt.Errorf("row %d: length %d, want %d", r, len(row), b.size)
		}
		for c, cell := range row {
			if cell > SecondMark {
				return nil, fmt.Errorf("row %d col %d: bad cell %d", r, c, cell)
			}
			b.cells[b.index(r, c)] = cell
		}
	}
	return b, nil
}

// precomputeWindows lists, as cell indices, every run of k cells along
// rows, columns and both diagonal orientations.
func precomputeWindows(size, k int) [][]int {
	var out [][]int
	span := size - k + 1
	add := func(r, c, dr, dc int) {
		w := make([]int, k)
		for i := 0; i < k; i++ {
			w[i] = (r+i*dr)*size + c + i*dc
		}
		out = append(out, w)
	}
	for r := 0; r < size; r++ {
		for c := 0; c < span; c++ {
			add(r, c, 0, 1)
		}
	}
	for c := 0; c < size; c++ {
		for r := 0; r < span; r++ {
			add(r, c, 1, 0)
		}
	}
	for r := 0; r < span; r++ {
		for c := 0; c < span; c++ {
			add(r, c, 1, 1)
		}
	}
	for r := 0; r < span; r++ {
		for c := k - 1; c < size; c++ {
			add(r, c, 1, -1)
		}
	}
	return out
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) K() int {
	return b.k
}

func (b *Board) index(row, col int) int {
	return row*b.size + col
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.size && col < b.size
}

func (b *Board) At(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

// Place puts player's mark on an empty cell.
func (b *Board) Place(row, col int, player Player) error {
	if !b.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) on a %dx%d board", ErrOutOfBounds, row, col, b.size, b.size)
	}
	i := b.index(row, col)
	if b.cells[i] != Empty {
		return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, row, col)
	}
	b.cells[i] = player.Cell()
	return nil
}

// Clear empties a cell. It is used to undo moves during search.
func (b *Board) Clear(row, col int) {
	b.cells[b.index(row, col)] = Empty
}

func (b *Board) IsAvailable(row, col int) bool {
	return b.cells[b.index(row, col)] == Empty
}

func (b *Board) IsFull() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// CheckWin reports whether player owns every cell of some window.
func (b *Board) CheckWin(player Player) bool {
	want := player.Cell()
	if want == Empty {
		return false
	}
outer:
	for _, w := range b.windows {
		for _, i := range w {
			if b.cells[i] != want {
				continue outer
			}
		}
		return true
	}
	return false
}

// Windows returns the precomputed windows as slices of cell indices. The
// result must not be modified.
func (b *Board) Windows() [][]int {
	return b.windows
}

// CellAt returns the cell at a flat index as used by Windows.
func (b *Board) CellAt(i int) Cell {
	return b.cells[i]
}

// EmptyCells lists the empty cells in row-major order.
func (b *Board) EmptyCells() []Move {
	return b.AppendEmpty(nil)
}

// AppendEmpty appends the empty cells to out in row-major order.
func (b *Board) AppendEmpty(out []Move) []Move {
	for i, c := range b.cells {
		if c == Empty {
			out = append(out, Move{Row: i / b.size, Col: i % b.size})
		}
	}
	return out
}

func (b *Board) Count(player Player) int {
	want := player.Cell()
	n := 0
	for _, c := range b.cells {
		if c == want {
			n++
		}
	}
	return n
}

// ToMove returns the player whose turn it is, assuming First moved first.
func (b *Board) ToMove() Player {
	if b.Count(First) > b.Count(Second) {
		return Second
	}
	return First
}

func (b *Board) Clone() *Board {
	out := *b
	out.cells = make([]Cell, len(b.cells))
	copy(out.cells, b.cells)
	return &out
}

func (b *Board) Equal(o *Board) bool {
	if b.size != o.size || b.k != o.k {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
