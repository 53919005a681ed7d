package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
)

// Grid bounds, inclusive.
const (
	MinSide = 1
	MaxSide = 99
)

// Grid is a rectangular minefield. Rows never change length after construction.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// New returns an empty rows x cols grid.
func New(rows, cols int) (*Grid, error) {
	if !inRange(rows) || !inRange(cols) {
		return nil, fmt.Errorf("%w: %dx%d is outside %d..%d", ErrDimensions, rows, cols, MinSide, MaxSide)
	}
	cells := lo.Times(rows, func(_ int) []Cell {
		return make([]Cell, cols)
	})
	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

func inRange(n int) bool {
	return n >= MinSide && n <= MaxSide
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r, c) addresses a cell of the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the cell at (r, c). It panics when out of bounds, like slice indexing.
func (g *Grid) At(r, c int) Cell {
	return g.cells[r][c]
}

// Set stores a cell at (r, c).
func (g *Grid) Set(r, c int, cell Cell) {
	g.cells[r][c] = cell
}

// Mines counts the mine cells.
func (g *Grid) Mines() int {
	return lo.SumBy(g.cells, func(row []Cell) int {
		return lo.CountBy(row, Cell.IsMine)
	})
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := lo.Map(g.cells, func(row []Cell, _ int) []Cell {
		out := make([]Cell, len(row))
		copy(out, row)
		return out
	})
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Lines renders every row, top to bottom.
func (g *Grid) Lines() []string {
	return lo.Map(g.cells, func(row []Cell, _ int) string {
		b := make([]byte, len(row))
		for i, cell := range row {
			b[i] = cell.Byte()
		}
		return string(b)
	})
}

func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// WriteTo writes every row followed by a newline.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range g.Lines() {
		n, err := io.WriteString(w, line+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
