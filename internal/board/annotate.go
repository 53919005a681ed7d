package board

// neighbours holds the eight (dr, dc) offsets around a cell.
var neighbours = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

// Annotate returns a copy of g where every non-mine cell holds the number of
// mines among its in-bounds neighbours. g itself is left untouched.
func Annotate(g *Grid) *Grid {
	if g == nil {
		return nil
	}
	out := g.Clone()
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c].IsMine() {
				continue
			}
			out.cells[r][c] = Count(g.countMines(r, c))
		}
	}
	return out
}

// countMines counts mines around (r, c), skipping positions off the grid.
func (g *Grid) countMines(r, c int) int {
	count := 0
	for _, offset := range neighbours {
		nr, nc := r+offset[0], c+offset[1]
		if g.InBounds(nr, nc) && g.cells[nr][nc].IsMine() {
			count++
		}
	}
	return count
}
