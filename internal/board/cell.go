package board

// Cell is either a mine or the number of mines around it (0-8).
type Cell int8

// Mine marks a mine-occupied cell. Any other value is a neighbour count.
const Mine Cell = -1

const (
	MineRune  = '*'
	EmptyRune = '.'
)

// Count returns the cell holding n neighbouring mines.
func Count(n int) Cell {
	return Cell(n)
}

// IsMine reports whether the cell holds a mine.
func (c Cell) IsMine() bool {
	return c == Mine
}

// Count returns the neighbour count, or -1 for a mine.
func (c Cell) Count() int {
	return int(c)
}

// Byte renders the cell as '*' or an ASCII digit.
func (c Cell) Byte() byte {
	if c.IsMine() {
		return MineRune
	}
	return byte('0' + c)
}
