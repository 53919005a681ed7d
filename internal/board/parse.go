package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrDimensions = errors.New("invalid dimensions")
	ErrRow        = errors.New("invalid row")
)

// ParseDimensions reads the "N M" header line.
func ParseDimensions(line string) (rows, cols int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: want \"N M\", got %q", ErrDimensions, line)
	}
	for _, f := range fields {
		if !isDigits(f) {
			return 0, 0, fmt.Errorf("%w: %q is not a plain number", ErrDimensions, f)
		}
	}
	rows, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: rows %q is not a number", ErrDimensions, fields[0])
	}
	cols, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: columns %q is not a number", ErrDimensions, fields[1])
	}
	if !inRange(rows) || !inRange(cols) {
		return 0, 0, fmt.Errorf("%w: %dx%d is outside %d..%d", ErrDimensions, rows, cols, MinSide, MaxSide)
	}
	return rows, cols, nil
}

// isDigits reports whether s is a plain decimal: ASCII digits only, no sign
// and no leading zero.
func isDigits(s string) bool {
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// ParseRow validates one row of '.' and '*' that must be exactly cols long.
// A trailing carriage return is dropped.
func ParseRow(line string, cols int) ([]Cell, error) {
	line = strings.TrimSuffix(line, "\r")
	if len(line) != cols {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrRow, len(line), cols)
	}
	cells := make([]Cell, cols)
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case MineRune:
			cells[i] = Mine
		case EmptyRune:
			cells[i] = Count(0)
		default:
			return nil, fmt.Errorf("%w: unexpected %q at column %d", ErrRow, line[i], i+1)
		}
	}
	return cells, nil
}

// Read parses a header line followed by N rows. Lines after the last row are ignored.
func Read(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDimensions, err)
		}
		return nil, fmt.Errorf("%w: empty input", ErrDimensions)
	}
	rows, cols, err := ParseDimensions(scanner.Text())
	if err != nil {
		return nil, err
	}

	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("row %d: %w: %w", i+1, ErrRow, err)
			}
			return nil, fmt.Errorf("%w: got %d of %d rows", ErrRow, i, rows)
		}
		cells, err := ParseRow(scanner.Text(), cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		g.cells[i] = cells
	}
	return g, nil
}

// FromRows builds a grid from rows that were already split, taking the
// dimensions from the rows themselves.
func FromRows(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrDimensions)
	}
	cols := len(strings.TrimSuffix(lines[0], "\r"))
	g, err := New(len(lines), cols)
	if err != nil {
		return nil, err
	}
	for i, line := range lines {
		cells, err := ParseRow(line, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		g.cells[i] = cells
	}
	return g, nil
}
