package board

import (
	"errors"
	"strings"
	"testing"
)

func TestNewBounds(t *testing.T) {
	if _, err := New(0, 3); !errors.Is(err, ErrDimensions) {
		t.Errorf("New(0, 3) err = %v", err)
	}
	if _, err := New(3, MaxSide+1); !errors.Is(err, ErrDimensions) {
		t.Errorf("New(3, 100) err = %v", err)
	}
	g, err := New(2, 3)
	if err != nil {
		t.Fatalf("New(2, 3): %v", err)
	}
	if g.String() != "000\n000" {
		t.Errorf("empty grid = %q", g.String())
	}
}

func TestCellByte(t *testing.T) {
	if Mine.Byte() != '*' {
		t.Errorf("Mine.Byte() = %q", Mine.Byte())
	}
	for n := 0; n <= 8; n++ {
		if got := Count(n).Byte(); got != byte('0'+n) {
			t.Errorf("Count(%d).Byte() = %q", n, got)
		}
	}
}

func TestWriteTo(t *testing.T) {
	g, _ := FromRows([]string{"*.", ".."})
	var b strings.Builder
	n, err := Annotate(g).WriteTo(&b)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if b.String() != "*1\n11\n" || n != int64(b.Len()) {
		t.Errorf("WriteTo wrote %q (%d bytes)", b.String(), n)
	}
}

func TestCloneIsDeep(t *testing.T) {
	g, _ := New(1, 2)
	c := g.Clone()
	c.Set(0, 0, Mine)
	if g.At(0, 0).IsMine() {
		t.Error("Clone shares cells with the original")
	}
}
