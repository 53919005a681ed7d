// Command annotate reads a minefield from stdin and prints it with every empty
// cell replaced by the number of neighbouring mines.
//
// Input is "N M" followed by N rows of M characters, each '.' or '*'.
package main

import (
	"bufio"
	"io"
	"os"

	"minefield/internal/board"
	"minefield/internal/logging"
)

func main() {
	logging.SetLevel(os.Getenv("LOG_LEVEL"))
	if err := run(os.Stdin, os.Stdout); err != nil {
		logging.Fatalf("Input error: %v", err)
	}
}

func run(in io.Reader, out io.Writer) error {
	g, err := board.Read(in)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(out)
	if _, err := board.Annotate(g).WriteTo(w); err != nil {
		return err
	}
	return w.Flush()
}
