// Command vtdump feeds a byte stream (a file, or stdin) through a
// vt100.Emulator and prints the resulting screen as plain text, one line
// per row. It exists mainly as a smoke test and a usage example for the
// package: construct an Emulator, write bytes, read the screen back.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	vt100 "github.com/go-terminal/vt100"
)

func main() {
	rows := flag.Int("rows", 24, "screen rows")
	cols := flag.Int("cols", 80, "screen cols")
	flag.Parse()

	var r io.Reader = os.Stdin
	if args := flag.Args(); len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		log.Fatal(err)
	}

	var bell int
	term := vt100.New(
		vt100.WithSize(*rows, *cols),
		vt100.WithCallback(func(m vt100.Message) {
			switch m.Tag {
			case vt100.Bell:
				bell++
			case vt100.Title:
				fmt.Fprintf(os.Stderr, "title: %s\n", m.Text)
			case vt100.Answer:
				// A real PTY client would write m.Text back to the host.
			}
		}),
	)

	if _, err := term.Write(data); err != nil {
		log.Fatal(err)
	}

	screen := term.Screen()
	for row := 0; row < screen.Rows(); row++ {
		var sb strings.Builder
		line := screen.Line(row)
		for col := 0; col < line.Len(); col++ {
			sb.WriteRune(line.Cell(col).Char)
		}
		fmt.Println(strings.TrimRight(sb.String(), " "))
	}

	if bell > 0 {
		fmt.Fprintf(os.Stderr, "(bell rang %d times)\n", bell)
	}
}
