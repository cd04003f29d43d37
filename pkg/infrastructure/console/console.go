// Package console implements the terminal interaction surface over an
// arbitrary reader and writer pair.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewScanner(in), out: out}
}

// Prompt writes the text and blocks for one line of input. A closed
// input stream surfaces as io.EOF.
func (t *Terminal) Prompt(text string) (string, error) {
	fmt.Fprintln(t.out, text)
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(t.in.Text()), nil
}

func (t *Terminal) Display(text string) {
	fmt.Fprintln(t.out, text)
}
