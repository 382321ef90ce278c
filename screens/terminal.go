// Package screens composes the session store, API gateway and engagement
// model into the client's interactive views, plus the navigation shell that
// picks the authenticated or unauthenticated stack. Screens read commands
// from a Terminal and render text back to it; both ends are plain
// reader/writer so tests can script them.
package screens

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Terminal is the screen's input/output surface.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Printf renders a line of output.
func (t *Terminal) Printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

// Println renders output followed by a newline.
func (t *Terminal) Println(args ...any) {
	fmt.Fprintln(t.out, args...)
}

// Prompt shows a label and reads one trimmed line. io.EOF surfaces when the
// input is exhausted, which screens treat as "go back".
func (t *Terminal) Prompt(label string) (string, error) {
	fmt.Fprintf(t.out, "%s: ", label)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question; only an explicit "y"/"yes" is a yes.
func (t *Terminal) Confirm(label string) bool {
	answer, err := t.Prompt(label + " [y/N]")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// Error renders a failure message the way every screen does: inline, never
// fatal to the process.
func (t *Terminal) Error(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(t.out, "Error: %s\n", err.Error())
}
