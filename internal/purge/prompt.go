package purge

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Prompter asks the user to confirm deleting count files.
type Prompter interface {
	Confirm(count int) (bool, error)
}

// LinePrompter writes a question and reads one line of answer. An empty
// line, "y" or "Y" confirms. End of input reads as an empty line.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
	hl  *color.Color
}

// NewLinePrompter creates a LinePrompter. When colors is set, the count in
// the question is highlighted.
func NewLinePrompter(in io.Reader, out io.Writer, colors bool) *LinePrompter {
	hl := color.New(color.FgYellow, color.Bold)
	if colors {
		hl.EnableColor()
	} else {
		hl.DisableColor()
	}
	return &LinePrompter{in: bufio.NewReader(in), out: out, hl: hl}
}

func (p *LinePrompter) Confirm(count int) (bool, error) {
	fmt.Fprintf(p.out, "Do you really want to delete %s file(s)? [Y/n] ", p.hl.Sprint(count))

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("purge: reading confirmation: %w", err)
	}

	switch strings.TrimSpace(line) {
	case "", "y", "Y":
		return true, nil
	default:
		return false, nil
	}
}
