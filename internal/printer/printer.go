// Package printer writes the paths selected by the walker
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer writes selected paths to its output as they are found
type Printer struct {
	output      io.Writer
	errOutput   io.Writer
	useColors   bool
	jsonOutput  bool
	jsonStarted bool
	paint       *color.Color
}

// New creates a new Printer writing plain lines to stdout
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		errOutput: os.Stderr,
		paint:     color.New(color.FgCyan, color.Bold),
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	if enabled {
		p.paint.EnableColor()
	} else {
		p.paint.DisableColor()
	}
	return p
}

// WithJSON enables JSON array output
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonOutput = enabled
	return p
}

// JSONEntry is one element of the JSON output
type JSONEntry struct {
	Path string `json:"path"`
}

// PrintPath outputs one selected path
func (p *Printer) PrintPath(path string) {
	if p.jsonOutput {
		data, err := json.Marshal(JSONEntry{Path: path})
		if err != nil {
			fmt.Fprintf(p.errOutput, "Error marshaling JSON: %v\n", err)
			return
		}
		sep := ",\n"
		if !p.jsonStarted {
			sep = "[\n"
			p.jsonStarted = true
		}
		fmt.Fprintf(p.output, "%s  %s", sep, data)
		return
	}

	if p.useColors {
		p.paint.Fprintln(p.output, path)
		return
	}
	fmt.Fprintln(p.output, path)
}

// Finalize closes the JSON array. An empty listing prints "[]".
func (p *Printer) Finalize() {
	if !p.jsonOutput {
		return
	}
	if p.jsonStarted {
		fmt.Fprint(p.output, "\n]\n")
		return
	}
	fmt.Fprint(p.output, "[]\n")
}
