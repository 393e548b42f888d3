package merge

import (
	"fmt"
	"io"
	"path/filepath"
)

// Reporter receives the human-readable progress of a merge run. None of it
// ends up in the output file.
type Reporter interface {
	Found(count int)
	Processing(path string)
	Empty(dir string)
	Done(output string)
}

// TextReporter prints progress lines to a writer, usually stdout.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter returns a Reporter that writes to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (r *TextReporter) Found(count int) {
	fmt.Fprintf(r.w, "Found %d files to merge\n", count)
}

func (r *TextReporter) Processing(path string) {
	fmt.Fprintf(r.w, "Processing %s\n", filepath.Base(path))
}

func (r *TextReporter) Empty(dir string) {
	fmt.Fprintf(r.w, "No files found in %s\n", dir)
}

func (r *TextReporter) Done(output string) {
	fmt.Fprintf(r.w, "\nSuccessfully merged files into %s\n", output)
}

// Discard is a Reporter that drops every message.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Found(int) {}
func (discard) Processing(string) {}
func (discard) Empty(string) {}
func (discard) Done(string) {}
