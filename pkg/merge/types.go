// File: pkg/merge/types.go
package merge

// Separator is written between the contents of consecutive input files.
const Separator = "\n\n---\n\n"

// DefaultPattern matches the markdown files directly under the input directory.
const DefaultPattern = "*.md"

// Options holds the inputs of a single merge run.
type Options struct {
	InputDir    string   // Directory scanned for matching files (not recursed into).
	OutputPath  string   // File created or truncated with the merged content.
	Pattern     string   // Glob pattern evaluated inside InputDir; empty means DefaultPattern.
	Exclude     []string // Ignore-style patterns matched against each candidate's path relative to InputDir.
	ExcludeFile string   // Optional file with more exclude patterns, one per line.
	Atomic      bool     // Write into a temporary file and rename it over OutputPath on success.
}

// Result describes what a merge run produced.
type Result struct {
	Files   []string // Merged files, in the order they were written.
	Bytes   int64    // Number of bytes written to the output.
	Written bool     // False when nothing matched and the output was left alone.
}

func (o Options) pattern() string {
	if o.Pattern == "" {
		return DefaultPattern
	}
	return o.Pattern
}
