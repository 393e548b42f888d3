// Package ignore matches paths against gitignore-style exclude patterns.
package ignore

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Pattern is one compiled exclude line.
type Pattern struct {
	Regexp *regexp.Regexp // Anchored expression the normalized path must match.
	Negate bool           // Line started with '!': a match re-includes the path.
	Line   string         // Original line.
	LineNo int            // 1-based line number within its source.
}

// Matcher holds an ordered list of patterns. The last pattern that matches a
// path decides whether it is excluded.
type Matcher struct {
	Patterns []*Pattern
	logger   *zap.Logger
}

// New returns an empty Matcher. A nil logger disables logging.
func New(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger}
}

// CompileLines adds patterns; blank lines and '#' comments are skipped but
// still count towards the line numbers.
func (m *Matcher) CompileLines(lines ...string) {
	for i, line := range lines {
		lineNo := i + 1 // 1-based line numbering.
		re, negate, err := parseLine(line)
		if err != nil {
			m.logger.Warn("Skipping invalid exclude pattern",
				zap.String("pattern", line),
				zap.Int("lineNo", lineNo),
				zap.Error(err))
			continue
		}
		if re == nil {
			continue
		}
		m.Patterns = append(m.Patterns, &Pattern{Regexp: re, Negate: negate, Line: line, LineNo: lineNo})
		m.logger.Debug("Compiled exclude pattern",
			zap.String("pattern", line),
			zap.Bool("negate", negate))
	}
}

// CompileFile reads patterns from a file, one per line.
func (m *Matcher) CompileFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		m.logger.Error("Failed to read exclude file", zap.String("filePath", path), zap.Error(err))
		return fmt.Errorf("failed to read exclude file: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	m.CompileLines(lines...)
	m.logger.Debug("Loaded exclude file", zap.String("filePath", path), zap.Int("lineCount", len(lines)))
	return nil
}

// Matches reports whether path is excluded.
func (m *Matcher) Matches(path string) bool {
	matched, _ := m.MatchesWithPattern(path)
	return matched
}

// MatchesWithPattern reports whether path is excluded together with the
// pattern that decided it, or nil when no pattern matched.
func (m *Matcher) MatchesWithPattern(path string) (bool, *Pattern) {
	normalized := normalizePath(path)

	var decided *Pattern
	for _, p := range m.Patterns {
		if p.Regexp.MatchString(normalized) {
			decided = p
		}
	}
	if decided == nil {
		return false, nil
	}
	return !decided.Negate, decided
}

// normalizePath converts OS separators to forward slashes and drops a
// leading "./".
func normalizePath(path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	return strings.TrimPrefix(path, "./")
}

// parseLine turns one pattern line into an anchored regular expression.
// It returns a nil expression for blank lines and comments.
func parseLine(line string) (*regexp.Regexp, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false, nil
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = trimmed[1:]
	}
	// "\#" and "\!" stand for a literal leading character.
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}
	if trimmed == "" {
		return nil, false, nil
	}

	re, err := regexp.Compile(toRegexp(trimmed))
	if err != nil {
		return nil, false, err
	}
	return re, negate, nil
}

// toRegexp translates a glob line. A leading '/' anchors the pattern at the
// root; otherwise it may match at any depth. "**" spans directories, '*' and
// '?' stay within one path segment.
func toRegexp(pattern string) string {
	var b strings.Builder

	rooted := strings.HasPrefix(pattern, "/")
	pattern = strings.TrimPrefix(pattern, "/")
	dirOnly := strings.HasSuffix(pattern, "/")
	pattern = strings.TrimSuffix(pattern, "/")

	if rooted {
		b.WriteString("^")
	} else {
		b.WriteString("^(?:.*/)?")
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case strings.HasPrefix(pattern[i:], "**/"):
			b.WriteString("(?:.*/)?")
			i += 2
		case strings.HasPrefix(pattern[i:], "/**") && i+3 == len(pattern):
			b.WriteString("(?:/.*)?")
			i += 2
		case strings.HasPrefix(pattern[i:], "**"):
			b.WriteString(".*")
			i++
		case c == '*':
			b.WriteString("[^/]*")
		case c == '?':
			b.WriteString("[^/]")
		default:
			r, size := utf8.DecodeRuneInString(pattern[i:])
			b.WriteString(regexp.QuoteMeta(string(r)))
			i += size - 1
		}
	}

	if dirOnly {
		b.WriteString("/.*$")
	} else {
		b.WriteString("(?:/.*)?$")
	}
	return b.String()
}
