// File: pkg/merge/discover.go
package merge

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"mdmerge/pkg/ignore"

	"go.uber.org/zap"
)

// Discover returns the entries directly under opts.InputDir that match the
// glob pattern and are not excluded, sorted by path string.
func Discover(opts Options, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	info, err := os.Stat(opts.InputDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Error("Input directory does not exist", zap.String("dir", opts.InputDir))
			return nil, fmt.Errorf("%w: %s", ErrNotFound, opts.InputDir)
		}
		logger.Error("Failed to stat input directory", zap.String("dir", opts.InputDir), zap.Error(err))
		return nil, fmt.Errorf("%w: stat %s: %w", ErrIO, opts.InputDir, err)
	}
	if !info.IsDir() {
		logger.Warn("Input path is not a directory; nothing can match", zap.String("dir", opts.InputDir))
	}

	pattern := opts.pattern()
	matches, err := filepath.Glob(filepath.Join(escapeMeta(opts.InputDir), pattern))
	if err != nil {
		logger.Error("Invalid glob pattern", zap.String("pattern", pattern), zap.Error(err))
		return nil, &badPatternError{pattern: pattern}
	}
	logger.Debug("Glob evaluated", zap.String("pattern", pattern), zap.Int("matches", len(matches)))

	if len(opts.Exclude) > 0 || opts.ExcludeFile != "" {
		matcher := ignore.New(logger)
		if opts.ExcludeFile != "" {
			if err := matcher.CompileFile(opts.ExcludeFile); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrIO, opts.ExcludeFile, err)
			}
		}
		matcher.CompileLines(opts.Exclude...)
		kept := matches[:0]
		for _, path := range matches {
			if matcher.Matches(excludeKey(opts.InputDir, path)) {
				logger.Debug("Excluded file", zap.String("file", path))
				continue
			}
			kept = append(kept, path)
		}
		matches = kept
	}

	sortPaths(matches)
	return matches, nil
}

// excludeKey is the path exclude patterns are matched against: the match
// relative to the input directory, or its base name if that cannot be computed.
func excludeKey(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}

// sortPaths orders paths by plain byte comparison, so "file10.md" comes
// before "file2.md".
func sortPaths(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		return paths[i] < paths[j]
	})
}

// escapeMeta quotes glob metacharacters in a literal directory name so only
// the pattern itself is interpreted. Backslash is the separator on Windows
// and cannot act as an escape there.
func escapeMeta(dir string) string {
	if runtime.GOOS == "windows" || !strings.ContainsAny(dir, `*?[\`) {
		return dir
	}
	var b strings.Builder
	for _, r := range dir {
		switch r {
		case '*', '?', '[', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
