// File: pkg/merge/merge.go
package merge

import (
	"bufio"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Run merges the files selected by opts into opts.OutputPath.
//
// Files are written in sorted path order with Separator between consecutive
// contents. When nothing matches, the output is not touched and Run returns
// a Result with Written set to false and a nil error. Outside atomic mode a
// failure part way through leaves the partially written output on disk.
func Run(opts Options, reporter Reporter, logger *zap.Logger) (res Result, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reporter == nil {
		reporter = Discard
	}
	startTime := time.Now()
	logger.Debug("Starting merge",
		zap.String("inputDir", opts.InputDir),
		zap.String("output", opts.OutputPath),
		zap.String("pattern", opts.pattern()))

	files, err := Discover(opts, logger)
	if err != nil {
		return Result{}, err
	}

	if len(files) == 0 {
		logger.Warn("No files matched", zap.String("dir", opts.InputDir), zap.String("pattern", opts.pattern()))
		reporter.Empty(opts.InputDir)
		return Result{}, nil
	}
	reporter.Found(len(files))

	out, err := createOutput(opts.OutputPath, opts.Atomic, logger)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		err = multierr.Append(err, out.finish(err != nil))
		if err == nil {
			reporter.Done(opts.OutputPath)
		}
	}()

	n, err := writeAll(bufio.NewWriter(out), files, reporter, logger)
	if err != nil {
		return Result{}, err
	}

	logger.Debug("Merge written",
		zap.Int("totalFiles", len(files)),
		zap.Int64("bytes", n),
		zap.Duration("elapsed", time.Since(startTime)))
	return Result{Files: files, Bytes: n, Written: true}, nil
}

// writeAll streams each file's text into w, separated by Separator, and
// flushes w. It returns the number of bytes written.
func writeAll(w *bufio.Writer, files []string, reporter Reporter, logger *zap.Logger) (int64, error) {
	var total int64
	for i, path := range files {
		reporter.Processing(path)

		content, err := readText(path, logger)
		if err != nil {
			// Keep what was merged so far, as a plain write-through would.
			if ferr := w.Flush(); ferr != nil {
				logger.Warn("Failed to flush partial output", zap.Error(ferr))
			}
			return total, err
		}

		if i > 0 {
			n, err := w.WriteString(Separator)
			total += int64(n)
			if err != nil {
				logger.Error("Failed to write separator", zap.String("contentPath", path), zap.Error(err))
				return total, fmt.Errorf("%w: writing output: %w", ErrIO, err)
			}
		}

		n, err := w.WriteString(content)
		total += int64(n)
		if err != nil {
			logger.Error("Failed to write content", zap.String("contentPath", path), zap.Error(err))
			return total, fmt.Errorf("%w: writing output: %w", ErrIO, err)
		}
	}

	if err := w.Flush(); err != nil {
		logger.Error("Failed to flush output", zap.Error(err))
		return total, fmt.Errorf("%w: flushing output: %w", ErrIO, err)
	}
	return total, nil
}
