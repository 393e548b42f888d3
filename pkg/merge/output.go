// File: pkg/merge/output.go
package merge

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// output is the destination file of a run. In atomic mode the data goes to
// a temporary sibling that replaces the destination on commit.
type output struct {
	*os.File
	dest   string
	atomic bool
	logger *zap.Logger
}

// createOutput opens the destination for writing, truncating it unless
// atomic is set, in which case a temporary file next to it is created.
func createOutput(dest string, atomic bool, logger *zap.Logger) (*output, error) {
	var (
		f   *os.File
		err error
	)
	if atomic {
		f, err = os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*.tmp")
		if err == nil {
			if cerr := f.Chmod(0o644); cerr != nil {
				err = multierr.Combine(cerr, f.Close(), os.Remove(f.Name()))
			}
		}
	} else {
		f, err = os.Create(dest)
	}
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", dest), zap.Error(err))
		return nil, fmt.Errorf("%w: creating %s: %w", ErrIO, dest, err)
	}
	logger.Debug("Opened output file",
		zap.String("file", dest),
		zap.String("handle", f.Name()),
		zap.Bool("atomic", atomic))
	return &output{File: f, dest: dest, atomic: atomic, logger: logger}, nil
}

// finish closes the handle. On success an atomic output is renamed over the
// destination; on failure its temporary file is removed. A non-atomic output
// keeps whatever was written before the failure.
func (o *output) finish(failed bool) (err error) {
	if cerr := o.Close(); cerr != nil {
		o.logger.Error("Failed to close output file", zap.String("file", o.Name()), zap.Error(cerr))
		err = fmt.Errorf("%w: closing %s: %w", ErrIO, o.dest, cerr)
	}
	if !o.atomic {
		return err
	}

	if failed || err != nil {
		if rerr := os.Remove(o.Name()); rerr != nil {
			o.logger.Warn("Failed to remove temporary output", zap.String("file", o.Name()), zap.Error(rerr))
		}
		return err
	}

	if rerr := os.Rename(o.Name(), o.dest); rerr != nil {
		o.logger.Error("Failed to move temporary output into place",
			zap.String("from", o.Name()),
			zap.String("to", o.dest),
			zap.Error(rerr))
		err = multierr.Append(err, fmt.Errorf("%w: renaming to %s: %w", ErrIO, o.dest, rerr))
		_ = os.Remove(o.Name())
	}
	return err
}
