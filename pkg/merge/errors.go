package merge

import (
	"errors"
	"path/filepath"
)

// Sentinel errors for the failure classes of a merge run. Returned errors wrap
// one of these together with the offending path, so callers match with errors.Is.
var (
	ErrNotFound   = errors.New("input directory not found")
	ErrIO         = errors.New("i/o error")
	ErrDecode     = errors.New("invalid UTF-8 content")
	ErrBadPattern = errors.New("invalid glob pattern")
)

// badPatternError keeps filepath.ErrBadPattern reachable through errors.Is
// next to ErrBadPattern.
type badPatternError struct {
	pattern string
}

func (e *badPatternError) Error() string {
	return ErrBadPattern.Error() + ": " + e.pattern
}

func (e *badPatternError) Unwrap() []error {
	return []error{ErrBadPattern, filepath.ErrBadPattern}
}
