package merge

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// newlines folds CRLF and lone CR into LF, matching text-mode reads.
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// readText reads a whole input file and returns it as UTF-8 text with
// normalized line endings.
func readText(path string, logger *zap.Logger) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed to read file", zap.String("filePath", path), zap.Error(err))
		return "", fmt.Errorf("%w: reading %s: %w", ErrIO, path, err)
	}

	text, err := decodeUTF8(raw)
	if err != nil {
		logger.Error("File is not valid UTF-8", zap.String("filePath", path), zap.Error(err))
		return "", fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	logger.Debug("Read file content",
		zap.String("filePath", path),
		zap.Int("contentSizeBytes", len(raw)))
	return text, nil
}

// decodeUTF8 validates raw as UTF-8 and normalizes its line endings.
func decodeUTF8(raw []byte) (string, error) {
	valid, _, err := transform.Bytes(encoding.UTF8Validator, raw)
	if err != nil {
		return "", err
	}
	return newlines.Replace(string(valid)), nil
}
