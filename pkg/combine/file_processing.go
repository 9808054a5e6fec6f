package combine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Fence delimits a rendered block.
const Fence = "```"

// ErrNotText is returned for files whose content is not valid UTF-8.
var ErrNotText = errors.New("file is not valid UTF-8 text")

// ReadText reads the entire file at path as text.
func ReadText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrNotText
	}
	return string(b), nil
}

// RenderBlock frames contents with a fence line naming path. Fences inside
// contents are passed through unescaped.
func RenderBlock(path, contents string) string {
	return Fence + path + "\n" + contents + Fence + "\n"
}

// WriteBlocks renders each file to w in order, one file open at a time.
// Files that cannot be read are logged and skipped. report, if non-nil, is
// called after each block is written. It returns the number of blocks written
// and stops only on a write error.
func WriteBlocks(w io.Writer, files []string, report func(path string), logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	written := 0
	for _, path := range files {
		contents, err := ReadText(path)
		if err != nil {
			logger.Error("Failed to read file", zap.String("filePath", path), zap.Error(err))
			continue
		}

		if _, err := io.WriteString(w, RenderBlock(path, contents)); err != nil {
			return written, fmt.Errorf("failed to write block for %s: %w", path, err)
		}
		written++
		logger.Debug("Rendered file", zap.String("filePath", path), zap.Int("contentSizeBytes", len(contents)))
		if report != nil {
			report(path)
		}
	}
	return written, nil
}
