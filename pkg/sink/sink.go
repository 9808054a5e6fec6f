// Package sink provides the destinations a run writes to: the system
// clipboard or a truncated output file.
package sink

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

var (
	// ErrOpenOutput wraps failures to create or truncate the output file.
	ErrOpenOutput = errors.New("cannot open output file")
	// ErrClipboard wraps failures to write the clipboard.
	ErrClipboard = errors.New("cannot write to clipboard")
)

// Clipboard receives the complete rendered text in one call.
type Clipboard interface {
	WriteAll(text string) error
}

// Func adapts a plain function to Clipboard.
type Func func(text string) error

// WriteAll calls f(text).
func (f Func) WriteAll(text string) error {
	return f(text)
}

// SystemClipboard writes to the platform clipboard.
type SystemClipboard struct{}

// WriteAll replaces the clipboard contents with text.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility available on this system")
	}
	return clipboard.WriteAll(text)
}

// Copy writes text to c, wrapping any failure in ErrClipboard.
func Copy(c Clipboard, text string) error {
	if err := c.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboard, err)
	}
	return nil
}

// CreateFile opens path for writing, creating it if absent and truncating it
// if present.
func CreateFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpenOutput, path, err)
	}
	return f, nil
}
