package ignore

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	gitmatch "github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"go.uber.org/zap"
)

// readIgnoreLines returns the lines of an ignore file. A missing file yields
// no lines silently; any other read failure is logged and also yields none.
func readIgnoreLines(path string, logger *zap.Logger) []string {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("Ignore file does not exist and will be skipped", zap.String("filePath", path))
			return nil
		}
		logger.Warn("Failed to read ignore file", zap.String("filePath", path), zap.Error(err))
		return nil
	}

	lines := strings.Split(string(content), "\n")
	logger.Debug("Read ignore file lines", zap.String("filePath", path), zap.Int("lineCount", len(lines)))
	return lines
}

// loadNested collects the patterns of every .gitignore below root, each scoped
// to the directory that holds it.
func loadNested(root string, logger *zap.Logger) gitmatch.Matcher {
	patterns, err := gitmatch.ReadPatterns(osfs.New(root), nil)
	if err != nil {
		logger.Warn("Failed to read nested ignore files", zap.String("root", root), zap.Error(err))
	}
	logger.Debug("Loaded nested ignore patterns", zap.String("root", root), zap.Int("patternCount", len(patterns)))
	if len(patterns) == 0 {
		return nil
	}
	return gitmatch.NewMatcher(patterns)
}
