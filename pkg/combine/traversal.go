// File: pkg/combine/traversal.go
package combine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dirclip/pkg/ignore"

	"go.uber.org/zap"
)

// CollectFiles walks root depth-first in lexical order and returns every
// regular file not excluded by m. Excluded directories are pruned without
// being read. Unreadable directories are logged and skipped; the only error
// returned is a root that cannot be accessed at all.
func CollectFiles(root string, m ignore.Matcher, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory %s: %w", root, err)
	}
	walkRoot := root
	if info.IsDir() {
		// WalkDir does not descend into a symlinked root unless the path
		// resolves through a trailing separator.
		if linfo, err := os.Lstat(root); err == nil && linfo.Mode()&fs.ModeSymlink != 0 {
			walkRoot = root + string(filepath.Separator)
		}
	}
	logger.Debug("Starting file traversal and collection", zap.String("root", walkRoot))

	var files []string
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}

		if path != walkRoot && m != nil && m.Excludes(path, d.IsDir()) {
			if d.IsDir() {
				logger.Debug("Skipping excluded directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			logger.Debug("Skipping excluded file", zap.String("filePath", path))
			return nil
		}

		if d.IsDir() || !isRegularFile(path, d) {
			return nil
		}

		files = append(files, path)
		logger.Debug("Added file to processing list", zap.String("filePath", path))
		return nil
	})
	if err != nil {
		logger.Error("Error during file traversal", zap.Error(err))
		return files, err
	}

	logger.Debug("Completed file traversal", zap.Int("fileCount", len(files)))
	return files, nil
}

// isRegularFile accepts regular files and symlinks that resolve to one.
// Symlinked directories are never followed.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
