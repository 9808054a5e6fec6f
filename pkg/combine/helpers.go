// File: pkg/combine/helpers.go
package combine

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// writeCombinedFile writes the rendered blocks of files to outFile and closes it.
func writeCombinedFile(outFile *os.File, files []string, report func(path string), logger *zap.Logger) (written int, err error) {
	logger.Debug("Writing combined content to output file", zap.String("combinedFile", outFile.Name()))

	defer func() {
		if cerr := outFile.Close(); cerr != nil {
			logger.Error("Failed to close output file", zap.String("file", outFile.Name()), zap.Error(cerr))
			if err == nil {
				err = fmt.Errorf("failed to close output: %w", cerr)
			}
		}
	}()

	writer := bufio.NewWriter(outFile)
	// Flush before each progress line so a reported file is on disk.
	written, err = WriteBlocks(writer, files, func(path string) {
		if ferr := writer.Flush(); ferr != nil {
			logger.Error("Failed to flush output file", zap.String("file", outFile.Name()), zap.Error(ferr))
		}
		if report != nil {
			report(path)
		}
	}, logger)
	if err != nil {
		logger.Error("Failed to write content to combined file", zap.String("file", outFile.Name()), zap.Error(err))
		return written, err
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outFile.Name()), zap.Error(err))
		return written, fmt.Errorf("failed to flush output: %w", err)
	}
	return written, nil
}
