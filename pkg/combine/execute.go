// File: pkg/combine/execute.go
package combine

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"dirclip/pkg/console"
	"dirclip/pkg/ignore"
	"dirclip/pkg/sink"

	"go.uber.org/zap"
)

// Runner carries the collaborators of a copy run.
type Runner struct {
	Clipboard sink.Clipboard   // Destination in clipboard mode.
	Console   *console.Printer // Progress lines; nil is silent.
	Logger    *zap.Logger      // Diagnostics; nil is discarded.
}

// Run resolves the ignore set, walks args.Directory, filters by extension and
// copies the rendered blocks to the clipboard or to args.OutputFile.
//
// Unreadable directories and files are logged and skipped. An output file
// that cannot be opened aborts the run before anything is written. A
// clipboard failure is returned after every file has been read.
func (r *Runner) Run(args *Arguments) error {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()
	logger.Debug("Starting copy process", zap.String("directory", args.Directory))

	opts, err := ignoreOptions(args)
	if err != nil {
		return err
	}
	set, err := ignore.Resolve(opts, logger)
	if err != nil {
		logger.Error("Failed to resolve ignore rules", zap.Error(err))
		return fmt.Errorf("failed to resolve ignore rules: %w", err)
	}

	files, err := CollectFiles(args.Directory, set, logger)
	if err != nil {
		logger.Error("Failed to collect files", zap.Error(err))
		return fmt.Errorf("failed to collect files: %w", err)
	}
	files = FilterByExtension(files, args.FileTypes)
	logger.Debug("Selected files", zap.Int("fileCount", len(files)), zap.Strings("fileTypes", args.FileTypes))

	r.Console.Info("Starting copying contents")
	var written int
	if args.OutputFile == "" {
		written, err = r.copyToClipboard(files, logger)
	} else {
		written, err = r.copyToFile(files, args.OutputFile, logger)
	}
	if err != nil {
		return err
	}
	r.Console.Info("Finished copying contents")

	logger.Debug("Copy process completed",
		zap.Int("totalFiles", written),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// copyToFile truncates the output file and writes each block as it is read.
func (r *Runner) copyToFile(files []string, output string, logger *zap.Logger) (int, error) {
	outFile, err := sink.CreateFile(output)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", output), zap.Error(err))
		return 0, err
	}

	written, err := writeCombinedFile(outFile, files, func(path string) {
		r.Console.Success(path + " - read and written successfully")
	}, logger)
	if err != nil {
		return written, fmt.Errorf("failed to write combined file: %w", err)
	}
	return written, nil
}

// copyToClipboard renders every block in memory and writes the clipboard once.
func (r *Runner) copyToClipboard(files []string, logger *zap.Logger) (int, error) {
	var sb strings.Builder
	written, err := WriteBlocks(&sb, files, func(path string) {
		r.Console.Success(path + " - read successfully")
	}, logger)
	if err != nil {
		return written, err
	}

	clip := r.Clipboard
	if clip == nil {
		clip = sink.SystemClipboard{}
	}
	if err := sink.Copy(clip, sb.String()); err != nil {
		logger.Error("Couldn't copy the contents to the clipboard", zap.Error(err))
		r.Console.Warning("Couldn't copy the contents to the clipboard")
		return written, err
	}
	r.Console.Success("Successfully copied the contents of all the files to clipboard")
	return written, nil
}

// ignoreOptions maps the run arguments onto ignore resolution options. The
// output file is always excluded so a run never reads what it is writing.
func ignoreOptions(args *Arguments) (ignore.Options, error) {
	opts := ignore.Options{
		WorkDir:      args.WorkDir,
		Root:         args.Directory,
		Exclude:      args.Exclude,
		UseGitignore: !args.DisableGitignore,
		Nested:       args.NestedGitignore,
		IgnoreFiles:  args.IgnoreFiles,
		SkipHidden:   args.SkipHidden,
	}
	if args.OutputFile != "" {
		out, err := filepath.Abs(args.OutputFile)
		if err != nil {
			return opts, fmt.Errorf("failed to resolve output path: %w", err)
		}
		opts.Skip = append(opts.Skip, out)
	}
	return opts, nil
}
