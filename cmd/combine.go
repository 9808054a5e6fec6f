package cmd

import (
	"dirclip/pkg/combine"
	"dirclip/pkg/console"
	"dirclip/pkg/logging"
	"dirclip/pkg/sink"

	"github.com/spf13/cobra"
)

type combineOptions struct {
	outputFile       string
	fileTypes        []string
	exclude          []string
	ignoreFiles      []string
	disableGitignore bool
	nestedGitignore  bool
	skipHidden       bool
}

func (o *combineOptions) addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&o.outputFile, "output-file", "o", "", "File to give the output to; the clipboard is used when unset")
	flags.StringSliceVarP(&o.fileTypes, "file-types", "f", nil, "Extensions to read (e.g. 'go,md'); all files are read when unset")
	flags.StringSliceVarP(&o.exclude, "exclude", "e", nil, "Files, directories or globs that won't be copied")
	flags.StringSliceVar(&o.ignoreFiles, "ignore-file", nil, "Additional gitignore-style files to apply")
	flags.BoolVar(&o.disableGitignore, "disable-gitignore", false, "Also copy files and directories listed in .gitignore, including .git")
	flags.BoolVar(&o.nestedGitignore, "nested-gitignore", false, "Honor .gitignore files found inside the directory tree")
	flags.BoolVar(&o.skipHidden, "skip-hidden", false, "Skip files and directories whose name starts with a dot")
}

// runCombine maps the parsed flags onto a copy run.
func runCombine(cmd *cobra.Command, args []string, o *combineOptions) error {
	runner := &combine.Runner{
		Clipboard: sink.SystemClipboard{},
		Console:   console.New(cmd.OutOrStdout()),
		Logger:    logging.Logger,
	}
	return runner.Run(&combine.Arguments{
		Directory:        args[0],
		OutputFile:       o.outputFile,
		FileTypes:        o.fileTypes,
		Exclude:          o.exclude,
		DisableGitignore: o.disableGitignore,
		NestedGitignore:  o.nestedGitignore,
		IgnoreFiles:      o.ignoreFiles,
		SkipHidden:       o.skipHidden,
	})
}
