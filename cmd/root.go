package cmd

import (
	"dirclip/pkg/logging"
	"dirclip/pkg/version"

	"github.com/spf13/cobra"
)

// AppName is reported in every log line.
const AppName = "dirclip"

// NewRootCmd builds the command that copies the files of a directory to the
// clipboard or an output file. Each call returns an independent command with
// its own flag state.
func NewRootCmd() *cobra.Command {
	var debug bool
	opts := &combineOptions{}

	root := &cobra.Command{
		Use:   "dirclip <directory>",
		Short: "Parse the files in your directory to a clipboard or a file",
		Long: `dirclip goes through the given directory and copies the contents of its files
to the clipboard, or, if an output file is provided, writes them to that file,
so you can feed them to an LLM. Each file is wrapped in a fenced block
carrying its path.`,
		Version:       version.Get().Short(),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !debug {
				return nil
			}
			return logging.Setup(true, AppName, version.Get().Short())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCombine(cmd, args, opts)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable development logging at debug level")
	opts.addFlags(root)
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs a fresh root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
