package cmd

import (
	"fmt"

	"dirclip/pkg/version"

	"github.com/spf13/cobra"
)

// newVersionCmd prints build metadata; --short limits it to the version number.
func newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display the version of dirclip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := version.Get()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), v.Short())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), v.String())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print the version number only")
	return cmd
}
