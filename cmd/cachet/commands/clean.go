package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cachet/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	var opts app.CleanOptions

	cmd := &cobra.Command{
		Use:   "clean [NAMESPACE]",
		Short: "Delete a cache namespace, or the whole cache with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var namespace string
			if len(args) == 1 {
				namespace = args[0]
			}

			opts.Options = c.opts
			_, err := c.app.Clean(cmd.Context(), namespace, opts)
			return err
		},
	}

	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Delete the entire cache root")

	return cmd
}
