package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/cachet/internal/ui/style"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [NAMESPACE]",
		Short: "Show entry count and disk usage of a namespace or the whole cache",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var namespace string
			if len(args) == 1 {
				namespace = args[0]
			}

			usage, err := c.app.Stats(cmd.Context(), namespace, c.opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s %d\n", style.Key.Render("entries: "), usage.Entries)
			_, _ = fmt.Fprintf(w, "%s %d bytes\n", style.Key.Render("content: "), usage.ContentBytes)
			_, _ = fmt.Fprintf(w, "%s %d bytes\n", style.Key.Render("metadata:"), usage.MetaBytes)
			_, _ = fmt.Fprintf(w, "%s %d bytes\n", style.Key.Render("total:   "), usage.TotalBytes())
			return nil
		},
	}
}
