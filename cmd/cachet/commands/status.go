package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/cachet/internal/app"
	"go.trai.ch/cachet/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	var opts app.StatusOptions

	cmd := &cobra.Command{
		Use:   "status SOURCE...",
		Short: "Report whether the cached output of each source is reusable",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			opts.Options = c.opts
			results, err := c.app.Status(cmd.Context(), args, opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, r := range results {
				_, _ = fmt.Fprintf(w, "%s  %s\n", style.Verdict(r.Status.Fresh(), r.Status.String()), r.Source)
				for _, path := range r.ResolvedMissing {
					_, _ = fmt.Fprintln(w, style.Muted.Render("    now resolves: "+path))
				}
			}
			return nil
		},
	}

	addNamespaceFlag(cmd, &opts.Namespace)

	return cmd
}
