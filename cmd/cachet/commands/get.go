package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/cachet/internal/app"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newGetCmd() *cobra.Command {
	var (
		opts     app.GetOptions
		outPath  string
		infoOnly bool
	)

	cmd := &cobra.Command{
		Use:   "get SOURCE",
		Short: "Print the cached output of a source file, exiting 1 on a miss",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Options = c.opts
			out, err := c.app.Get(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			data := out.Content
			if infoOnly {
				data = append(append([]byte{}, out.Info...), '\n')
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outPath, data, domain.FilePerm); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to write output"), "path", outPath)
			}
			return nil
		},
	}

	addNamespaceFlag(cmd, &opts.Namespace)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to FILE instead of stdout")
	cmd.Flags().BoolVar(&infoOnly, "info", false, "Print the info payload instead of the content")

	return cmd
}
