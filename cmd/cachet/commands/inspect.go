package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.trai.ch/cachet/internal/app"
	"go.trai.ch/cachet/internal/core/domain"
)

type inspectView struct {
	Source  string         `json:"source"`
	Status  string         `json:"status"`
	Content string         `json:"content"`
	Meta    string         `json:"meta"`
	Record  *domain.Record `json:"record"`
}

func (c *CLI) newInspectCmd() *cobra.Command {
	var opts app.GetOptions

	cmd := &cobra.Command{
		Use:   "inspect SOURCE",
		Short: "Print the persisted metadata of a source file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Options = c.opts
			res, err := c.app.Inspect(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(inspectView{
				Source:  res.Source,
				Status:  res.Status.String(),
				Content: res.Keys.Content,
				Meta:    res.Keys.Meta,
				Record:  res.Record,
			}, "", "  ")
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		},
	}

	addNamespaceFlag(cmd, &opts.Namespace)

	return cmd
}
