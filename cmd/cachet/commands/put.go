package commands

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/cachet/internal/app"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

func (c *CLI) newPutCmd() *cobra.Command {
	var (
		opts        app.PutOptions
		contentPath string
		info        string
		missing     []string
	)

	cmd := &cobra.Command{
		Use:   "put SOURCE",
		Short: "Record dependencies and store output for a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Options = c.opts

			content, err := readContent(cmd, contentPath)
			if err != nil {
				return err
			}
			opts.Content = content

			if info != "" {
				opts.Info = json.RawMessage(info)
			}

			opts.Missing = opts.Missing[:0]
			for _, m := range missing {
				path, marker, _ := strings.Cut(m, "=")
				opts.Missing = append(opts.Missing, app.MissingDep{Path: path, Marker: marker})
			}

			return c.app.Put(cmd.Context(), args[0], opts)
		},
	}

	addNamespaceFlag(cmd, &opts.Namespace)
	cmd.Flags().StringVarP(&contentPath, "content", "c", "", "Read the output to cache from FILE, or stdin for -")
	cmd.Flags().StringVar(&info, "info", "", "JSON info payload stored with the entry")
	cmd.Flags().StringArrayVarP(&opts.Deps, "dep", "d", nil, "Dependency file (repeatable)")
	cmd.Flags().StringArrayVarP(&missing, "missing", "m", nil, "Unresolved reference as PATH[=MARKER] (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Merge, "merge", nil, "Merge dependencies of another cached SOURCE (repeatable)")

	return cmd
}

func readContent(cmd *cobra.Command, path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch path {
	case "":
		return nil, nil
	case "-":
		in := cmd.InOrStdin()
		if isTerminal(in) {
			return nil, zerr.Wrap(domain.ErrStdinIsTerminal, "pipe the output into put or pass --content FILE")
		}
		data, err = io.ReadAll(in)
	default:
		data, err = os.ReadFile(path) //nolint:gosec // Path is provided by the user
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrContentReadFailed.Error()), "path", path)
	}
	return data, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // File descriptors fit in int
}
