// Package commands implements the CLI commands for cachet.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cachet/internal/app"
	"go.trai.ch/cachet/internal/build"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/engine/cache"
)

// CLI represents the command line interface for cachet.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	opts    app.Options
}

// Application represents the application logic interface.
type Application interface {
	Get(ctx context.Context, source string, opts app.GetOptions) (*cache.Output, error)
	Put(ctx context.Context, source string, opts app.PutOptions) error
	Status(ctx context.Context, sources []string, opts app.StatusOptions) ([]app.SourceStatus, error)
	Inspect(ctx context.Context, source string, opts app.GetOptions) (*app.InspectResult, error)
	Stats(ctx context.Context, namespace string, opts app.Options) (domain.Usage, error)
	Clean(ctx context.Context, namespace string, opts app.CleanOptions) (bool, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cachet",
		Short:         "A per-file compilation cache keyed by source and dependency modification times",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.opts.ConfigPath, "config", "", "Path to the config file (default "+domain.ConfigFileName+")")
	flags.StringVar(&c.opts.Root, "root", "", "Override the cache root directory")
	flags.BoolVar(&c.opts.NoCache, "no-cache", false, "Treat every entry as a miss")
	flags.BoolVarP(&c.opts.Verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&c.opts.JSON, "json", false, "Log as JSON")

	rootCmd.AddCommand(c.newGetCmd())
	rootCmd.AddCommand(c.newPutCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newStatsCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the stream read by put --content -. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

func addNamespaceFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "namespace", "n", "", "Cache namespace (subdirectory of the cache root)")
}
