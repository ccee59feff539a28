// Package commands implements the CLI commands for the parsnip parser manager.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/parsnip/internal/app"
	"go.trai.ch/parsnip/internal/build"
)

// CLI represents the command line interface for parsnip.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Install(ctx context.Context, requested []string, opts app.Options) error
	Update(ctx context.Context, requested []string, opts app.Options) error
	Uninstall(ctx context.Context, requested []string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "parsnip",
		Short:         "Install and maintain grammar parsers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("sync", false, "Run pipelines one at a time instead of concurrently")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newUninstallCmd())
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
