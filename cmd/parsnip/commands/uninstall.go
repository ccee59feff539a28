package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall [parsers...]",
		Short: "Remove installed parsers",
		Long: `Uninstall removes the compiled artifact, the query link and the installed
marker for each named parser. "all" removes every installed parser.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.Uninstall(cmd.Context(), args)
		},
	}
}
