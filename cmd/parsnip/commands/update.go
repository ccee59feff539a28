package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/parsnip/internal/app"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [parsers...]",
		Short: "Rebuild installed parsers whose pinned revision changed",
		Long: `Update rebuilds the named parsers unconditionally. With no arguments it
checks every installed parser against the lockfile and rebuilds only the
outdated ones.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			generate, _ := cmd.Flags().GetBool("generate")
			excludeIgnored, _ := cmd.Flags().GetBool("exclude-ignored")
			synchronous, _ := cmd.Flags().GetBool("sync")
			return c.app.Update(cmd.Context(), args, app.Options{
				Sync:           synchronous,
				ExcludeIgnored: excludeIgnored,
				Generate:       generate,
			})
		},
	}
	cmd.Flags().BoolP("generate", "g", false, "Regenerate the grammar before compiling")
	cmd.Flags().Bool("exclude-ignored", false, "Skip parsers on the ignore list")
	return cmd
}
