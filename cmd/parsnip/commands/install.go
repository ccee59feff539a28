package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/parsnip/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [parsers...]",
		Short: "Install the specified parsers",
		Long: `Install builds and installs one parser per argument. Arguments may be
parser names, tier aliases, or "all" for every declared parser.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			force, _ := cmd.Flags().GetBool("force")
			generate, _ := cmd.Flags().GetBool("generate")
			excludeIgnored, _ := cmd.Flags().GetBool("exclude-ignored")
			synchronous, _ := cmd.Flags().GetBool("sync")
			return c.app.Install(cmd.Context(), args, app.Options{
				Force:          force,
				Sync:           synchronous,
				ExcludeIgnored: excludeIgnored,
				Generate:       generate,
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Reinstall without asking when already installed")
	cmd.Flags().BoolP("generate", "g", false, "Regenerate the grammar before compiling")
	cmd.Flags().Bool("exclude-ignored", false, "Skip parsers on the ignore list")
	return cmd
}
