package cmd

import (
	"fmt"

	"github.com/barysiuk/skillpack/internal/core"
	"github.com/barysiuk/skillpack/internal/core/asset"
	"github.com/barysiuk/skillpack/internal/tui"
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <name>",
	Short: "Remove an installed skill or command",
	Long: `Remove an installed skill (by directory name) from every targeted tool.
Use --command to remove a slash command instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		isCommand, _ := cmd.Flags().GetBool("command")
		kind := asset.KindSkill
		if isCommand {
			kind = asset.KindCommand
		}

		systems, err := resolveTargetSystems()
		if err != nil {
			return err
		}

		removed, err := core.NewRemover(systems, deps.env).Remove(kind, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, r := range removed {
			fmt.Fprintf(out, "%s %s\n", tui.SuccessStyle.Render("Removed:"), r.Path)
		}
		return nil
	},
}

func init() {
	uninstallCmd.Flags().Bool("command", false, "Remove a slash command instead of a skill")
	rootCmd.AddCommand(uninstallCmd)
}
