package cmd

import (
	"fmt"

	"github.com/barysiuk/skillpack/internal/core"
	"github.com/barysiuk/skillpack/internal/tui"
	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show where assets are installed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		systems, err := targetSystems()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, sys := range systems {
			status := "not found"
			if sys.IsInstalled(deps.env) {
				status = "present"
			}
			fmt.Fprintf(out, "%s %s\n",
				tui.HeaderStyle.Render(sys.DisplayName()),
				tui.MutedStyle.Render("("+sys.ConfigRoot(deps.env)+", "+status+")"))
			for _, kind := range sys.SupportedKinds() {
				fmt.Fprintf(out, "  %-9s %s\n", kind.Plural()+":", sys.AssetDir(kind, deps.env))
			}
		}
		fmt.Fprintf(out, "%s %s\n", tui.HeaderStyle.Render("Config file:"), core.ConfigPath(deps.env))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
