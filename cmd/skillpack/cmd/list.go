package cmd

import (
	"fmt"

	"github.com/barysiuk/skillpack/internal/core"
	"github.com/barysiuk/skillpack/internal/tui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed skills and commands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		systems, err := targetSystems()
		if err != nil {
			return err
		}

		installed, err := core.NewScanner(systems, deps.env).ScanInstalled()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		width := terminalWidth()

		for _, sys := range systems {
			for _, kind := range sys.SupportedKinds() {
				fmt.Fprintf(out, "%s %s\n",
					tui.HeaderStyle.Render(sys.DisplayName()+" "+kind.Plural()),
					tui.MutedStyle.Render("("+sys.AssetDir(kind, deps.env)+")"))

				n := 0
				for _, a := range installed {
					if a.System != sys.Name() || a.Kind != kind {
						continue
					}
					n++
					line := "  " + a.Name
					if a.Description != "" {
						line += "  " + tui.MutedStyle.Render(a.Description)
					}
					fmt.Fprintln(out, tui.Truncate(line, width))
				}
				if n == 0 {
					fmt.Fprintln(out, tui.MutedStyle.Render("  (none)"))
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
