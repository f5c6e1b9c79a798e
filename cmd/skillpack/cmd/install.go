package cmd

import (
	"fmt"
	"io"

	"github.com/barysiuk/skillpack/internal/core"
	"github.com/barysiuk/skillpack/internal/logger"
	"github.com/barysiuk/skillpack/internal/tui"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install skills and commands (same as running skillpack with no arguments)",
	Long: `Install every asset category from the source repository:

  OpenCode skills    skill/<name>/     replaced wholesale
  OpenCode commands  command/<name>.md overwritten
  Codex skills       codex-skill/<name>/ replaced wholesale

Missing source folders are skipped. Destination directories are created
as needed.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, _ []string) error {
	sourceRoot, err := core.ResolveSourceRoot(deps.cfg.Source)
	if err != nil {
		return err
	}

	systems, err := resolveTargetSystems()
	if err != nil {
		return err
	}

	log := logger.G(cmd.Context()).WithField("source", sourceRoot)
	log.Debug("starting install")

	out := cmd.OutOrStdout()
	installer := core.NewInstaller(systems, deps.env)
	result, err := installer.Install(core.InstallOptions{
		SourceRoot: sourceRoot,
		OnCategory: func(c core.CategoryResult) { printCategory(out, c) },
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, tui.SuccessStyle.Render(fmt.Sprintf("Done. Installed %d items.", result.Total())))
	log.WithField("total", result.Total()).Debug("install finished")
	return nil
}

// printCategory writes the per-category block of the install summary.
func printCategory(w io.Writer, c core.CategoryResult) {
	if c.Skipped {
		fmt.Fprintln(w, tui.WarningStyle.Render(fmt.Sprintf("Skipping %s: %s not found", c.Label(), c.SourceDir)))
		return
	}

	fmt.Fprintf(w, "%s %s\n",
		tui.HeaderStyle.Render(c.Label()+":"),
		tui.MutedStyle.Render(c.SourceDir+" -> "+c.DestDir))
	for _, item := range c.Items {
		fmt.Fprintf(w, "  + %s\n", item)
	}
	fmt.Fprintln(w, tui.SuccessStyle.Render(fmt.Sprintf("Installed %d %s", c.Count(), c.Label())))
}
