package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/barysiuk/skillpack/internal/core"
	"github.com/barysiuk/skillpack/internal/core/asset"
	"github.com/barysiuk/skillpack/internal/core/system"
	"github.com/barysiuk/skillpack/internal/tui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <skill>",
	Short: "Render a skill from the source repository",
	Long: `Render a skill's SKILL.md from the source repository.

The skill is looked up by directory name under skill/ (or codex-skill/
with --tool codex). Use --raw to print the file unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		toolName, _ := cmd.Flags().GetString("tool")
		raw, _ := cmd.Flags().GetBool("raw")

		systems, err := system.ByNames([]string{toolName})
		if err != nil {
			return err
		}
		sys := systems[0]

		sourceRoot, err := core.ResolveSourceRoot(deps.cfg.Source)
		if err != nil {
			return err
		}

		skill, err := core.LoadSourceSkill(sourceRoot, sys, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if raw {
			data, err := os.ReadFile(filepath.Join(skill.Dir, asset.SkillFileName))
			if err != nil {
				return fmt.Errorf("reading skill: %w", err)
			}
			_, err = out.Write(data)
			return err
		}

		fmt.Fprintln(out, tui.HeaderStyle.Render(skill.Name()))
		if summary := skill.Frontmatter.Summary(); summary != "" {
			fmt.Fprintln(out, tui.MutedStyle.Render(summary))
		}
		if len(skill.Sidecar) > 0 {
			keys := make([]string, 0, len(skill.Sidecar))
			for k := range skill.Sidecar {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintln(out, tui.MutedStyle.Render(fmt.Sprintf("%s: %v", k, skill.Sidecar[k])))
			}
		}

		rendered, err := tui.RenderMarkdown(skill.Body, terminalWidth())
		if err != nil {
			return err
		}
		fmt.Fprint(out, rendered)
		return nil
	},
}

func init() {
	showCmd.Flags().String("tool", "opencode", "Tool whose source folder to read (opencode, codex)")
	showCmd.Flags().Bool("raw", false, "Print SKILL.md without rendering")
	rootCmd.AddCommand(showCmd)
}
