package cmd

import (
	"fmt"

	"github.com/barysiuk/skillpack/internal/core"
	"github.com/barysiuk/skillpack/internal/core/system"
	"github.com/barysiuk/skillpack/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// v holds flag, environment and config file settings.
var v = core.NewViper()

// deps is populated by the root PersistentPreRunE before any command runs.
var deps struct {
	env system.Env
	cfg *core.Config
}

var rootCmd = &cobra.Command{
	Use:   "skillpack",
	Short: "Install skills and slash commands for OpenCode and Codex",
	Long: `skillpack copies a repository of assistant assets into the places
OpenCode and Codex read them from:

  skill/        -> ${XDG_CONFIG_HOME:-~/.config}/opencode/skill/
  command/*.md  -> ${XDG_CONFIG_HOME:-~/.config}/opencode/command/
  codex-skill/  -> ${CODEX_HOME:-~/.codex}/skills/

Run without arguments from the repository root to install everything.
Existing skills with the same name are replaced, not merged.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runInstall,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "skillpack %s (commit: %s, built: %s)\n", Version, Commit, Date)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("source", "s", "", "Repository root to install from (default: current directory)")
	flags.String("tools", "", "Comma-separated tools to target (opencode,codex; default: all)")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.String("log-format", "fmt", "Log format (fmt, json)")

	bindFlag(v, "source", "source")
	bindFlag(v, "tools", "tools")
	bindFlag(v, "log_level", "log-level")
	bindFlag(v, "log_format", "log-format")

	rootCmd.AddCommand(versionCmd)
}

func bindFlag(v *viper.Viper, key, flag string) {
	_ = v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
}

// setup resolves the environment and config, and configures logging.
func setup(cmd *cobra.Command, _ []string) error {
	deps.env = core.LoadEnv(v)

	cfg, err := core.LoadConfig(v, deps.env)
	if err != nil {
		return err
	}
	deps.cfg = cfg

	if err := logger.SetLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger.SetLogFormat(cfg.LogFormat)

	cmd.SetContext(logger.WithLogger(cmd.Context(), logger.L.WithField("cmd", cmd.Name())))
	logger.G(cmd.Context()).
		WithField("config", core.ConfigPath(deps.env)).
		WithField("source", cfg.Source).
		Debug("configuration loaded")
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
