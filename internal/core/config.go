package core

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/barysiuk/skillpack/internal/core/system"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "SKILLPACK"
	configDirName  = "skillpack"
	configFileName = "config.yaml"
)

// Config holds the resolved skillpack settings. Precedence follows viper:
// flag > SKILLPACK_* environment > config file > default.
type Config struct {
	Source    string   // repository root; empty means the working directory
	Tools     []string // system names; empty means all
	LogLevel  string
	LogFormat string
}

// NewViper creates a viper instance with skillpack's environment bindings
// and defaults. The config file is not read until LoadConfig.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// Standard variables are read unprefixed.
	_ = v.BindEnv("xdg_config_home", "XDG_CONFIG_HOME")
	_ = v.BindEnv("codex_home", "CODEX_HOME")

	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "fmt")
	return v
}

// LoadEnv builds the path resolution environment from v.
func LoadEnv(v *viper.Viper) system.Env {
	home, _ := os.UserHomeDir()
	return system.Env{
		Home:          home,
		XDGConfigHome: v.GetString("xdg_config_home"),
		CodexHome:     v.GetString("codex_home"),
		GOOS:          runtime.GOOS,
	}
}

// ConfigPath returns the location of the optional config file.
func ConfigPath(env system.Env) string {
	return filepath.Join(env.ConfigHome(), configDirName, configFileName)
}

// LoadConfig reads the optional config file into v and returns the merged
// settings. A missing config file is not an error.
func LoadConfig(v *viper.Viper, env system.Env) (*Config, error) {
	path := ConfigPath(env)
	if fileExists(path) {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	return &Config{
		Source:    v.GetString("source"),
		Tools:     splitList(v.Get("tools")),
		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
	}, nil
}

// splitList accepts either a YAML list or a comma-separated string.
func splitList(raw any) []string {
	var parts []string
	switch val := raw.(type) {
	case string:
		parts = strings.Split(val, ",")
	case []string:
		parts = val
	case []any:
		for _, item := range val {
			parts = append(parts, fmt.Sprint(item))
		}
	}

	var result []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
