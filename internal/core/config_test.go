package core

import (
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	env := testEnv(t)
	cfg, err := LoadConfig(NewViper(), env)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.LogLevel != "warn" || cfg.LogFormat != "fmt" {
		t.Errorf("defaults = %+v", cfg)
	}
	if len(cfg.Tools) != 0 {
		t.Errorf("Tools = %v, want empty", cfg.Tools)
	}
}

func TestLoadConfig_File(t *testing.T) {
	env := testEnv(t)
	writeFile(t, ConfigPath(env), "source: /srv/skills\ntools:\n  - codex\nlog_level: debug\n")

	cfg, err := LoadConfig(NewViper(), env)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Source != "/srv/skills" {
		t.Errorf("Source = %q", cfg.Source)
	}
	if !equalStrings(cfg.Tools, []string{"codex"}) {
		t.Errorf("Tools = %v", cfg.Tools)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	env := testEnv(t)
	writeFile(t, ConfigPath(env), "source: /from/file\n")
	t.Setenv("SKILLPACK_SOURCE", "/from/env")
	t.Setenv("SKILLPACK_TOOLS", "opencode, codex")

	cfg, err := LoadConfig(NewViper(), env)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Source != "/from/env" {
		t.Errorf("Source = %q, want /from/env", cfg.Source)
	}
	if !equalStrings(cfg.Tools, []string{"opencode", "codex"}) {
		t.Errorf("Tools = %v", cfg.Tools)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	env := testEnv(t)
	writeFile(t, ConfigPath(env), "source: [unclosed\n")
	if _, err := LoadConfig(NewViper(), env); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestLoadEnv(t *testing.T) {
	xdg := filepath.Join(t.TempDir(), "xdg")
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("CODEX_HOME", "")

	env := LoadEnv(NewViper())
	if env.XDGConfigHome != xdg {
		t.Errorf("XDGConfigHome = %q, want %q", env.XDGConfigHome, xdg)
	}
	if env.CodexHome != "" {
		t.Errorf("CodexHome = %q, want empty", env.CodexHome)
	}
	if env.Home == "" {
		t.Error("Home is empty")
	}
}
