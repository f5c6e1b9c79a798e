package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/barysiuk/skillpack/internal/core/asset"
)

func TestSystemRegistry(t *testing.T) {
	all := All()
	if len(all) != 2 {
		t.Fatalf("expected 2 systems, got %d", len(all))
	}
	// Install order matters: OpenCode first, then Codex.
	if all[0].Name() != "opencode" || all[1].Name() != "codex" {
		t.Errorf("order = %v, want [opencode codex]", Names(all))
	}
}

func TestByName(t *testing.T) {
	s, ok := ByName("codex")
	if !ok {
		t.Fatal("ByName(codex) not found")
	}
	if s.DisplayName() != "Codex" {
		t.Errorf("DisplayName() = %q", s.DisplayName())
	}

	if _, ok := ByName("cursor"); ok {
		t.Error("expected ByName for unknown to return false")
	}
}

func TestByNames(t *testing.T) {
	systems, err := ByNames([]string{"codex", "opencode", "codex"})
	if err != nil {
		t.Fatalf("ByNames() error: %v", err)
	}
	got := Names(systems)
	if len(got) != 2 || got[0] != "opencode" || got[1] != "codex" {
		t.Errorf("ByNames() = %v, want [opencode codex]", got)
	}
}

func TestByNames_Unknown(t *testing.T) {
	_, err := ByNames([]string{"opencode", "nonexistent"})
	if err == nil {
		t.Fatal("expected error for unknown system name")
	}
}

func TestSupporting(t *testing.T) {
	if n := len(Supporting(asset.KindSkill)); n != 2 {
		t.Errorf("expected 2 systems supporting skills, got %d", n)
	}
	cmds := Supporting(asset.KindCommand)
	if len(cmds) != 1 || cmds[0].Name() != "opencode" {
		t.Errorf("Supporting(command) = %v, want [opencode]", Names(cmds))
	}
}

func TestSystemPaths(t *testing.T) {
	home := filepath.FromSlash("/home/dev")
	env := Env{Home: home, GOOS: "linux"}

	tests := []struct {
		system string
		kind   asset.Kind
		source string
		dest   string
	}{
		{"opencode", asset.KindSkill, "skill", filepath.Join(home, ".config", "opencode", "skill")},
		{"opencode", asset.KindCommand, "command", filepath.Join(home, ".config", "opencode", "command")},
		{"codex", asset.KindSkill, "codex-skill", filepath.Join(home, ".codex", "skills")},
		{"codex", asset.KindCommand, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.system+"/"+string(tt.kind), func(t *testing.T) {
			s, _ := ByName(tt.system)
			if got := s.SourceDir(tt.kind); got != tt.source {
				t.Errorf("SourceDir() = %q, want %q", got, tt.source)
			}
			if got := s.AssetDir(tt.kind, env); got != tt.dest {
				t.Errorf("AssetDir() = %q, want %q", got, tt.dest)
			}
		})
	}
}

func TestSupportedKindsOrder(t *testing.T) {
	kinds := NewOpenCode().SupportedKinds()
	if len(kinds) != 2 || kinds[0] != asset.KindSkill || kinds[1] != asset.KindCommand {
		t.Errorf("SupportedKinds() = %v", kinds)
	}
}

func TestIsInstalled(t *testing.T) {
	home := t.TempDir()
	env := Env{Home: home, GOOS: "linux"}
	oc := NewOpenCode()

	if oc.IsInstalled(env) {
		t.Error("expected OpenCode not installed in empty home")
	}
	os.MkdirAll(filepath.Join(home, ".config", "opencode"), 0o755)
	if !oc.IsInstalled(env) {
		t.Error("expected OpenCode installed after creating config root")
	}
}
