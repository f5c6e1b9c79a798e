package system

import "github.com/barysiuk/skillpack/internal/core/asset"

// Codex implements the System interface for the Codex CLI.
type Codex struct {
	BaseSystem
}

// NewCodex creates a configured Codex system.
func NewCodex() *Codex {
	return &Codex{BaseSystem{
		name:        "codex",
		displayName: "Codex",
		configRoot:  "$CODEX_HOME",
		assets: []assetPaths{
			{kind: asset.KindSkill, source: "codex-skill", dest: "$CODEX_HOME/skills"},
		},
	}}
}

// Codex is skills-only and uses the default BaseSystem behavior.
