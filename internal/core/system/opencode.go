package system

import "github.com/barysiuk/skillpack/internal/core/asset"

// OpenCode implements the System interface for the OpenCode AI coding tool.
// OpenCode reads skills and slash commands from its XDG config directory.
type OpenCode struct {
	BaseSystem
}

// NewOpenCode creates a configured OpenCode system.
func NewOpenCode() *OpenCode {
	return &OpenCode{BaseSystem{
		name:        "opencode",
		displayName: "OpenCode",
		configRoot:  "$XDG_CONFIG/opencode",
		assets: []assetPaths{
			{kind: asset.KindSkill, source: "skill", dest: "$XDG_CONFIG/opencode/skill"},
			{kind: asset.KindCommand, source: "command", dest: "$XDG_CONFIG/opencode/command"},
		},
	}}
}
