package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/barysiuk/skillpack/internal/core/asset"
	"github.com/barysiuk/skillpack/internal/core/system"
)

// ResolveSourceRoot returns the absolute repository root to install from.
// An empty value means the current working directory.
func ResolveSourceRoot(root string) (string, error) {
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		root = cwd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving source %s: %w", root, err)
	}
	if !dirExists(abs) {
		return "", fmt.Errorf("source %s is not a directory", abs)
	}
	return abs, nil
}

// LoadSourceSkill loads the named skill from a system's source folder under
// root. The name is the skill's directory name.
func LoadSourceSkill(root string, sys system.System, name string) (*asset.Skill, error) {
	if !sys.Supports(asset.KindSkill) {
		return nil, fmt.Errorf("%s does not support skills", sys.DisplayName())
	}
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return nil, fmt.Errorf("invalid skill name %q", name)
	}

	srcDir := filepath.Join(root, sys.SourceDir(asset.KindSkill))
	dir := filepath.Join(srcDir, name)
	if !dirExists(dir) {
		return nil, fmt.Errorf("skill %q not found in %s", name, srcDir)
	}
	return asset.LoadSkill(dir)
}
