package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/barysiuk/skillpack/internal/core/asset"
	"github.com/barysiuk/skillpack/internal/core/system"
)

// Scanner lists assets already present in system destination directories.
type Scanner struct {
	systems []system.System
	env     system.Env
}

// NewScanner creates a Scanner. A nil systems slice means every known system.
func NewScanner(systems []system.System, env system.Env) *Scanner {
	if systems == nil {
		systems = system.All()
	}
	return &Scanner{systems: systems, env: env}
}

// ScanInstalled returns installed assets grouped in system and kind order.
// Missing destination directories contribute nothing. Entries whose
// documents cannot be parsed are still listed, by file name.
func (s *Scanner) ScanInstalled() ([]InstalledAsset, error) {
	var result []InstalledAsset
	for _, sys := range s.systems {
		for _, kind := range sys.SupportedKinds() {
			found, err := s.scanDir(sys, kind)
			if err != nil {
				return nil, err
			}
			result = append(result, found...)
		}
	}
	return result, nil
}

func (s *Scanner) scanDir(sys system.System, kind asset.Kind) ([]InstalledAsset, error) {
	dir := sys.AssetDir(kind, s.env)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var result []InstalledAsset
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		item := InstalledAsset{
			System: sys.Name(),
			Kind:   kind,
			Name:   entry.Name(),
			Path:   path,
		}

		switch kind {
		case asset.KindSkill:
			if !dirExists(path) {
				continue
			}
			if skill, err := asset.LoadSkill(path); err == nil {
				item.Name = skill.Name()
				item.Description = skill.Frontmatter.Summary()
			}
		case asset.KindCommand:
			if !fileExists(path) || !asset.IsCommandFile(entry.Name()) {
				continue
			}
			if cmd, err := asset.LoadCommand(path); err == nil {
				item.Name = cmd.Name()
				item.Description = cmd.Frontmatter.Summary()
			}
		}

		result = append(result, item)
	}
	return result, nil
}
