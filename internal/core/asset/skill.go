package asset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

const (
	// SkillFileName is the document every skill directory carries.
	SkillFileName = "SKILL.md"

	// SidecarFileName is the optional metadata file next to SKILL.md.
	SidecarFileName = ".skill-meta.json"
)

// Skill is a parsed skill directory.
type Skill struct {
	Dir         string
	Frontmatter Frontmatter
	Body        string
	Sidecar     map[string]any // nil when no sidecar exists
}

// Name returns the front matter name, or the directory name when unset.
func (s *Skill) Name() string {
	if s.Frontmatter.Name != "" {
		return s.Frontmatter.Name
	}
	return filepath.Base(s.Dir)
}

// LoadSkill reads SKILL.md and the optional sidecar from dir.
func LoadSkill(dir string) (*Skill, error) {
	data, err := os.ReadFile(filepath.Join(dir, SkillFileName))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", SkillFileName, err)
	}

	fm, body, err := ParseFrontmatter(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Join(dir, SkillFileName), err)
	}

	sidecar, err := readSidecar(filepath.Join(dir, SidecarFileName))
	if err != nil {
		return nil, err
	}

	return &Skill{
		Dir:         dir,
		Frontmatter: fm,
		Body:        body,
		Sidecar:     sidecar,
	}, nil
}

// readSidecar parses a JSONC sidecar. A missing file yields nil, nil.
func readSidecar(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	var m map[string]any
	if err := json.Unmarshal(std, &m); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return m, nil
}
