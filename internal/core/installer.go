package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/barysiuk/skillpack/internal/core/asset"
	"github.com/barysiuk/skillpack/internal/core/system"
	"github.com/barysiuk/skillpack/internal/logger"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
)

// Installer copies repository assets into each system's config directories.
type Installer struct {
	systems []system.System
	env     system.Env
	log     *logrus.Entry
}

// NewInstaller creates an Installer for the given systems and environment.
// A nil systems slice means every known system.
func NewInstaller(systems []system.System, env system.Env) *Installer {
	if systems == nil {
		systems = system.All()
	}
	return &Installer{
		systems: systems,
		env:     env,
		log:     logger.L.WithField("component", "installer"),
	}
}

// InstallOptions configures an installation.
type InstallOptions struct {
	SourceRoot string               // repository root holding skill/, command/, codex-skill/
	OnCategory func(CategoryResult) // called after each category, including skipped ones
}

// Install runs the installation. Destination directories are created first,
// then each (system, kind) category is copied in order. A missing source
// folder skips its category. Any filesystem error aborts the run; categories
// already processed stay installed.
func (inst *Installer) Install(opts InstallOptions) (*InstallResult, error) {
	if opts.SourceRoot == "" {
		return nil, fmt.Errorf("source root is required")
	}

	// Ensure every destination root exists up front.
	for _, s := range inst.systems {
		for _, kind := range s.SupportedKinds() {
			dest := s.AssetDir(kind, inst.env)
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return nil, fmt.Errorf("creating %s %s directory: %w", s.DisplayName(), kind, err)
			}
		}
	}

	result := &InstallResult{}
	for _, s := range inst.systems {
		for _, kind := range s.SupportedKinds() {
			cat, err := inst.installCategory(s, kind, opts.SourceRoot)
			if err != nil {
				return nil, err
			}
			if opts.OnCategory != nil {
				opts.OnCategory(cat)
			}
			result.Categories = append(result.Categories, cat)
		}
	}
	return result, nil
}

func (inst *Installer) installCategory(s system.System, kind asset.Kind, sourceRoot string) (CategoryResult, error) {
	cat := CategoryResult{
		System:    s,
		Kind:      kind,
		SourceDir: filepath.Join(sourceRoot, s.SourceDir(kind)),
		DestDir:   s.AssetDir(kind, inst.env),
	}
	log := inst.log.WithFields(logrus.Fields{"system": s.Name(), "kind": kind})

	if !dirExists(cat.SourceDir) {
		log.WithField("source", cat.SourceDir).Debug("source folder not found, skipping")
		cat.Skipped = true
		return cat, nil
	}
	if err := checkOverlap(cat.SourceDir, cat.DestDir); err != nil {
		return cat, fmt.Errorf("installing %s: %w", cat.Label(), err)
	}

	var err error
	switch kind {
	case asset.KindSkill:
		cat.Items, err = inst.installSkills(cat.SourceDir, cat.DestDir, log)
	case asset.KindCommand:
		cat.Items, err = inst.installCommands(cat.SourceDir, cat.DestDir, log)
	default:
		err = fmt.Errorf("unsupported asset kind %s", kind)
	}
	if err != nil {
		return cat, fmt.Errorf("installing %s: %w", cat.Label(), err)
	}
	return cat, nil
}

// installSkills replaces each top-level skill directory under src in dst.
// Top-level files and hidden entries are ignored.
func (inst *Installer) installSkills(src, dst string, log *logrus.Entry) ([]string, error) {
	entries, err := os.ReadDir(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src, err)
	}

	var installed []string
	for _, entry := range entries {
		if isHidden(entry.Name()) {
			continue
		}
		skillSrc := filepath.Join(src, entry.Name())
		if !dirExists(skillSrc) {
			continue
		}

		if err := replaceDirectory(skillSrc, filepath.Join(dst, entry.Name())); err != nil {
			return installed, fmt.Errorf("skill %q: %w", entry.Name(), err)
		}
		log.WithField("item", entry.Name()).Debug("installed skill")
		installed = append(installed, entry.Name())
	}
	return installed, nil
}

// installCommands copies each non-hidden *.md file directly under src into
// dst, overwriting same-named files.
func (inst *Installer) installCommands(src, dst string, log *logrus.Entry) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(src), asset.CommandPattern)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", src, err)
	}

	var installed []string
	for _, name := range matches {
		if isHidden(name) {
			continue
		}
		cmdSrc := filepath.Join(src, name)
		if !fileExists(cmdSrc) {
			continue
		}

		if err := copyFile(cmdSrc, filepath.Join(dst, name)); err != nil {
			return installed, fmt.Errorf("command %q: %w", name, err)
		}
		log.WithField("item", name).Debug("installed command")
		installed = append(installed, name)
	}
	return installed, nil
}
