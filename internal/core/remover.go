package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/barysiuk/skillpack/internal/core/asset"
	"github.com/barysiuk/skillpack/internal/core/system"
)

// Remover deletes installed assets from system destination directories.
type Remover struct {
	systems []system.System
	env     system.Env
}

// NewRemover creates a Remover. A nil systems slice means every known system.
func NewRemover(systems []system.System, env system.Env) *Remover {
	if systems == nil {
		systems = system.All()
	}
	return &Remover{systems: systems, env: env}
}

// RemovedAsset is one path that was deleted.
type RemovedAsset struct {
	System string
	Kind   asset.Kind
	Path   string
}

// Remove deletes the named asset from every system supporting kind. For
// skills name is the directory name; for commands it is the command name
// with or without the .md extension. It is an error if nothing was found.
func (r *Remover) Remove(kind asset.Kind, name string) ([]RemovedAsset, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return nil, fmt.Errorf("invalid %s name %q", kind, name)
	}

	entryName := name
	if kind == asset.KindCommand && filepath.Ext(name) != ".md" {
		entryName = name + ".md"
	}

	var removed []RemovedAsset
	for _, sys := range r.systems {
		if !sys.Supports(kind) {
			continue
		}

		path := filepath.Join(sys.AssetDir(kind, r.env), entryName)
		if _, err := os.Lstat(path); err != nil {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			return removed, fmt.Errorf("removing %s %s for %s: %w", kind, name, sys.DisplayName(), err)
		}
		removed = append(removed, RemovedAsset{System: sys.Name(), Kind: kind, Path: path})
	}

	if len(removed) == 0 {
		return nil, fmt.Errorf("%s %q is not installed", kind, name)
	}
	return removed, nil
}
