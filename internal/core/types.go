package core

import (
	"github.com/barysiuk/skillpack/internal/core/asset"
	"github.com/barysiuk/skillpack/internal/core/system"
)

// CategoryResult reports one (system, kind) step of an installation.
type CategoryResult struct {
	System    system.System
	Kind      asset.Kind
	SourceDir string   // absolute source folder
	DestDir   string   // absolute destination folder
	Items     []string // skill directory names or command file names copied
	Skipped   bool     // source folder was missing
}

// Count returns the number of items copied.
func (c CategoryResult) Count() int { return len(c.Items) }

// Label returns a display label such as "OpenCode skills".
func (c CategoryResult) Label() string {
	return c.System.DisplayName() + " " + c.Kind.Plural()
}

// InstallResult represents the result of an installation run.
type InstallResult struct {
	Categories []CategoryResult
}

// Total returns the number of items copied across all categories.
func (r *InstallResult) Total() int {
	n := 0
	for _, c := range r.Categories {
		n += c.Count()
	}
	return n
}

// InstalledAsset describes an asset found in a destination directory.
type InstalledAsset struct {
	System      string
	Kind        asset.Kind
	Name        string
	Description string
	Path        string
}
