package system

import (
	"os"

	"github.com/barysiuk/skillpack/internal/core/asset"
)

// assetPaths describes where one asset kind comes from and goes to.
type assetPaths struct {
	kind   asset.Kind
	source string // repository-relative source folder
	dest   string // destination template ($XDG_CONFIG, $CODEX_HOME, ~)
}

// BaseSystem provides the shared System implementation. Individual systems
// embed it and only fill in their paths.
type BaseSystem struct {
	name        string
	displayName string
	configRoot  string       // template for the tool's config directory
	assets      []assetPaths // supported kinds in install order
}

func (b *BaseSystem) Name() string        { return b.name }
func (b *BaseSystem) DisplayName() string { return b.displayName }

func (b *BaseSystem) Supports(kind asset.Kind) bool {
	_, ok := b.paths(kind)
	return ok
}

func (b *BaseSystem) SupportedKinds() []asset.Kind {
	kinds := make([]asset.Kind, len(b.assets))
	for i, a := range b.assets {
		kinds[i] = a.kind
	}
	return kinds
}

func (b *BaseSystem) SourceDir(kind asset.Kind) string {
	p, _ := b.paths(kind)
	return p.source
}

func (b *BaseSystem) AssetDir(kind asset.Kind, env Env) string {
	p, ok := b.paths(kind)
	if !ok {
		return ""
	}
	return env.Expand(p.dest)
}

func (b *BaseSystem) ConfigRoot(env Env) string {
	return env.Expand(b.configRoot)
}

func (b *BaseSystem) IsInstalled(env Env) bool {
	info, err := os.Stat(b.ConfigRoot(env))
	return err == nil && info.IsDir()
}

func (b *BaseSystem) paths(kind asset.Kind) (assetPaths, bool) {
	for _, a := range b.assets {
		if a.kind == kind {
			return a, true
		}
	}
	return assetPaths{}, false
}
