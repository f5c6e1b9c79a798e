// Package system defines the AI coding tools skillpack installs into.
//
// A System knows which repository folder holds its assets of each kind and
// where those assets live under the user's configuration directories.
// Systems are plain Go values; there is no definition file.
package system

import (
	"fmt"
	"strings"

	"github.com/barysiuk/skillpack/internal/core/asset"
)

// System defines how an AI coding tool receives assets.
type System interface {
	// Identity
	Name() string        // machine name: "opencode", "codex"
	DisplayName() string // human name: "OpenCode", "Codex"

	// Detection
	IsInstalled(env Env) bool // config root already exists

	// Asset support, in install order
	Supports(kind asset.Kind) bool
	SupportedKinds() []asset.Kind

	// Paths
	SourceDir(kind asset.Kind) string         // repository-relative source folder
	AssetDir(kind asset.Kind, env Env) string // absolute destination folder
	ConfigRoot(env Env) string                // the tool's own config directory
}

// --- Registry ---

// systems lists every known system in install order.
var systems = []System{
	NewOpenCode(),
	NewCodex(),
}

// All returns all known systems in install order.
func All() []System { return systems }

// ByName returns the system with the given machine name.
func ByName(name string) (System, bool) {
	for _, s := range systems {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// ByNames resolves a list of system names to System values, preserving
// install order rather than argument order. Duplicates collapse.
// Returns an error if any name is unknown.
func ByNames(names []string) ([]System, error) {
	want := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := ByName(name); !ok {
			return nil, fmt.Errorf("unknown tool %q; available: %s",
				name, strings.Join(Names(systems), ", "))
		}
		want[name] = true
	}

	result := make([]System, 0, len(want))
	for _, s := range systems {
		if want[s.Name()] {
			result = append(result, s)
		}
	}
	return result, nil
}

// Supporting returns all systems that support the given asset kind.
func Supporting(kind asset.Kind) []System {
	var result []System
	for _, s := range systems {
		if s.Supports(kind) {
			result = append(result, s)
		}
	}
	return result
}

// Names returns the machine names of the given systems.
func Names(systems []System) []string {
	names := make([]string, len(systems))
	for i, s := range systems {
		names[i] = s.Name()
	}
	return names
}
