package cmd

import (
	"os"

	"github.com/barysiuk/skillpack/internal/core/system"
	"golang.org/x/term"
)

// resolveTargetSystems turns the configured --tools list into systems.
// Returns nil (meaning "all") when no tools are configured.
func resolveTargetSystems() ([]system.System, error) {
	if len(deps.cfg.Tools) == 0 {
		return nil, nil
	}
	return system.ByNames(deps.cfg.Tools)
}

// targetSystems is resolveTargetSystems with nil expanded to all systems.
func targetSystems() ([]system.System, error) {
	systems, err := resolveTargetSystems()
	if err != nil || systems != nil {
		return systems, err
	}
	return system.All(), nil
}

// terminalWidth returns the stdout width, or 0 when stdout is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
