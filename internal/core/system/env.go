package system

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Env carries the environment values destination paths depend on.
// Paths are expanded against an Env rather than the process environment so
// callers (and tests) control resolution explicitly.
type Env struct {
	Home          string // user home directory ($HOME / %USERPROFILE%)
	XDGConfigHome string // $XDG_CONFIG_HOME, may be empty
	CodexHome     string // $CODEX_HOME, may be empty
	GOOS          string // defaults to runtime.GOOS when empty
}

func (e Env) goos() string {
	if e.GOOS == "" {
		return runtime.GOOS
	}
	return e.GOOS
}

// ConfigHome returns the config root: $XDG_CONFIG_HOME when set, otherwise
// ~/.config. Windows always uses %USERPROFILE%\.config.
func (e Env) ConfigHome() string {
	if e.XDGConfigHome != "" && e.goos() != "windows" {
		return e.XDGConfigHome
	}
	return filepath.Join(e.Home, ".config")
}

// CodexDir returns $CODEX_HOME when set, otherwise ~/.codex.
func (e Env) CodexDir() string {
	if e.CodexHome != "" {
		return e.CodexHome
	}
	return filepath.Join(e.Home, ".codex")
}

// Expand expands $XDG_CONFIG, $CODEX_HOME, $HOME and a leading ~ in a
// destination template. Unknown variables expand to the empty string.
func (e Env) Expand(p string) string {
	if strings.Contains(p, "$") {
		p = os.Expand(p, func(key string) string {
			switch key {
			case "XDG_CONFIG":
				return e.ConfigHome()
			case "CODEX_HOME":
				return e.CodexDir()
			case "HOME":
				return e.Home
			default:
				return ""
			}
		})
	}

	if strings.HasPrefix(p, "~/") {
		p = filepath.Join(e.Home, p[2:])
	} else if p == "~" {
		p = e.Home
	}

	return filepath.Clean(filepath.FromSlash(p))
}
