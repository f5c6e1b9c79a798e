package asset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// CommandPattern matches slash command files within a command directory.
const CommandPattern = "*.md"

// Command is a parsed slash command file.
type Command struct {
	Path        string
	Frontmatter Frontmatter
	Body        string
}

// Name returns the command name as typed after the slash: the file name
// without its extension.
func (c *Command) Name() string {
	return strings.TrimSuffix(filepath.Base(c.Path), filepath.Ext(c.Path))
}

// IsCommandFile reports whether a file name looks like a slash command.
func IsCommandFile(name string) bool {
	ok, _ := doublestar.Match(CommandPattern, name)
	return ok
}

// LoadCommand reads a command file.
func LoadCommand(path string) (*Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading command: %w", err)
	}
	fm, body, err := ParseFrontmatter(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Command{Path: path, Frontmatter: fm, Body: body}, nil
}
