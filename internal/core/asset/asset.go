// Package asset defines the asset kinds skillpack installs and a read-only
// parser for their Markdown front matter.
//
// The installer copies assets as opaque bytes and never parses them.
// Parsing is only used to describe assets to the user (list, show).
package asset

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies an asset type.
type Kind string

const (
	KindSkill   Kind = "skill"
	KindCommand Kind = "command"
)

// Plural returns the human label for a group of assets of this kind.
func (k Kind) Plural() string {
	switch k {
	case KindSkill:
		return "skills"
	case KindCommand:
		return "commands"
	default:
		return string(k) + "s"
	}
}

// Frontmatter is the optional YAML header of a skill or command document.
type Frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Metadata    struct {
		ShortDescription string `yaml:"short-description,omitempty"`
	} `yaml:"metadata,omitempty"`
}

// ParseFrontmatter splits data into its YAML front matter and body.
// A document without a leading "---" line has no front matter; the whole
// input is returned as body and no error is reported.
func ParseFrontmatter(data []byte) (Frontmatter, string, error) {
	var fm Frontmatter

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() || strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff")) != "---" {
		return fm, string(data), nil
	}

	var header strings.Builder
	closed := false
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			closed = true
			break
		}
		header.WriteString(line)
		header.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return fm, "", fmt.Errorf("reading front matter: %w", err)
	}
	if !closed {
		return fm, "", fmt.Errorf("front matter is not terminated")
	}

	var body strings.Builder
	for scanner.Scan() {
		body.WriteString(scanner.Text())
		body.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return fm, "", fmt.Errorf("reading body: %w", err)
	}

	if err := yaml.Unmarshal([]byte(header.String()), &fm); err != nil {
		return fm, "", fmt.Errorf("parsing front matter: %w", err)
	}
	return fm, strings.TrimLeft(body.String(), "\n"), nil
}

// Summary returns the one-line description for display, preferring the
// short description.
func (f Frontmatter) Summary() string {
	if s := strings.TrimSpace(f.Metadata.ShortDescription); s != "" {
		return s
	}
	return strings.Join(strings.Fields(f.Description), " ")
}
