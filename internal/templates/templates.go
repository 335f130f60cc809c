// Package templates loads named push-message bodies from a TOML file, the
// way the teacher's formula command loads .formula.toml.
package templates

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Set is a table of named templates, keyed by name.
type Set struct {
	Templates map[string]Template `toml:"templates"`
}

// Template is a single named push-message body.
type Template struct {
	Body string `toml:"body"`
}

// DefaultPath returns $XDG_CONFIG_HOME/frame/templates.toml (or
// $HOME/.config/frame/templates.toml as a fallback).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "frame", "templates.toml"), nil
}

// Load parses the template file at path. A missing file yields an empty,
// valid Set rather than an error, since templates are optional.
func Load(path string) (Set, error) {
	var set Set
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Set{Templates: map[string]Template{}}, nil
	}
	if _, err := toml.DecodeFile(path, &set); err != nil {
		return Set{}, fmt.Errorf("parsing templates file %s: %w", path, err)
	}
	if set.Templates == nil {
		set.Templates = map[string]Template{}
	}
	return set, nil
}

// Get returns the named template's body, or an error if it is not defined.
func (s Set) Get(name string) (string, error) {
	t, ok := s.Templates[name]
	if !ok {
		return "", fmt.Errorf("no template named %q", name)
	}
	return t.Body, nil
}
