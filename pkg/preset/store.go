// Package preset manages named theme palettes: the built-ins plus any
// user documents loaded from a preset directory.
package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/opensensorlab/sensordeck/pkg/theme"
)

// Document is the on-disk shape of one preset.
type Document struct {
	Name  string      `yaml:"name" validate:"required,min=1"`
	Theme theme.Theme `yaml:"theme"`
}

// Store holds the known presets by name. It is seeded with the built-in
// palettes; user documents with the same name shadow them.
type Store struct {
	themes   map[string]theme.Theme
	validate *validator.Validate
}

// NewStore returns a store seeded with the built-in palettes.
func NewStore() *Store {
	s := &Store{
		themes:   make(map[string]theme.Theme),
		validate: validator.New(),
	}
	for _, name := range theme.BuiltinNames() {
		t, _ := theme.Builtin(name)
		s.themes[name] = t
	}
	return s
}

// LoadDir loads every *.yaml preset document from dir. A missing
// directory is not an error; a malformed or invalid document is, named
// by file.
func (s *Store) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("preset dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("preset %s: %w", e.Name(), err)
		}
		var doc Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("preset %s: %w", e.Name(), err)
		}
		if err := s.Add(doc); err != nil {
			return fmt.Errorf("preset %s: %w", e.Name(), err)
		}
	}
	return nil
}

// Add validates and registers a preset document.
func (s *Store) Add(doc Document) error {
	if err := s.validate.Struct(doc); err != nil {
		return fmt.Errorf("invalid preset: %w", err)
	}
	s.themes[doc.Name] = doc.Theme
	return nil
}

// Get looks a preset up by name.
func (s *Store) Get(name string) (theme.Theme, bool) {
	t, ok := s.themes[name]
	return t, ok
}

// Names lists the preset names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.themes))
	for name := range s.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Next returns the preset name following the given one in sorted order,
// wrapping around. Unknown names return the first preset.
func (s *Store) Next(name string) string {
	names := s.Names()
	if len(names) == 0 {
		return ""
	}
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
