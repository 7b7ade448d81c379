// Package theme loads colour themes and applies them to tracked materials.
package theme

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/headset-viewer/internal/scene"
)

//go:embed themes.yaml
var builtinThemes []byte

// ErrUnknownTheme is returned for a theme id that is not in the catalog.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme maps colour slots to colours.
type Theme struct {
	ID     string                      `yaml:"id"`
	Label  string                      `yaml:"label"`
	Colors map[scene.Slot]scene.Color `yaml:"colors"`
}

type themeFile struct {
	Themes []Theme `yaml:"themes"`
}

// Catalog is an ordered set of themes.
type Catalog struct {
	order []string
	byID  map[string]Theme
}

// Builtin returns the catalog of built-in themes.
func Builtin() *Catalog {
	c, err := Parse(builtinThemes)
	if err != nil {
		panic(fmt.Sprintf("builtin themes: %v", err))
	}
	return c
}

// Parse reads a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	c := &Catalog{byID: make(map[string]Theme)}
	for _, t := range f.Themes {
		if t.ID == "" {
			return nil, fmt.Errorf("theme without id")
		}
		c.put(t)
	}
	return c, nil
}

// LoadFile parses the YAML file at path and merges it over c. Themes with a known id
// replace the existing entry; new ids are appended.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	extra, err := Parse(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	for _, id := range extra.order {
		c.put(extra.byID[id])
	}
	return nil
}

func (c *Catalog) put(t Theme) {
	if _, exists := c.byID[t.ID]; !exists {
		c.order = append(c.order, t.ID)
	}
	if t.Label == "" {
		t.Label = t.ID
	}
	c.byID[t.ID] = t
}

// IDs returns the theme ids in catalog order.
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.order...)
}

// Get looks a theme up by id.
func (c *Catalog) Get(id string) (Theme, error) {
	t, ok := c.byID[id]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, id)
	}
	return t, nil
}

// At returns the theme at position i in catalog order.
func (c *Catalog) At(i int) (Theme, bool) {
	if i < 0 || i >= len(c.order) {
		return Theme{}, false
	}
	return c.byID[c.order[i]], true
}

// Apply recolours every material tracked under each of the theme's slots and returns
// how many materials changed. Untracked materials are left alone.
func Apply(t Theme, ms *scene.Materials) int {
	n := 0
	for _, slot := range scene.Slots {
		if c, ok := t.Colors[slot]; ok {
			n += ms.Recolor(slot, c)
		}
	}
	return n
}
