// Package skin defines the renderer contract every visual skin
// implements and ships the two reference skins, hud and terminal. Skins
// are mutually independent: adding one touches neither the layout engine
// nor the composer.
package skin

import (
	"sort"

	"github.com/opensensorlab/sensordeck/pkg/frame"
	"github.com/opensensorlab/sensordeck/pkg/geom"
	"github.com/opensensorlab/sensordeck/pkg/surface"
)

// Renderer is the per-skin drawing contract the composer drives once per
// frame.
type Renderer interface {
	// Name returns the skin's registry name.
	Name() string
	// RenderFrame draws the skin's background, border and decoration
	// and returns the content rectangle groups are placed into. For
	// width or height below one it draws nothing and returns the
	// all-zero rectangle.
	RenderFrame(s surface.Surface, cfg frame.Config, width, height float64) geom.Rect
	// CalculateGroupLayouts computes the group rectangles for the
	// content area, usually by delegating to the layout engine after
	// subtracting any skin-private header or footer space.
	CalculateGroupLayouts(cfg frame.Config, content geom.Rect) []geom.Rect
	// DrawGroupDividers draws the skin's divider style in the gaps
	// between consecutive groups. No-op for fewer than two groups or
	// divider style none.
	DrawGroupDividers(s surface.Surface, cfg frame.Config, groups []geom.Rect)
	// DrawItemFrame draws a decorative frame around one content item.
	DrawItemFrame(s surface.Surface, cfg frame.Config, item geom.Rect)
	// AnimateCustom advances skin-private animation state by elapsed
	// seconds and reports whether a redraw is required.
	AnimateCustom(cfg frame.Config, elapsed float64) bool
}

// Base provides the optional-capability defaults: no item frames and no
// custom animation. Skins embed it and override what they need.
type Base struct{}

func (Base) DrawItemFrame(surface.Surface, frame.Config, geom.Rect) {}

func (Base) AnimateCustom(frame.Config, float64) bool { return false }

// Definition binds a skin name to its config and renderer factories.
type Definition struct {
	Name        string
	Title       string
	NewConfig   func() frame.Config
	NewRenderer func() Renderer
}

var registry = map[string]Definition{}

// Register adds a skin definition. Later registrations with the same
// name replace earlier ones.
func Register(def Definition) {
	registry[def.Name] = def
}

// Lookup returns the definition for a skin name.
func Lookup(name string) (Definition, bool) {
	def, ok := registry[name]
	return def, ok
}

// Names lists the registered skin names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Switch moves a panel to another skin: the transferable subset of the
// old config (group layout, slots, animation) is applied onto the new
// skin's defaults together with the old theme, leaving the new skin's
// decorative fields untouched.
func Switch(old frame.Config, to Definition) (frame.Config, Renderer) {
	cfg := to.NewConfig()
	frame.ExtractTransferable(old).Apply(cfg)
	cfg.ApplyTheme(old.CurrentTheme())
	return cfg, to.NewRenderer()
}
