// Package frame defines the configuration contract every panel skin
// satisfies: a shared base of theme, layout and animation fields plus
// the capability interfaces the composer and layout engine consume.
// Skin-specific decorative fields live in each skin's own config type,
// which embeds BaseConfig.
package frame

import (
	"gopkg.in/yaml.v3"

	"github.com/opensensorlab/sensordeck/pkg/geom"
	"github.com/opensensorlab/sensordeck/pkg/theme"
)

// DividerStyle names the visual separator drawn between group
// rectangles. Skins are free to ignore styles they have no drawing for.
type DividerStyle string

const (
	DividerNone   DividerStyle = "none"
	DividerSolid  DividerStyle = "solid"
	DividerDashed DividerStyle = "dashed"
	DividerDotted DividerStyle = "dotted"
	DividerGlow   DividerStyle = "glow"
	DividerTicks  DividerStyle = "ticks"
)

// DividerSpec describes the divider drawn in the gap between adjacent
// groups. Padding is the space left on both sides of the divider line.
type DividerSpec struct {
	Style   DividerStyle      `yaml:"style"`
	Width   float64           `yaml:"width"`
	Padding float64           `yaml:"padding"`
	Color   theme.ColorSource `yaml:"color"`
}

// ContentItemConfig describes one content slot. The panel core treats it
// as opaque beyond existence: interpretation belongs to the external
// content-item renderer.
type ContentItemConfig struct {
	Kind    string         `yaml:"kind"`
	Label   string         `yaml:"label,omitempty"`
	Metric  string         `yaml:"metric,omitempty"`
	Options map[string]any `yaml:"options,omitempty"`
}

// Themed is the theme capability every skin config provides.
type Themed interface {
	// CurrentTheme returns the active palette.
	CurrentTheme() theme.Theme
	// ApplyTheme swaps the palette as a whole, leaving every other
	// field untouched. Theme references re-resolve on next render.
	ApplyTheme(theme.Theme)
}

// Layouter is the layout capability every skin config provides.
type Layouter interface {
	// Groups returns the group count, coerced to at least one.
	Groups() int
	// Weights returns a copy of the configured group weights. The
	// layout engine normalizes length and sum.
	Weights() []float64
	// ItemOrientation returns the stacking orientation of the
	// 0-indexed group, defaulting to the split orientation when
	// unset.
	ItemOrientation(group int) geom.Orientation
	// Split returns the orientation along which groups divide the
	// content rectangle.
	Split() geom.Orientation
	// Slots returns the slot name to content item mapping.
	Slots() map[string]ContentItemConfig
	// Padding returns the inner padding between frame and content.
	Padding() float64
	// Spacing returns the gap between items within a group.
	Spacing() float64
	// Dividers returns the divider drawing parameters.
	Dividers() DividerSpec
	// ItemFramesOn reports whether per-item decorative frames are
	// drawn.
	ItemFramesOn() bool
}

// Animated is the animation capability every skin config provides.
type Animated interface {
	// AnimationOn reports whether skin-private animation advances.
	AnimationOn() bool
	// Speed returns the animation speed multiplier, coerced to 1
	// when not positive.
	Speed() float64
}

// Config is the full contract a skin configuration satisfies. Base
// exposes the shared field block so transferable configs can be applied
// without knowing the concrete skin type.
type Config interface {
	Themed
	Layouter
	Animated
	Base() *BaseConfig
}

// BaseConfig carries the fields shared by every skin configuration and
// implements the three capability interfaces against them. Skin configs
// embed it and add their decorative fields.
type BaseConfig struct {
	Theme                 theme.Theme         `yaml:"theme"`
	GroupCount            int                 `yaml:"group_count"`
	GroupWeights          []float64           `yaml:"group_weights,omitempty"`
	GroupItemOrientations []geom.Orientation  `yaml:"group_item_orientations,omitempty"`
	SplitOrientation      geom.Orientation    `yaml:"split_orientation"`
	ContentSlots          map[string]ContentItemConfig `yaml:"content_slots,omitempty"`
	ContentPadding        float64             `yaml:"content_padding"`
	ItemSpacing           float64             `yaml:"item_spacing"`
	Divider               DividerSpec         `yaml:"divider"`
	ItemFrameEnabled      bool                `yaml:"item_frame_enabled"`
	AnimationEnabled      bool                `yaml:"animation_enabled"`
	AnimationSpeed        float64             `yaml:"animation_speed"`
}

// DefaultBase returns the shared defaults applied before any document or
// skin-specific override.
func DefaultBase() BaseConfig {
	return BaseConfig{
		Theme:            theme.Default(),
		GroupCount:       2,
		SplitOrientation: geom.Horizontal,
		ContentPadding:   8,
		ItemSpacing:      4,
		Divider: DividerSpec{
			Style:   DividerSolid,
			Width:   2,
			Padding: 2,
			Color:   theme.ThemeColor(3),
		},
		AnimationEnabled: true,
		AnimationSpeed:   1,
	}
}

func (b *BaseConfig) CurrentTheme() theme.Theme   { return b.Theme }
func (b *BaseConfig) ApplyTheme(t theme.Theme)    { b.Theme = t }
func (b *BaseConfig) Base() *BaseConfig           { return b }
func (b *BaseConfig) Split() geom.Orientation     { return b.SplitOrientation }
func (b *BaseConfig) Padding() float64            { return b.ContentPadding }
func (b *BaseConfig) Spacing() float64            { return b.ItemSpacing }
func (b *BaseConfig) Dividers() DividerSpec       { return b.Divider }
func (b *BaseConfig) ItemFramesOn() bool          { return b.ItemFrameEnabled }
func (b *BaseConfig) AnimationOn() bool           { return b.AnimationEnabled }

// Groups coerces a zero or negative group count to one.
func (b *BaseConfig) Groups() int {
	if b.GroupCount < 1 {
		return 1
	}
	return b.GroupCount
}

// Weights returns a copy so callers cannot mutate the stored config.
func (b *BaseConfig) Weights() []float64 {
	out := make([]float64, len(b.GroupWeights))
	copy(out, b.GroupWeights)
	return out
}

// ItemOrientation defaults to the split orientation for any group
// without an explicit entry.
func (b *BaseConfig) ItemOrientation(group int) geom.Orientation {
	if group >= 0 && group < len(b.GroupItemOrientations) {
		return b.GroupItemOrientations[group]
	}
	return b.SplitOrientation
}

// Speed coerces a non-positive animation speed to the neutral 1.
func (b *BaseConfig) Speed() float64 {
	if b.AnimationSpeed <= 0 {
		return 1
	}
	return b.AnimationSpeed
}

// Slots returns the stored slot map; a nil map reads as empty.
func (b *BaseConfig) Slots() map[string]ContentItemConfig {
	return b.ContentSlots
}

// UnmarshalYAML loads a document over the defaults so partially
// specified (e.g. older-version) documents deserialize with sensible
// fallbacks instead of failing.
func (b *BaseConfig) UnmarshalYAML(value *yaml.Node) error {
	type raw BaseConfig
	def := raw(DefaultBase())
	if err := value.Decode(&def); err != nil {
		return err
	}
	*b = BaseConfig(def)
	return nil
}
