package frame

import "github.com/opensensorlab/sensordeck/pkg/geom"

// Transferable is the subset of a panel configuration that survives a
// skin switch: group layout, slot contents and animation settings.
// Skin-specific decorative fields (borders, headers, dividers) stay at
// the new skin's defaults, and the theme travels separately via
// ApplyTheme.
type Transferable struct {
	GroupCount            int                          `yaml:"group_count"`
	GroupWeights          []float64                    `yaml:"group_weights,omitempty"`
	GroupItemOrientations []geom.Orientation           `yaml:"group_item_orientations,omitempty"`
	SplitOrientation      geom.Orientation             `yaml:"split_orientation"`
	ContentSlots          map[string]ContentItemConfig `yaml:"content_slots,omitempty"`
	ContentPadding        float64                      `yaml:"content_padding"`
	ItemSpacing           float64                      `yaml:"item_spacing"`
	AnimationEnabled      bool                         `yaml:"animation_enabled"`
	AnimationSpeed        float64                      `yaml:"animation_speed"`
}

// ExtractTransferable copies the transferable subset out of a config.
// Slices and the slot map are deep-copied so the extracted value stays
// valid after the source panel is destroyed.
func ExtractTransferable(c Config) Transferable {
	b := c.Base()

	weights := make([]float64, len(b.GroupWeights))
	copy(weights, b.GroupWeights)

	orients := make([]geom.Orientation, len(b.GroupItemOrientations))
	copy(orients, b.GroupItemOrientations)

	var slots map[string]ContentItemConfig
	if b.ContentSlots != nil {
		slots = make(map[string]ContentItemConfig, len(b.ContentSlots))
		for name, item := range b.ContentSlots {
			slots[name] = item
		}
	}

	return Transferable{
		GroupCount:            b.GroupCount,
		GroupWeights:          weights,
		GroupItemOrientations: orients,
		SplitOrientation:      b.SplitOrientation,
		ContentSlots:          slots,
		ContentPadding:        b.ContentPadding,
		ItemSpacing:           b.ItemSpacing,
		AnimationEnabled:      b.AnimationEnabled,
		AnimationSpeed:        b.AnimationSpeed,
	}
}

// Apply writes the transferable subset onto a config, typically a fresh
// default config of the skin being switched to. Everything outside the
// subset is left alone.
func (t Transferable) Apply(c Config) {
	b := c.Base()
	b.GroupCount = t.GroupCount
	b.GroupWeights = append([]float64(nil), t.GroupWeights...)
	b.GroupItemOrientations = append([]geom.Orientation(nil), t.GroupItemOrientations...)
	b.SplitOrientation = t.SplitOrientation
	if t.ContentSlots != nil {
		slots := make(map[string]ContentItemConfig, len(t.ContentSlots))
		for name, item := range t.ContentSlots {
			slots[name] = item
		}
		b.ContentSlots = slots
	} else {
		b.ContentSlots = nil
	}
	b.ContentPadding = t.ContentPadding
	b.ItemSpacing = t.ItemSpacing
	b.AnimationEnabled = t.AnimationEnabled
	b.AnimationSpeed = t.AnimationSpeed
}
