// Package theme implements the shared palette model used by every panel
// skin: a small fixed set of colors and fonts plus one gradient, with
// indirect references that re-resolve whenever the palette is swapped.
package theme

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"
)

const (
	// ColorSlots is the number of colors a theme carries.
	ColorSlots = 4
	// FontSlots is the number of fonts a theme carries.
	FontSlots = 2
)

// FallbackColor substitutes for any out-of-range or unset color
// reference. Out-of-range references never fail; they resolve here.
var FallbackColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

// FallbackFont substitutes for any out-of-range or unset font reference.
var FallbackFont = Font{Family: "Go", Size: 12}

// Font names a font family and its base size in sp.
type Font struct {
	Family string  `yaml:"family"`
	Size   float64 `yaml:"size"`
}

// Theme is the fixed palette a skin draws from: four colors, two fonts
// and one gradient. It is an immutable value, swapped as a whole when a
// preset is applied.
//
// Color slot conventions (skins may reinterpret, but the built-in
// presets follow them): 0 background, 1 foreground, 2 accent, 3 dim.
// Font slot 1 is the label face, slot 2 the value/monospace face.
type Theme struct {
	Colors   [ColorSlots]color.NRGBA
	Fonts    [FontSlots]Font
	Gradient Gradient
}

// Color returns the theme color at the given slot, or FallbackColor when
// the slot is out of range.
func (t Theme) Color(slot int) color.NRGBA {
	if slot < 0 || slot >= ColorSlots {
		return FallbackColor
	}
	return t.Colors[slot]
}

// Font returns the theme font for slot 1 or 2, or FallbackFont for any
// other slot.
func (t Theme) Font(slot int) Font {
	if slot < 1 || slot > FontSlots {
		return FallbackFont
	}
	return t.Fonts[slot-1]
}

// themeDoc is the serialized shape of a Theme. Every field is optional;
// absent entries keep the default theme's values so older documents keep
// loading.
type themeDoc struct {
	Colors   []string `yaml:"colors,omitempty"`
	Fonts    []Font   `yaml:"fonts,omitempty"`
	Gradient string   `yaml:"gradient,omitempty"`
}

// MarshalYAML serializes the theme with hex colors and the gradient in
// its spec form.
func (t Theme) MarshalYAML() (interface{}, error) {
	doc := themeDoc{
		Fonts:    t.Fonts[:],
		Gradient: t.Gradient.String(),
	}
	for _, c := range t.Colors {
		doc.Colors = append(doc.Colors, FormatColor(c))
	}
	return doc, nil
}

// UnmarshalYAML loads a theme document over the default theme, so a
// partially specified document deserializes with sensible fallbacks.
func (t *Theme) UnmarshalYAML(value *yaml.Node) error {
	var doc themeDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}

	out := Default()
	for i, s := range doc.Colors {
		if i >= ColorSlots {
			break
		}
		c, err := ParseColor(s)
		if err != nil {
			return fmt.Errorf("theme color %d: %w", i, err)
		}
		out.Colors[i] = c
	}
	for i, f := range doc.Fonts {
		if i >= FontSlots {
			break
		}
		if f.Family == "" {
			f.Family = out.Fonts[i].Family
		}
		if f.Size <= 0 {
			f.Size = out.Fonts[i].Size
		}
		out.Fonts[i] = f
	}
	if doc.Gradient != "" {
		g, err := ParseGradient(doc.Gradient)
		if err != nil {
			return fmt.Errorf("theme gradient: %w", err)
		}
		out.Gradient = g
	}
	*t = out
	return nil
}

// FormatColor renders a color as #rrggbb, or #rrggbbaa when the alpha
// channel is not fully opaque.
func FormatColor(c color.NRGBA) string {
	if c.A != 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses #rrggbb or #rrggbbaa hex notation.
func ParseColor(s string) (color.NRGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("color %q: expected leading #", s)
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("color %q: expected 6 or 8 hex digits", s)
	}
	var vals [4]uint8
	vals[3] = 255
	for i := 0; i*2 < len(hex); i++ {
		hi, ok1 := hexDigit(hex[i*2])
		lo, ok2 := hexDigit(hex[i*2+1])
		if !ok1 || !ok2 {
			return color.NRGBA{}, fmt.Errorf("color %q: invalid hex digit", s)
		}
		vals[i] = hi<<4 | lo
	}
	return color.NRGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
