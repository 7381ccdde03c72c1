package theme

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"
)

// ColorSource is either a literal color or a reference into the theme
// palette. References re-resolve automatically when the theme is
// swapped; literals are unaffected by theme changes.
type ColorSource struct {
	literal       *color.NRGBA
	slot          *int
	alphaOverride *uint8
}

// LiteralColor returns a source that always resolves to c.
func LiteralColor(c color.NRGBA) ColorSource {
	return ColorSource{literal: &c}
}

// ThemeColor returns a source resolving to the theme color at slot.
func ThemeColor(slot int) ColorSource {
	return ColorSource{slot: &slot}
}

// ThemeColorAlpha returns a theme reference whose resolved alpha channel
// is replaced by alpha.
func ThemeColorAlpha(slot int, alpha uint8) ColorSource {
	return ColorSource{slot: &slot, alphaOverride: &alpha}
}

// IsThemeRef reports whether the source re-resolves on theme swap.
func (s ColorSource) IsThemeRef() bool { return s.slot != nil }

// Resolve returns the concrete color for the given theme. An unset
// source or out-of-range slot resolves to FallbackColor; resolution
// never fails.
func (s ColorSource) Resolve(t Theme) color.NRGBA {
	if s.literal != nil {
		return *s.literal
	}
	if s.slot == nil {
		return FallbackColor
	}
	c := t.Color(*s.slot)
	if s.alphaOverride != nil {
		c.A = *s.alphaOverride
	}
	return c
}

// String renders the source in its serialized form: hex notation for
// literals, theme(N) or theme(N, alpha) for references.
func (s ColorSource) String() string {
	if s.literal != nil {
		return FormatColor(*s.literal)
	}
	if s.slot == nil {
		return FormatColor(FallbackColor)
	}
	if s.alphaOverride != nil {
		return fmt.Sprintf("theme(%d, %d)", *s.slot, *s.alphaOverride)
	}
	return fmt.Sprintf("theme(%d)", *s.slot)
}

// MarshalYAML serializes the source as its string form.
func (s ColorSource) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML parses both the hex and theme(...) forms.
func (s *ColorSource) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseColorSource(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// FontSource is either a literal font or a reference to theme font slot
// 1 or 2, optionally overriding the base size.
type FontSource struct {
	Literal      *Font    `yaml:"literal,omitempty"`
	Slot         *int     `yaml:"slot,omitempty"`
	SizeOverride *float64 `yaml:"size,omitempty"`
}

// LiteralFont returns a source that always resolves to f.
func LiteralFont(f Font) FontSource {
	return FontSource{Literal: &f}
}

// ThemeFont returns a source resolving to theme font slot 1 or 2.
func ThemeFont(slot int) FontSource {
	return FontSource{Slot: &slot}
}

// ThemeFontSized returns a theme font reference with its base size
// replaced by size.
func ThemeFontSized(slot int, size float64) FontSource {
	return FontSource{Slot: &slot, SizeOverride: &size}
}

// Resolve returns the concrete font for the given theme. Out-of-range
// slots resolve to FallbackFont; resolution never fails.
func (s FontSource) Resolve(t Theme) Font {
	var f Font
	switch {
	case s.Literal != nil:
		f = *s.Literal
	case s.Slot != nil:
		f = t.Font(*s.Slot)
	default:
		f = FallbackFont
	}
	if s.SizeOverride != nil && *s.SizeOverride > 0 {
		f.Size = *s.SizeOverride
	}
	return f
}
