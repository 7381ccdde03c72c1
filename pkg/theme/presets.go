package theme

import (
	"image/color"
	"sort"
)

// Built-in palettes. Slot order: background, foreground, accent, dim.
var builtins = map[string]Theme{
	"midnight": {
		Colors: [ColorSlots]color.NRGBA{
			{R: 0, G: 16, B: 35, A: 255},    // deep blue
			{R: 226, G: 232, B: 240, A: 255},
			{R: 227, G: 183, B: 46, A: 255}, // gold
			{R: 94, G: 112, B: 138, A: 255},
		},
		Fonts: [FontSlots]Font{
			{Family: "Go", Size: 13},
			{Family: "Go Mono", Size: 12},
		},
		Gradient: Gradient{
			Angle: 90,
			Stops: []GradientStop{
				{Position: 0, Color: ThemeColor(0)},
				{Position: 1, Color: ThemeColor(2)},
			},
		},
	},
	"nord": {
		Colors: [ColorSlots]color.NRGBA{
			{R: 46, G: 52, B: 64, A: 255},    // nord0
			{R: 236, G: 239, B: 244, A: 255}, // nord6
			{R: 136, G: 192, B: 208, A: 255}, // nord8
			{R: 76, G: 86, B: 106, A: 255},   // nord3
		},
		Fonts: [FontSlots]Font{
			{Family: "Go", Size: 13},
			{Family: "Go Mono", Size: 12},
		},
		Gradient: Gradient{
			Angle: 45,
			Stops: []GradientStop{
				{Position: 0, Color: ThemeColor(0)},
				{Position: 0.6, Color: ThemeColorAlpha(3, 200)},
				{Position: 1, Color: ThemeColor(2)},
			},
		},
	},
	"light": {
		Colors: [ColorSlots]color.NRGBA{
			{R: 250, G: 250, B: 250, A: 255},
			{R: 26, G: 26, B: 30, A: 255},
			{R: 12, G: 98, B: 179, A: 255}, // kicad 2020 blue
			{R: 160, G: 164, B: 172, A: 255},
		},
		Fonts: [FontSlots]Font{
			{Family: "Go", Size: 13},
			{Family: "Go Mono", Size: 12},
		},
		Gradient: Gradient{
			Angle: 90,
			Stops: []GradientStop{
				{Position: 0, Color: ThemeColor(2)},
				{Position: 1, Color: ThemeColorAlpha(2, 40)},
			},
		},
	},
	"amber": {
		Colors: [ColorSlots]color.NRGBA{
			{R: 12, G: 8, B: 2, A: 255},
			{R: 255, G: 176, B: 0, A: 255},
			{R: 255, G: 214, B: 110, A: 255},
			{R: 120, G: 84, B: 10, A: 255},
		},
		Fonts: [FontSlots]Font{
			{Family: "Go Mono", Size: 13},
			{Family: "Go Mono", Size: 12},
		},
		Gradient: Gradient{
			Angle: 0,
			Stops: []GradientStop{
				{Position: 0, Color: ThemeColor(1)},
				// Duplicate position for the hard phosphor cut-off.
				{Position: 0.8, Color: ThemeColor(1)},
				{Position: 0.8, Color: ThemeColor(3)},
				{Position: 1, Color: ThemeColor(3)},
			},
		},
	},
}

// Default returns the palette used when nothing else is configured.
func Default() Theme {
	return builtins["midnight"]
}

// Builtin looks up a built-in palette by name.
func Builtin(name string) (Theme, bool) {
	t, ok := builtins[name]
	return t, ok
}

// BuiltinNames lists the built-in palette names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
