package theme

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"
)

// GradientStop pairs a position in [0,1] with a color source.
type GradientStop struct {
	Position float64
	Color    ColorSource
}

// Gradient is an ordered sequence of stops plus an angle in degrees.
// Stop order is significant: renderers rely on declaration order for
// abrupt-transition effects built from duplicate positions, so nothing
// in this package reorders the stored stops.
type Gradient struct {
	Stops []GradientStop
	Angle float64
}

// ResolvedStop is a gradient stop with its color resolved against a
// concrete theme.
type ResolvedStop struct {
	Position float64
	Color    color.NRGBA
}

// ResolvedGradient is a gradient whose stops have all been resolved.
type ResolvedGradient struct {
	Stops []ResolvedStop
	Angle float64
}

// Resolve resolves every stop's color source against the theme. The
// stops keep their declaration order.
func (g Gradient) Resolve(t Theme) ResolvedGradient {
	out := ResolvedGradient{
		Stops: make([]ResolvedStop, len(g.Stops)),
		Angle: g.Angle,
	}
	for i, s := range g.Stops {
		out.Stops[i] = ResolvedStop{Position: s.Position, Color: s.Color.Resolve(t)}
	}
	return out
}

// String renders the gradient in its spec form, e.g.
// "linear-gradient(90deg, #001023 0%, theme(2) 100%)".
func (g Gradient) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "linear-gradient(%gdeg", g.Angle)
	for _, s := range g.Stops {
		fmt.Fprintf(&b, ", %s %g%%", s.Color.String(), s.Position*100)
	}
	b.WriteString(")")
	return b.String()
}

// Sample returns the gradient color at position, linearly interpolated
// per channel between the two bracketing stops. The position is clamped
// to [0,1]; positions at or beyond the first or last stop return that
// stop's color exactly, and a single-stop gradient returns its color for
// any position. Sampling sorts a copy of the stops by position (stable,
// so duplicate-position stops keep declaration order) and never fails:
// an empty gradient returns FallbackColor.
func (g ResolvedGradient) Sample(position float64) color.NRGBA {
	stops := g.Stops
	switch len(stops) {
	case 0:
		return FallbackColor
	case 1:
		return stops[0].Color
	}

	sorted := make([]ResolvedStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	if position < 0 {
		position = 0
	}
	if position > 1 {
		position = 1
	}
	if position <= sorted[0].Position {
		return sorted[0].Color
	}
	last := sorted[len(sorted)-1]
	if position >= last.Position {
		return last.Color
	}

	for i := 0; i < len(sorted)-1; i++ {
		a, b := sorted[i], sorted[i+1]
		if position > b.Position {
			continue
		}
		span := b.Position - a.Position
		if span <= 0 {
			return b.Color
		}
		t := (position - a.Position) / span
		return lerpColor(a.Color, b.Color, t)
	}
	return last.Color
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*t)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
