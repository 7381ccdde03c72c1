// Package geom holds the shared geometric leaf types used by the panel
// layout engine, the skin renderers and the drawing surface adapters.
package geom

// Orientation selects the axis along which groups or items are stacked.
type Orientation int

const (
	// Horizontal stacks left to right.
	Horizontal Orientation = iota
	// Vertical stacks top to bottom.
	Vertical
)

// String returns the orientation name as a string.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseOrientation maps a serialized orientation name back to its value.
// Unknown names fall back to Horizontal.
func ParseOrientation(s string) Orientation {
	if s == "vertical" {
		return Vertical
	}
	return Horizontal
}

// MarshalYAML serializes the orientation as its lowercase name.
func (o Orientation) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// UnmarshalYAML accepts the lowercase orientation names.
func (o *Orientation) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*o = ParseOrientation(s)
	return nil
}

// Point is a position in panel-local pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in panel-local pixel coordinates.
// Rectangles produced by the layout engine always have W >= 0 and H >= 0.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// IsZero reports whether the rectangle is the all-zero rectangle.
func (r Rect) IsZero() bool {
	return r.X == 0 && r.Y == 0 && r.W == 0 && r.H == 0
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Inset shrinks the rectangle by the given amounts on each side. Extents
// are floored at zero so the result is never negative.
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	out := Rect{
		X: r.X + left,
		Y: r.Y + top,
		W: r.W - left - right,
		H: r.H - top - bottom,
	}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// InsetUniform shrinks the rectangle by the same amount on all sides.
func (r Rect) InsetUniform(d float64) Rect {
	return r.Inset(d, d, d, d)
}

// MainExtent returns the rectangle's extent along the given axis.
func (r Rect) MainExtent(o Orientation) float64 {
	if o == Vertical {
		return r.H
	}
	return r.W
}

// CrossExtent returns the rectangle's extent across the given axis.
func (r Rect) CrossExtent(o Orientation) float64 {
	if o == Vertical {
		return r.W
	}
	return r.H
}
