// Package surface abstracts the 2D vector sink the panel core draws
// against. The Gio adapter is the production implementation; Recorder
// captures the op stream for tests and golden diffing.
package surface

import (
	"image/color"

	"github.com/opensensorlab/sensordeck/pkg/geom"
	"github.com/opensensorlab/sensordeck/pkg/theme"
)

// Surface is the drawing contract consumed by skin renderers and the
// composer. Draw calls are infallible; a backend that can fail reports
// it through Err, which the composer surfaces after the pass.
type Surface interface {
	FillRect(r geom.Rect, c color.NRGBA)
	StrokeRect(r geom.Rect, width float64, c color.NRGBA)
	FillRoundedRect(r geom.Rect, radius float64, c color.NRGBA)
	StrokeRoundedRect(r geom.Rect, radius, width float64, c color.NRGBA)
	Line(a, b geom.Point, width float64, c color.NRGBA)
	FillPath(p Path, c color.NRGBA)
	StrokePath(p Path, width float64, c color.NRGBA)
	// StrokeArc draws a circular arc around center from startAngle
	// over sweep, both in radians.
	StrokeArc(center geom.Point, radius, startAngle, sweep, width float64, c color.NRGBA)
	// LinearGradient fills r with the resolved gradient. Angle 0 runs
	// left to right, 90 top to bottom.
	LinearGradient(r geom.Rect, g theme.ResolvedGradient)
	PushClip(r geom.Rect)
	PopClip()
	// Save marks the clip state; Restore pops every clip pushed since
	// the matching Save.
	Save()
	Restore()
	// Text draws a single line with its top-left corner at pos.
	Text(pos geom.Point, s string, f theme.Font, c color.NRGBA)
	// Err reports a backend failure raised during this pass, if any.
	Err() error
}

type segOp uint8

const (
	segMove segOp = iota
	segLine
	segQuad
	segCube
	segClose
)

type segment struct {
	op         segOp
	p1, p2, p3 geom.Point
}

// Path is a retained path description built by the caller and replayed
// by the surface implementation.
type Path struct {
	segs []segment
}

// MoveTo starts a new contour at p.
func (p *Path) MoveTo(pt geom.Point) {
	p.segs = append(p.segs, segment{op: segMove, p1: pt})
}

// LineTo appends a straight segment to p.
func (p *Path) LineTo(pt geom.Point) {
	p.segs = append(p.segs, segment{op: segLine, p1: pt})
}

// QuadTo appends a quadratic Bézier through control ctrl to p.
func (p *Path) QuadTo(ctrl, pt geom.Point) {
	p.segs = append(p.segs, segment{op: segQuad, p1: ctrl, p2: pt})
}

// CubeTo appends a cubic Bézier through controls c1 and c2 to p.
func (p *Path) CubeTo(c1, c2, pt geom.Point) {
	p.segs = append(p.segs, segment{op: segCube, p1: c1, p2: c2, p3: pt})
}

// Close closes the current contour.
func (p *Path) Close() {
	p.segs = append(p.segs, segment{op: segClose})
}

// Len returns the number of segments in the path.
func (p Path) Len() int { return len(p.segs) }
