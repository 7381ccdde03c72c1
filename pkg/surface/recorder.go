package surface

import (
	"image/color"

	"github.com/opensensorlab/sensordeck/pkg/geom"
	"github.com/opensensorlab/sensordeck/pkg/theme"
)

// OpKind identifies a recorded surface operation.
type OpKind string

const (
	OpFillRect          OpKind = "fill_rect"
	OpStrokeRect        OpKind = "stroke_rect"
	OpFillRoundedRect   OpKind = "fill_rounded_rect"
	OpStrokeRoundedRect OpKind = "stroke_rounded_rect"
	OpLine              OpKind = "line"
	OpFillPath          OpKind = "fill_path"
	OpStrokePath        OpKind = "stroke_path"
	OpStrokeArc         OpKind = "stroke_arc"
	OpLinearGradient    OpKind = "linear_gradient"
	OpClipPush          OpKind = "clip_push"
	OpClipPop           OpKind = "clip_pop"
	OpSave              OpKind = "save"
	OpRestore           OpKind = "restore"
	OpText              OpKind = "text"
)

// Op is one recorded surface call with whichever fields the call used.
type Op struct {
	Kind  OpKind
	Rect  geom.Rect
	A, B  geom.Point
	Width float64
	Color color.NRGBA
	Text  string
	Font  theme.Font
	Path  Path
	Grad  theme.ResolvedGradient
}

// Recorder captures surface calls instead of drawing. Tests use it to
// assert on the op stream and to inject backend failures.
type Recorder struct {
	Ops []Op
	err error
}

// Fail makes Err report the given error for the rest of the pass.
func (r *Recorder) Fail(err error) { r.err = err }

// Err returns the injected failure, if any.
func (r *Recorder) Err() error { return r.err }

// Reset clears the recorded ops and any injected failure.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.err = nil
}

// DrawCount returns the number of recorded operations that put pixels on
// the surface, excluding clip and state bookkeeping.
func (r *Recorder) DrawCount() int {
	n := 0
	for _, o := range r.Ops {
		switch o.Kind {
		case OpClipPush, OpClipPop, OpSave, OpRestore:
		default:
			n++
		}
	}
	return n
}

// CountKind returns how many ops of the given kind were recorded.
func (r *Recorder) CountKind(kind OpKind) int {
	n := 0
	for _, o := range r.Ops {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) FillRect(rc geom.Rect, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: rc, Color: c})
}

func (r *Recorder) StrokeRect(rc geom.Rect, width float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeRect, Rect: rc, Width: width, Color: c})
}

func (r *Recorder) FillRoundedRect(rc geom.Rect, radius float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRoundedRect, Rect: rc, Width: radius, Color: c})
}

func (r *Recorder) StrokeRoundedRect(rc geom.Rect, radius, width float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeRoundedRect, Rect: rc, Width: width, Color: c})
}

func (r *Recorder) Line(a, b geom.Point, width float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, A: a, B: b, Width: width, Color: c})
}

func (r *Recorder) FillPath(p Path, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFillPath, Path: p, Color: c})
}

func (r *Recorder) StrokePath(p Path, width float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokePath, Path: p, Width: width, Color: c})
}

func (r *Recorder) StrokeArc(center geom.Point, radius, startAngle, sweep, width float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeArc, A: center, Width: width, Color: c})
}

func (r *Recorder) LinearGradient(rc geom.Rect, g theme.ResolvedGradient) {
	r.Ops = append(r.Ops, Op{Kind: OpLinearGradient, Rect: rc, Grad: g})
}

func (r *Recorder) PushClip(rc geom.Rect) {
	r.Ops = append(r.Ops, Op{Kind: OpClipPush, Rect: rc})
}

func (r *Recorder) PopClip() {
	r.Ops = append(r.Ops, Op{Kind: OpClipPop})
}

func (r *Recorder) Save() {
	r.Ops = append(r.Ops, Op{Kind: OpSave})
}

func (r *Recorder) Restore() {
	r.Ops = append(r.Ops, Op{Kind: OpRestore})
}

func (r *Recorder) Text(pos geom.Point, s string, f theme.Font, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpText, A: pos, Text: s, Font: f, Color: c})
}
