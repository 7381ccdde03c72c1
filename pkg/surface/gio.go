package surface

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/opensensorlab/sensordeck/pkg/geom"
	"github.com/opensensorlab/sensordeck/pkg/theme"
)

// arcSegmentStep is the maximum angular extent covered by one line
// segment of an approximated arc.
const arcSegmentStep = math.Pi / 16

// FontCache owns the text shaper and a bounded family lookup table. One
// cache lives for the lifetime of the window that draws with it; the
// eviction bound keeps pathological family churn from growing it
// without limit.
type FontCache struct {
	shaper *text.Shaper
	max    int
	fonts  map[string]font.Font
}

// NewFontCache builds a cache over the bundled Go font collection. A
// non-positive max falls back to 32 entries.
func NewFontCache(max int) *FontCache {
	if max <= 0 {
		max = 32
	}
	return &FontCache{
		shaper: text.NewShaper(text.WithCollection(gofont.Collection())),
		max:    max,
		fonts:  make(map[string]font.Font),
	}
}

// Shaper returns the shared text shaper.
func (c *FontCache) Shaper() *text.Shaper { return c.shaper }

// Lookup returns the font descriptor for a family name.
func (c *FontCache) Lookup(family string) font.Font {
	if f, ok := c.fonts[family]; ok {
		return f
	}
	if len(c.fonts) >= c.max {
		for k := range c.fonts {
			delete(c.fonts, k)
			break
		}
	}
	f := font.Font{Typeface: font.Typeface(family)}
	c.fonts[family] = f
	return f
}

// Len reports the number of cached families.
func (c *FontCache) Len() int { return len(c.fonts) }

// Gio renders Surface calls as Gio operations. Construct one per frame
// from the frame's layout context; the font cache is shared across
// frames.
type Gio struct {
	gtx   layout.Context
	fonts *FontCache
	clips []clip.Stack
	saves []int
}

// NewGio wraps a frame's layout context. fonts must outlive the frame;
// pass the same cache every frame.
func NewGio(gtx layout.Context, fonts *FontCache) *Gio {
	if fonts == nil {
		fonts = NewFontCache(0)
	}
	return &Gio{gtx: gtx, fonts: fonts}
}

// Err always reports nil: Gio ops cannot fail once the frame has begun.
func (g *Gio) Err() error { return nil }

func (g *Gio) FillRect(r geom.Rect, c color.NRGBA) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	paint.FillShape(g.gtx.Ops, c, clip.Outline{Path: g.rectPath(r)}.Op())
}

func (g *Gio) StrokeRect(r geom.Rect, width float64, c color.NRGBA) {
	if r.W <= 0 || r.H <= 0 || width <= 0 {
		return
	}
	paint.FillShape(g.gtx.Ops, c, clip.Stroke{Path: g.rectPath(r), Width: float32(width)}.Op())
}

func (g *Gio) FillRoundedRect(r geom.Rect, radius float64, c color.NRGBA) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	rr := clip.UniformRRect(imageRect(r), int(radius))
	paint.FillShape(g.gtx.Ops, c, rr.Op(g.gtx.Ops))
}

func (g *Gio) StrokeRoundedRect(r geom.Rect, radius, width float64, c color.NRGBA) {
	if r.W <= 0 || r.H <= 0 || width <= 0 {
		return
	}
	rr := clip.UniformRRect(imageRect(r), int(radius))
	paint.FillShape(g.gtx.Ops, c, clip.Stroke{Path: rr.Path(g.gtx.Ops), Width: float32(width)}.Op())
}

func (g *Gio) Line(a, b geom.Point, width float64, c color.NRGBA) {
	if width <= 0 {
		return
	}
	var p clip.Path
	p.Begin(g.gtx.Ops)
	p.MoveTo(fpt(a))
	p.LineTo(fpt(b))
	paint.FillShape(g.gtx.Ops, c, clip.Stroke{Path: p.End(), Width: float32(width)}.Op())
}

func (g *Gio) FillPath(p Path, c color.NRGBA) {
	if len(p.segs) == 0 {
		return
	}
	paint.FillShape(g.gtx.Ops, c, clip.Outline{Path: g.pathSpec(p)}.Op())
}

func (g *Gio) StrokePath(p Path, width float64, c color.NRGBA) {
	if len(p.segs) == 0 || width <= 0 {
		return
	}
	paint.FillShape(g.gtx.Ops, c, clip.Stroke{Path: g.pathSpec(p), Width: float32(width)}.Op())
}

// StrokeArc approximates the arc with line segments. Segment counts
// scale with the sweep so small arcs stay cheap.
func (g *Gio) StrokeArc(center geom.Point, radius, startAngle, sweep, width float64, c color.NRGBA) {
	if radius <= 0 || sweep == 0 || width <= 0 {
		return
	}
	steps := int(math.Ceil(math.Abs(sweep) / arcSegmentStep))
	if steps < 2 {
		steps = 2
	}
	var p clip.Path
	p.Begin(g.gtx.Ops)
	for i := 0; i <= steps; i++ {
		a := startAngle + sweep*float64(i)/float64(steps)
		pt := f32.Pt(
			float32(center.X+radius*math.Cos(a)),
			float32(center.Y+radius*math.Sin(a)),
		)
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	paint.FillShape(g.gtx.Ops, c, clip.Stroke{Path: p.End(), Width: float32(width)}.Op())
}

// LinearGradient paints multi-stop gradients as one two-color Gio
// gradient per adjacent stop pair, each clipped to its band across the
// rectangle. Zero-length bands (duplicate positions) contribute the
// hard edge between their neighbors and are skipped.
func (g *Gio) LinearGradient(r geom.Rect, grad theme.ResolvedGradient) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	switch len(grad.Stops) {
	case 0:
		g.FillRect(r, theme.FallbackColor)
		return
	case 1:
		g.FillRect(r, grad.Stops[0].Color)
		return
	}

	stops := append([]theme.ResolvedStop(nil), grad.Stops...)
	// Stable insertion keeps declaration order for duplicates.
	for i := 1; i < len(stops); i++ {
		for j := i; j > 0 && stops[j-1].Position > stops[j].Position; j-- {
			stops[j-1], stops[j] = stops[j], stops[j-1]
		}
	}

	rad := grad.Angle * math.Pi / 180
	dir := geom.Point{X: math.Cos(rad), Y: math.Sin(rad)}
	center := r.Center()
	// Half-projection of the rectangle onto the gradient axis.
	half := (math.Abs(dir.X)*r.W + math.Abs(dir.Y)*r.H) / 2
	origin := geom.Point{X: center.X - dir.X*half, Y: center.Y - dir.Y*half}
	span := 2 * half
	// Band cross extent that is guaranteed to cover the rectangle.
	cross := r.W + r.H
	normal := geom.Point{X: -dir.Y, Y: dir.X}

	bounds := clip.Rect(imageRect(r)).Push(g.gtx.Ops)
	defer bounds.Pop()

	// Extend the first and last stops to the rectangle edges.
	first, last := stops[0], stops[len(stops)-1]
	if first.Position > 0 {
		stops = append([]theme.ResolvedStop{{Position: 0, Color: first.Color}}, stops...)
	}
	if last.Position < 1 {
		stops = append(stops, theme.ResolvedStop{Position: 1, Color: last.Color})
	}

	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i], stops[i+1]
		if b.Position <= a.Position {
			continue
		}
		p1 := geom.Point{X: origin.X + dir.X*span*a.Position, Y: origin.Y + dir.Y*span*a.Position}
		p2 := geom.Point{X: origin.X + dir.X*span*b.Position, Y: origin.Y + dir.Y*span*b.Position}

		var band clip.Path
		band.Begin(g.gtx.Ops)
		band.MoveTo(f32.Pt(float32(p1.X-normal.X*cross), float32(p1.Y-normal.Y*cross)))
		band.LineTo(f32.Pt(float32(p1.X+normal.X*cross), float32(p1.Y+normal.Y*cross)))
		band.LineTo(f32.Pt(float32(p2.X+normal.X*cross), float32(p2.Y+normal.Y*cross)))
		band.LineTo(f32.Pt(float32(p2.X-normal.X*cross), float32(p2.Y-normal.Y*cross)))
		band.Close()
		bandClip := clip.Outline{Path: band.End()}.Op().Push(g.gtx.Ops)

		paint.LinearGradientOp{
			Stop1:  fpt(p1),
			Stop2:  fpt(p2),
			Color1: a.Color,
			Color2: b.Color,
		}.Add(g.gtx.Ops)
		paint.PaintOp{}.Add(g.gtx.Ops)

		bandClip.Pop()
	}
}

func (g *Gio) PushClip(r geom.Rect) {
	g.clips = append(g.clips, clip.Rect(imageRect(r)).Push(g.gtx.Ops))
}

func (g *Gio) PopClip() {
	if len(g.clips) == 0 {
		return
	}
	last := len(g.clips) - 1
	g.clips[last].Pop()
	g.clips = g.clips[:last]
}

func (g *Gio) Save() {
	g.saves = append(g.saves, len(g.clips))
}

func (g *Gio) Restore() {
	if len(g.saves) == 0 {
		return
	}
	last := len(g.saves) - 1
	depth := g.saves[last]
	g.saves = g.saves[:last]
	for len(g.clips) > depth {
		g.PopClip()
	}
}

// Text draws a single-line label, isolated in a macro so the color and
// transform state cannot leak into later operations.
func (g *Gio) Text(pos geom.Point, s string, f theme.Font, c color.NRGBA) {
	if s == "" || f.Size <= 0 {
		return
	}
	macro := op.Record(g.gtx.Ops)
	stack := op.Affine(f32.Affine2D{}.Offset(fpt(pos))).Push(g.gtx.Ops)
	paint.ColorOp{Color: c}.Add(g.gtx.Ops)

	gtx := g.gtx
	gtx.Constraints = layout.Constraints{Max: image.Pt(1<<20, 1<<20)}
	label := widget.Label{Alignment: text.Start, MaxLines: 1}
	label.Layout(gtx, g.fonts.Shaper(), g.fonts.Lookup(f.Family), unit.Sp(f.Size), s, op.CallOp{})

	stack.Pop()
	call := macro.Stop()
	call.Add(g.gtx.Ops)
}

func (g *Gio) rectPath(r geom.Rect) clip.PathSpec {
	var p clip.Path
	p.Begin(g.gtx.Ops)
	p.MoveTo(f32.Pt(float32(r.X), float32(r.Y)))
	p.LineTo(f32.Pt(float32(r.Right()), float32(r.Y)))
	p.LineTo(f32.Pt(float32(r.Right()), float32(r.Bottom())))
	p.LineTo(f32.Pt(float32(r.X), float32(r.Bottom())))
	p.Close()
	return p.End()
}

func (g *Gio) pathSpec(p Path) clip.PathSpec {
	var cp clip.Path
	cp.Begin(g.gtx.Ops)
	for _, s := range p.segs {
		switch s.op {
		case segMove:
			cp.MoveTo(fpt(s.p1))
		case segLine:
			cp.LineTo(fpt(s.p1))
		case segQuad:
			cp.QuadTo(fpt(s.p1), fpt(s.p2))
		case segCube:
			cp.CubeTo(fpt(s.p1), fpt(s.p2), fpt(s.p3))
		case segClose:
			cp.Close()
		}
	}
	return cp.End()
}

func fpt(p geom.Point) f32.Point {
	return f32.Pt(float32(p.X), float32(p.Y))
}

func imageRect(r geom.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
}
