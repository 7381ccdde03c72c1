package skin

import (
	"math"

	"github.com/opensensorlab/sensordeck/pkg/frame"
	"github.com/opensensorlab/sensordeck/pkg/geom"
	"github.com/opensensorlab/sensordeck/pkg/layout"
	"github.com/opensensorlab/sensordeck/pkg/surface"
	"github.com/opensensorlab/sensordeck/pkg/theme"
)

// scanSweepRate is the fraction of the panel the HUD scanline travels
// per second at animation speed 1.
const scanSweepRate = 0.4

func init() {
	Register(Definition{
		Name:  "hud",
		Title: "Sci-Fi HUD",
		NewConfig: func() frame.Config {
			return NewHUDConfig()
		},
		NewRenderer: func() Renderer {
			return &HUDRenderer{}
		},
	})
}

// HUDConfig is the sci-fi HUD skin configuration: the shared base plus
// the skin's decorative fields.
type HUDConfig struct {
	frame.BaseConfig `yaml:",inline"`

	Title        string            `yaml:"title"`
	BorderColor  theme.ColorSource `yaml:"border_color"`
	BorderWidth  float64           `yaml:"border_width"`
	CornerLength float64           `yaml:"corner_length"`
	CornerWidth  float64           `yaml:"corner_width"`
	HeaderHeight float64           `yaml:"header_height"`
	ShowScanline bool              `yaml:"show_scanline"`
}

// NewHUDConfig returns the HUD skin defaults.
func NewHUDConfig() *HUDConfig {
	base := frame.DefaultBase()
	base.Divider = frame.DividerSpec{
		Style:   frame.DividerGlow,
		Width:   2,
		Padding: 3,
		Color:   theme.ThemeColor(2),
	}
	return &HUDConfig{
		BaseConfig:   base,
		Title:        "SENSORS",
		BorderColor:  theme.ThemeColorAlpha(2, 160),
		BorderWidth:  1.5,
		CornerLength: 18,
		CornerWidth:  3,
		HeaderHeight: 22,
		ShowScanline: true,
	}
}

// hudDecor returns the decorative fields, falling back to the skin
// defaults when the renderer is driven with a foreign config.
func hudDecor(cfg frame.Config) *HUDConfig {
	if hc, ok := cfg.(*HUDConfig); ok {
		return hc
	}
	return NewHUDConfig()
}

// HUDRenderer draws the sci-fi HUD skin. The scanline sweep phase is the
// renderer's private animation state.
type HUDRenderer struct {
	Base
	scanPhase float64
}

func (r *HUDRenderer) Name() string { return "hud" }

func (r *HUDRenderer) RenderFrame(s surface.Surface, cfg frame.Config, width, height float64) geom.Rect {
	if width < 1 || height < 1 {
		return geom.Rect{}
	}
	hc := hudDecor(cfg)
	t := cfg.CurrentTheme()
	panel := geom.Rect{W: width, H: height}

	s.FillRect(panel, t.Color(0))

	header := geom.Rect{W: width, H: hc.HeaderHeight}
	if header.H > height {
		header.H = height
	}
	if header.H > 0 {
		s.LinearGradient(header, t.Gradient.Resolve(t))
		f := theme.ThemeFont(1).Resolve(t)
		s.Text(geom.Point{X: 8, Y: (header.H - f.Size) / 2}, hc.Title, f, t.Color(1))
	}

	borderCol := hc.BorderColor.Resolve(t)
	s.StrokeRect(panel.InsetUniform(hc.BorderWidth/2), hc.BorderWidth, borderCol)
	r.drawCorners(s, panel, hc, t)

	if cfg.AnimationOn() && hc.ShowScanline {
		r.drawScanline(s, panel, header.H, t)
	}

	inset := hc.BorderWidth + cfg.Padding()
	return panel.Inset(inset, header.H+cfg.Padding(), inset, inset)
}

// drawCorners strokes the four L-shaped corner brackets.
func (r *HUDRenderer) drawCorners(s surface.Surface, panel geom.Rect, hc *HUDConfig, t theme.Theme) {
	l := hc.CornerLength
	if l*2 > panel.W {
		l = panel.W / 2
	}
	if l*2 > panel.H {
		l = panel.H / 2
	}
	accent := theme.ThemeColor(2).Resolve(t)

	corners := []struct {
		x, y   float64
		dx, dy float64
	}{
		{panel.X, panel.Y, 1, 1},
		{panel.Right(), panel.Y, -1, 1},
		{panel.Right(), panel.Bottom(), -1, -1},
		{panel.X, panel.Bottom(), 1, -1},
	}
	for _, c := range corners {
		var p surface.Path
		p.MoveTo(geom.Point{X: c.x, Y: c.y + c.dy*l})
		p.LineTo(geom.Point{X: c.x, Y: c.y})
		p.LineTo(geom.Point{X: c.x + c.dx*l, Y: c.y})
		s.StrokePath(p, hc.CornerWidth, accent)
	}
}

// drawScanline draws the sweep line below the header at the current
// phase, with a fainter echo trailing it.
func (r *HUDRenderer) drawScanline(s surface.Surface, panel geom.Rect, headerH float64, t theme.Theme) {
	span := panel.H - headerH
	if span <= 0 {
		return
	}
	y := headerH + span*r.scanPhase
	line := theme.ThemeColorAlpha(2, 90).Resolve(t)
	echo := theme.ThemeColorAlpha(2, 30).Resolve(t)
	s.Line(geom.Point{X: panel.X, Y: y}, geom.Point{X: panel.Right(), Y: y}, 1.5, line)
	if y-3 > headerH {
		s.Line(geom.Point{X: panel.X, Y: y - 3}, geom.Point{X: panel.Right(), Y: y - 3}, 3, echo)
	}
}

func (r *HUDRenderer) CalculateGroupLayouts(cfg frame.Config, content geom.Rect) []geom.Rect {
	d := cfg.Dividers()
	return layout.SplitGroups(content, cfg.Groups(), cfg.Weights(), cfg.Split(), d.Width, d.Padding)
}

func (r *HUDRenderer) DrawGroupDividers(s surface.Surface, cfg frame.Config, groups []geom.Rect) {
	d := cfg.Dividers()
	if len(groups) < 2 || d.Style == frame.DividerNone {
		return
	}
	t := cfg.CurrentTheme()
	col := d.Color.Resolve(t)
	glow := col
	glow.A /= 4

	for _, gap := range layout.DividerGaps(groups, cfg.Split()) {
		a, b := dividerEndpoints(gap, cfg.Split())
		if d.Style == frame.DividerGlow {
			s.Line(a, b, d.Width*3, glow)
		}
		s.Line(a, b, d.Width, col)
	}
}

// dividerEndpoints returns the centered divider line inside a gap,
// pulled in slightly from the gap's ends.
func dividerEndpoints(gap geom.Rect, o geom.Orientation) (geom.Point, geom.Point) {
	const margin = 2
	c := gap.Center()
	if o == geom.Vertical {
		return geom.Point{X: gap.X + margin, Y: c.Y}, geom.Point{X: gap.Right() - margin, Y: c.Y}
	}
	return geom.Point{X: c.X, Y: gap.Y + margin}, geom.Point{X: c.X, Y: gap.Bottom() - margin}
}

// DrawItemFrame puts short accent ticks on the item's corners.
func (r *HUDRenderer) DrawItemFrame(s surface.Surface, cfg frame.Config, item geom.Rect) {
	if item.W <= 0 || item.H <= 0 {
		return
	}
	t := cfg.CurrentTheme()
	accent := theme.ThemeColorAlpha(2, 120).Resolve(t)
	l := math.Min(6, math.Min(item.W, item.H)/3)

	corners := []struct {
		x, y   float64
		dx, dy float64
	}{
		{item.X, item.Y, 1, 1},
		{item.Right(), item.Y, -1, 1},
		{item.Right(), item.Bottom(), -1, -1},
		{item.X, item.Bottom(), 1, -1},
	}
	for _, c := range corners {
		var p surface.Path
		p.MoveTo(geom.Point{X: c.x, Y: c.y + c.dy*l})
		p.LineTo(geom.Point{X: c.x, Y: c.y})
		p.LineTo(geom.Point{X: c.x + c.dx*l, Y: c.y})
		s.StrokePath(p, 1, accent)
	}
}

// AnimateCustom advances the scanline sweep. A redraw is needed for as
// long as the sweep is visible.
func (r *HUDRenderer) AnimateCustom(cfg frame.Config, elapsed float64) bool {
	hc := hudDecor(cfg)
	if !hc.ShowScanline {
		return false
	}
	r.scanPhase = math.Mod(r.scanPhase+elapsed*cfg.Speed()*scanSweepRate, 1)
	if r.scanPhase < 0 {
		r.scanPhase += 1
	}
	return true
}
