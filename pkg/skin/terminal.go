package skin

import (
	"math"

	"github.com/opensensorlab/sensordeck/pkg/frame"
	"github.com/opensensorlab/sensordeck/pkg/geom"
	"github.com/opensensorlab/sensordeck/pkg/layout"
	"github.com/opensensorlab/sensordeck/pkg/surface"
	"github.com/opensensorlab/sensordeck/pkg/theme"
)

// cursorBlinkRate is the number of blink cycles per second at animation
// speed 1.
const cursorBlinkRate = 1.2

func init() {
	Register(Definition{
		Name:  "terminal",
		Title: "CRT Terminal",
		NewConfig: func() frame.Config {
			return NewTerminalConfig()
		},
		NewRenderer: func() Renderer {
			return &TerminalRenderer{cursorOn: true}
		},
	})
}

// TerminalConfig is the CRT terminal skin configuration.
type TerminalConfig struct {
	frame.BaseConfig `yaml:",inline"`

	Title           string  `yaml:"title"`
	BezelWidth      float64 `yaml:"bezel_width"`
	BezelRadius     float64 `yaml:"bezel_radius"`
	TitleBarHeight  float64 `yaml:"title_bar_height"`
	ScanlineSpacing float64 `yaml:"scanline_spacing"`
	ShowScanlines   bool    `yaml:"show_scanlines"`
}

// NewTerminalConfig returns the terminal skin defaults.
func NewTerminalConfig() *TerminalConfig {
	base := frame.DefaultBase()
	base.Divider = frame.DividerSpec{
		Style:   frame.DividerDashed,
		Width:   1,
		Padding: 3,
		Color:   theme.ThemeColor(3),
	}
	return &TerminalConfig{
		BaseConfig:      base,
		Title:           "sensors@deck",
		BezelWidth:      6,
		BezelRadius:     8,
		TitleBarHeight:  18,
		ScanlineSpacing: 4,
		ShowScanlines:   true,
	}
}

func terminalDecor(cfg frame.Config) *TerminalConfig {
	if tc, ok := cfg.(*TerminalConfig); ok {
		return tc
	}
	return NewTerminalConfig()
}

// TerminalRenderer draws the CRT terminal skin. Cursor blink phase is
// the renderer's private animation state.
type TerminalRenderer struct {
	Base
	blinkPhase float64
	cursorOn   bool
}

func (r *TerminalRenderer) Name() string { return "terminal" }

func (r *TerminalRenderer) RenderFrame(s surface.Surface, cfg frame.Config, width, height float64) geom.Rect {
	if width < 1 || height < 1 {
		return geom.Rect{}
	}
	tc := terminalDecor(cfg)
	t := cfg.CurrentTheme()
	panel := geom.Rect{W: width, H: height}

	// Bezel, then the screen glass inside it.
	s.FillRoundedRect(panel, tc.BezelRadius, t.Color(3))
	screen := panel.InsetUniform(tc.BezelWidth)
	s.FillRect(screen, t.Color(0))

	bar := geom.Rect{X: screen.X, Y: screen.Y, W: screen.W, H: tc.TitleBarHeight}
	if bar.H > screen.H {
		bar.H = screen.H
	}
	if bar.H > 0 {
		s.FillRect(bar, t.Color(3))
		f := theme.ThemeFont(2).Resolve(t)
		s.Text(geom.Point{X: bar.X + 6, Y: bar.Y + (bar.H-f.Size)/2}, tc.Title, f, t.Color(1))
		if r.cursorOn {
			cur := geom.Rect{X: bar.Right() - 12, Y: bar.Y + 4, W: 7, H: bar.H - 8}
			s.FillRect(cur, t.Color(2))
		}
	}

	if tc.ShowScanlines && tc.ScanlineSpacing >= 2 {
		r.drawScanlines(s, screen, bar.H, tc, t)
	}

	pad := cfg.Padding()
	return screen.Inset(pad, bar.H+pad, pad, pad)
}

// drawScanlines overlays the faint horizontal raster lines below the
// title bar.
func (r *TerminalRenderer) drawScanlines(s surface.Surface, screen geom.Rect, barH float64, tc *TerminalConfig, t theme.Theme) {
	overlay := t.Color(0)
	overlay.A = 70
	s.PushClip(screen)
	for y := screen.Y + barH + tc.ScanlineSpacing; y < screen.Bottom(); y += tc.ScanlineSpacing {
		s.Line(geom.Point{X: screen.X, Y: y}, geom.Point{X: screen.Right(), Y: y}, 1, overlay)
	}
	s.PopClip()
}

func (r *TerminalRenderer) CalculateGroupLayouts(cfg frame.Config, content geom.Rect) []geom.Rect {
	d := cfg.Dividers()
	return layout.SplitGroups(content, cfg.Groups(), cfg.Weights(), cfg.Split(), d.Width, d.Padding)
}

// DrawGroupDividers renders the dashed divider style: short segments
// with equal gaps, centered in each group gap.
func (r *TerminalRenderer) DrawGroupDividers(s surface.Surface, cfg frame.Config, groups []geom.Rect) {
	d := cfg.Dividers()
	if len(groups) < 2 || d.Style == frame.DividerNone {
		return
	}
	t := cfg.CurrentTheme()
	col := d.Color.Resolve(t)

	for _, gap := range layout.DividerGaps(groups, cfg.Split()) {
		a, b := dividerEndpoints(gap, cfg.Split())
		if d.Style != frame.DividerDashed && d.Style != frame.DividerDotted {
			s.Line(a, b, d.Width, col)
			continue
		}
		dash, space := 5.0, 4.0
		if d.Style == frame.DividerDotted {
			dash, space = d.Width, d.Width*2
		}
		length := math.Hypot(b.X-a.X, b.Y-a.Y)
		if length <= 0 {
			continue
		}
		ux, uy := (b.X-a.X)/length, (b.Y-a.Y)/length
		for off := 0.0; off < length; off += dash + space {
			end := off + dash
			if end > length {
				end = length
			}
			s.Line(
				geom.Point{X: a.X + ux*off, Y: a.Y + uy*off},
				geom.Point{X: a.X + ux*end, Y: a.Y + uy*end},
				d.Width, col,
			)
		}
	}
}

// DrawItemFrame draws a plain dim outline, phosphor-style.
func (r *TerminalRenderer) DrawItemFrame(s surface.Surface, cfg frame.Config, item geom.Rect) {
	if item.W <= 0 || item.H <= 0 {
		return
	}
	t := cfg.CurrentTheme()
	col := theme.ThemeColorAlpha(3, 160).Resolve(t)
	s.StrokeRect(item, 1, col)
}

// AnimateCustom advances the cursor blink and requests a redraw only on
// the frames where the cursor actually toggles.
func (r *TerminalRenderer) AnimateCustom(cfg frame.Config, elapsed float64) bool {
	r.blinkPhase += elapsed * cfg.Speed() * cursorBlinkRate
	on := math.Mod(r.blinkPhase, 1) < 0.5
	if on == r.cursorOn {
		return false
	}
	r.cursorOn = on
	return true
}
