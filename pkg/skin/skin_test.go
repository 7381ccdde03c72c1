package skin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensensorlab/sensordeck/pkg/frame"
	"github.com/opensensorlab/sensordeck/pkg/geom"
	"github.com/opensensorlab/sensordeck/pkg/surface"
	"github.com/opensensorlab/sensordeck/pkg/theme"
)

func TestRegistry(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "hud")
	assert.Contains(t, names, "terminal")
	assert.IsIncreasing(t, names)

	def, ok := Lookup("hud")
	require.True(t, ok)
	assert.Equal(t, "hud", def.NewRenderer().Name())
	assert.NotNil(t, def.NewConfig())

	_, ok = Lookup("no-such-skin")
	assert.False(t, ok)
}

func TestRenderFrameZeroSizeDrawsNothing(t *testing.T) {
	for _, name := range Names() {
		def, _ := Lookup(name)
		t.Run(name, func(t *testing.T) {
			rec := &surface.Recorder{}
			r := def.NewRenderer()
			cfg := def.NewConfig()

			for _, dim := range [][2]float64{{0, 100}, {100, 0}, {0.5, 100}, {100, 0.9}, {-5, 40}} {
				rec.Reset()
				content := r.RenderFrame(rec, cfg, dim[0], dim[1])
				assert.True(t, content.IsZero(), "dims %v", dim)
				assert.Equal(t, 0, rec.DrawCount(), "dims %v", dim)
			}
		})
	}
}

func TestRenderFrameContentInsideBounds(t *testing.T) {
	for _, name := range Names() {
		def, _ := Lookup(name)
		t.Run(name, func(t *testing.T) {
			rec := &surface.Recorder{}
			r := def.NewRenderer()
			cfg := def.NewConfig()

			content := r.RenderFrame(rec, cfg, 400, 300)
			assert.Greater(t, rec.DrawCount(), 0)
			assert.GreaterOrEqual(t, content.X, 0.0)
			assert.GreaterOrEqual(t, content.Y, 0.0)
			assert.LessOrEqual(t, content.Right(), 400.0)
			assert.LessOrEqual(t, content.Bottom(), 300.0)
			assert.Greater(t, content.W, 0.0)
			assert.Greater(t, content.H, 0.0)
		})
	}
}

func TestHUDContentBelowHeader(t *testing.T) {
	rec := &surface.Recorder{}
	r := &HUDRenderer{}
	cfg := NewHUDConfig()

	content := r.RenderFrame(rec, cfg, 400, 300)
	assert.GreaterOrEqual(t, content.Y, cfg.HeaderHeight+cfg.Padding())
	assert.Equal(t, 1, rec.CountKind(surface.OpLinearGradient), "header background")
	assert.Equal(t, 1, rec.CountKind(surface.OpText), "header title")
}

func TestCalculateGroupLayouts(t *testing.T) {
	cfg := NewHUDConfig()
	cfg.GroupCount = 3
	cfg.GroupWeights = []float64{1, 1, 2}
	cfg.SplitOrientation = geom.Horizontal

	r := &HUDRenderer{}
	groups := r.CalculateGroupLayouts(cfg, geom.Rect{W: 300, H: 100})
	require.Len(t, groups, 3)

	// The divider allowance comes from the config's divider spec.
	d := cfg.Dividers()
	total := 0.0
	for _, g := range groups {
		total += g.W
	}
	assert.InDelta(t, 300-2*(d.Width+2*d.Padding), total, 1e-9)
	assert.InDelta(t, groups[0].W*2, groups[2].W, 1e-9)
}

func TestDrawGroupDividers(t *testing.T) {
	cfg := NewHUDConfig()
	cfg.GroupCount = 3
	r := &HUDRenderer{}
	content := geom.Rect{W: 300, H: 100}

	t.Run("glow draws halo and core per gap", func(t *testing.T) {
		rec := &surface.Recorder{}
		groups := r.CalculateGroupLayouts(cfg, content)
		r.DrawGroupDividers(rec, cfg, groups)
		assert.Equal(t, 4, rec.CountKind(surface.OpLine))
	})

	t.Run("single group is a no-op", func(t *testing.T) {
		rec := &surface.Recorder{}
		r.DrawGroupDividers(rec, cfg, []geom.Rect{{W: 300, H: 100}})
		assert.Equal(t, 0, rec.DrawCount())
	})

	t.Run("style none is a no-op", func(t *testing.T) {
		rec := &surface.Recorder{}
		noneCfg := NewHUDConfig()
		noneCfg.GroupCount = 3
		noneCfg.Divider.Style = frame.DividerNone
		groups := r.CalculateGroupLayouts(noneCfg, content)
		r.DrawGroupDividers(rec, noneCfg, groups)
		assert.Equal(t, 0, rec.DrawCount())
	})
}

func TestHUDItemFrame(t *testing.T) {
	rec := &surface.Recorder{}
	r := &HUDRenderer{}
	cfg := NewHUDConfig()

	r.DrawItemFrame(rec, cfg, geom.Rect{X: 10, Y: 10, W: 50, H: 40})
	assert.Equal(t, 4, rec.CountKind(surface.OpStrokePath), "one tick path per corner")

	rec.Reset()
	r.DrawItemFrame(rec, cfg, geom.Rect{X: 10, Y: 10})
	assert.Equal(t, 0, rec.DrawCount(), "degenerate item draws nothing")
}

func TestHUDAnimateCustom(t *testing.T) {
	cfg := NewHUDConfig()
	r := &HUDRenderer{}

	assert.True(t, r.AnimateCustom(cfg, 0.5))
	first := r.scanPhase
	assert.True(t, r.AnimateCustom(cfg, 0.5))
	assert.NotEqual(t, first, r.scanPhase)
	assert.GreaterOrEqual(t, r.scanPhase, 0.0)
	assert.Less(t, r.scanPhase, 1.0)

	cfg.ShowScanline = false
	assert.False(t, r.AnimateCustom(cfg, 0.5))
}

func TestHUDAnimateSpeedScales(t *testing.T) {
	cfg := NewHUDConfig()
	slow := &HUDRenderer{}
	fast := &HUDRenderer{}

	slow.AnimateCustom(cfg, 0.5)
	cfg.AnimationSpeed = 2
	fast.AnimateCustom(cfg, 0.5)

	assert.InDelta(t, slow.scanPhase*2, fast.scanPhase, 1e-9)
}

func TestTerminalAnimateCustom(t *testing.T) {
	cfg := NewTerminalConfig()
	r := &TerminalRenderer{cursorOn: true}

	// Redraw only on a cursor toggle, not every tick.
	redrew := false
	toggles := 0
	for i := 0; i < 20; i++ {
		before := r.cursorOn
		if r.AnimateCustom(cfg, 0.1) {
			redrew = true
			assert.NotEqual(t, before, r.cursorOn)
			toggles++
		} else {
			assert.Equal(t, before, r.cursorOn)
		}
	}
	assert.True(t, redrew)
	assert.Greater(t, toggles, 0)
}

func TestTerminalRenderFrame(t *testing.T) {
	rec := &surface.Recorder{}
	r := &TerminalRenderer{cursorOn: true}
	cfg := NewTerminalConfig()

	content := r.RenderFrame(rec, cfg, 400, 300)
	assert.Equal(t, 1, rec.CountKind(surface.OpFillRoundedRect), "bezel")
	assert.Equal(t, 1, rec.CountKind(surface.OpText), "title bar text")
	assert.Greater(t, rec.CountKind(surface.OpLine), 0, "scanline overlay")
	assert.Equal(t, rec.CountKind(surface.OpClipPush), rec.CountKind(surface.OpClipPop))
	assert.GreaterOrEqual(t, content.Y, cfg.BezelWidth+cfg.TitleBarHeight)
}

func TestSwitchCarriesTransferables(t *testing.T) {
	hud, ok := Lookup("hud")
	require.True(t, ok)
	term, ok := Lookup("terminal")
	require.True(t, ok)

	old := hud.NewConfig()
	nord, _ := theme.Builtin("nord")
	old.ApplyTheme(nord)
	b := old.Base()
	b.GroupCount = 3
	b.GroupWeights = []float64{1, 1, 2}
	b.ContentSlots = map[string]frame.ContentItemConfig{
		frame.Slot(1, 1): {Kind: "gauge", Metric: "cpu_temp"},
	}
	b.AnimationSpeed = 2

	cfg, r := Switch(old, term)
	require.IsType(t, &TerminalConfig{}, cfg)
	assert.Equal(t, "terminal", r.Name())

	assert.Equal(t, 3, cfg.Groups())
	assert.Equal(t, []float64{1, 1, 2}, cfg.Weights())
	assert.Equal(t, "cpu_temp", cfg.Slots()[frame.Slot(1, 1)].Metric)
	assert.Equal(t, 2.0, cfg.Speed())
	assert.Equal(t, nord, cfg.CurrentTheme())

	// Decorative fields stay at the new skin's defaults.
	tc := cfg.(*TerminalConfig)
	assert.Equal(t, NewTerminalConfig().BezelWidth, tc.BezelWidth)
	assert.Equal(t, frame.DividerDashed, cfg.Dividers().Style)
}
