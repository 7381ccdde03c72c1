// Package ui is the demo viewer: one Gio window showing a sensor panel
// driven by the synthetic simulator, with skin and theme switching.
package ui

import (
	"fmt"
	"path/filepath"
	"time"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/oligo/gioview/menu"
	gvtheme "github.com/oligo/gioview/theme"
	"github.com/rs/zerolog"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/opensensorlab/sensordeck/pkg/compose"
	"github.com/opensensorlab/sensordeck/pkg/frame"
	"github.com/opensensorlab/sensordeck/pkg/preset"
	"github.com/opensensorlab/sensordeck/pkg/skin"
	"github.com/opensensorlab/sensordeck/pkg/surface"
)

// App owns the viewer window and the panel state: current skin config
// and renderer, preset store, simulator and composer.
type App struct {
	window   *app.Window
	ops      op.Ops
	th       *material.Theme
	gvTheme  *gvtheme.Theme
	fonts    *surface.FontCache
	log      zerolog.Logger
	settings *Settings

	store    *preset.Store
	sim      *Simulator
	content  *BarContent
	composer *compose.Composer

	cfg        frame.Config
	renderer   skin.Renderer
	skinName   string
	presetName string

	skinMenu   *menu.DropdownMenu
	skinBtn    widget.Clickable
	presetMenu *menu.DropdownMenu
	presetBtn  widget.Clickable
	pauseBtn   widget.Clickable

	pauseIcon *widget.Icon
	playIcon  *widget.Icon

	paused    bool
	lastFrame time.Time
}

// New assembles the viewer from persisted settings and the preset store.
func New(log zerolog.Logger) (*App, error) {
	settings, err := LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("viewer settings: %w", err)
	}

	store := preset.NewStore()
	if dir, derr := settingsDir(); derr == nil {
		if lerr := store.LoadDir(filepath.Join(dir, "presets")); lerr != nil {
			log.Warn().Err(lerr).Msg("skipping user presets")
		}
	}

	def, ok := skin.Lookup(settings.Skin)
	if !ok {
		def, _ = skin.Lookup("hud")
	}

	a := &App{
		window:     new(app.Window),
		th:         material.NewTheme(),
		gvTheme:    gvtheme.NewTheme("", nil, true),
		fonts:      surface.NewFontCache(0),
		log:        log,
		settings:   settings,
		store:      store,
		sim:        NewSimulator(0),
		skinName:   def.Name,
		presetName: settings.Preset,
	}

	a.cfg = def.NewConfig()
	a.renderer = def.NewRenderer()
	a.applyDemoLayout()
	if t, ok := store.Get(settings.Preset); ok {
		a.cfg.ApplyTheme(t)
	}
	if settings.Speed > 0 {
		a.cfg.Base().AnimationSpeed = settings.Speed
	}

	a.content = &BarContent{Theme: a.cfg.CurrentTheme()}
	a.composer = compose.New(a.content, log)

	if icon, err := widget.NewIcon(icons.AVPause); err == nil {
		a.pauseIcon = icon
	}
	if icon, err := widget.NewIcon(icons.AVPlayArrow); err == nil {
		a.playIcon = icon
	}
	a.skinMenu = a.buildSkinMenu()
	a.presetMenu = a.buildPresetMenu()
	return a, nil
}

// applyDemoLayout configures the default two-group slot layout fed by
// the simulator channels.
func (a *App) applyDemoLayout() {
	b := a.cfg.Base()
	b.GroupCount = 2
	b.GroupWeights = []float64{1, 1}
	b.ContentSlots = map[string]frame.ContentItemConfig{
		frame.Slot(1, 1): {Kind: "bar", Label: "CPU", Metric: "cpu_temp"},
		frame.Slot(1, 2): {Kind: "bar", Label: "Load", Metric: "cpu_load"},
		frame.Slot(1, 3): {Kind: "bar", Label: "GPU", Metric: "gpu_temp"},
		frame.Slot(2, 1): {Kind: "bar", Label: "Memory", Metric: "mem_used"},
		frame.Slot(2, 2): {Kind: "bar", Label: "Net RX", Metric: "net_rx"},
		frame.Slot(2, 3): {Kind: "text", Label: "Uptime", Metric: "uptime"},
	}
}

// Run drives the window event loop until the window closes, persisting
// the settings on the way out.
func (a *App) Run() error {
	a.window.Option(
		app.Title("SensorDeck"),
		app.Size(unit.Dp(a.settings.WindowWidth), unit.Dp(a.settings.WindowHeight)),
	)

	for {
		switch e := a.window.Event().(type) {
		case app.DestroyEvent:
			if err := a.saveSettings(); err != nil {
				a.log.Warn().Err(err).Msg("saving viewer settings")
			}
			return e.Err

		case app.FrameEvent:
			a.ops.Reset()
			gtx := app.NewContext(&a.ops, e)
			if quit := a.handleKeys(gtx); quit {
				return a.saveSettings()
			}
			a.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (a *App) saveSettings() error {
	a.settings.Skin = a.skinName
	a.settings.Preset = a.presetName
	a.settings.Speed = a.cfg.Speed()
	return a.settings.Save()
}

// handleKeys processes the viewer shortcuts: S next skin, T next theme,
// F toggle item frames, Space pause, Q/Escape quit.
func (a *App) handleKeys(gtx layout.Context) bool {
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: "S"},
			key.Filter{Name: "T"},
			key.Filter{Name: "F"},
			key.Filter{Name: key.NameSpace},
			key.Filter{Name: "Q"},
			key.Filter{Name: key.NameEscape},
		)
		if !ok {
			return false
		}
		ke, ok := ev.(key.Event)
		if !ok || ke.State != key.Press {
			continue
		}
		switch ke.Name {
		case key.NameEscape, "Q":
			return true
		case "S":
			a.nextSkin()
		case "T":
			a.applyPreset(a.store.Next(a.presetName))
		case "F":
			a.cfg.Base().ItemFrameEnabled = !a.cfg.Base().ItemFrameEnabled
			a.window.Invalidate()
		case key.NameSpace:
			a.togglePause()
		}
	}
}

func (a *App) togglePause() {
	a.paused = !a.paused
	a.cfg.Base().AnimationEnabled = !a.paused
	a.window.Invalidate()
}

// nextSkin cycles through the registered skins, carrying the
// transferable layout and the current theme across.
func (a *App) nextSkin() {
	names := skin.Names()
	if len(names) < 2 {
		return
	}
	next := names[0]
	for i, n := range names {
		if n == a.skinName {
			next = names[(i+1)%len(names)]
			break
		}
	}
	a.switchSkin(next)
}

func (a *App) switchSkin(name string) {
	def, ok := skin.Lookup(name)
	if !ok {
		return
	}
	a.cfg, a.renderer = skin.Switch(a.cfg, def)
	a.skinName = name
	a.cfg.Base().AnimationEnabled = !a.paused
	a.log.Info().Str("skin", name).Msg("switched skin")
	a.window.Invalidate()
}

func (a *App) applyPreset(name string) {
	t, ok := a.store.Get(name)
	if !ok {
		return
	}
	a.cfg.ApplyTheme(t)
	a.content.Theme = t
	a.presetName = name
	a.log.Info().Str("preset", name).Msg("applied theme preset")
	a.window.Invalidate()
}

func (a *App) buildSkinMenu() *menu.DropdownMenu {
	names := skin.Names()
	opts := make([]menu.MenuOption, 0, len(names))
	for _, name := range names {
		n := name
		label := n
		if def, ok := skin.Lookup(n); ok && def.Title != "" {
			label = def.Title
		}
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				a.switchSkin(n)
				return nil
			},
			Layout: func(gtx menu.C, th *gvtheme.Theme) menu.D {
				lbl := material.Body1(th.Theme, label)
				if n == a.skinName {
					lbl.Color = th.Palette.ContrastBg
				}
				return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, lbl.Layout)
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(180)
	return drop
}

func (a *App) buildPresetMenu() *menu.DropdownMenu {
	names := a.store.Names()
	opts := make([]menu.MenuOption, 0, len(names))
	for _, name := range names {
		n := name
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				a.applyPreset(n)
				return nil
			},
			Layout: func(gtx menu.C, th *gvtheme.Theme) menu.D {
				lbl := material.Body1(th.Theme, n)
				if n == a.presetName {
					lbl.Color = th.Palette.ContrastBg
				}
				return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, lbl.Layout)
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(180)
	return drop
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(6)).Layout(gtx, a.layoutToolbar)
		}),
		layout.Flexed(1, a.layoutPanel),
	)
}

func (a *App) layoutToolbar(gtx layout.Context) layout.Dimensions {
	if a.skinBtn.Clicked(gtx) {
		a.skinMenu.ToggleVisibility(gtx)
	}
	if a.presetBtn.Clicked(gtx) {
		a.presetMenu.ToggleVisibility(gtx)
	}
	if a.pauseBtn.Clicked(gtx) {
		a.togglePause()
	}

	dims := layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.Button(a.th, &a.skinBtn, "Skin: "+a.skinName).Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.Button(a.th, &a.presetBtn, "Theme: "+a.presetName).Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			icon := a.pauseIcon
			if a.paused {
				icon = a.playIcon
			}
			btn := material.IconButton(a.th, &a.pauseBtn, icon, "pause")
			btn.Size = unit.Dp(20)
			return btn.Layout(gtx)
		}),
	)

	// Menus last so they overlay the buttons.
	a.skinMenu.Layout(gtx, a.gvTheme)
	a.presetMenu.Layout(gtx, a.gvTheme)
	return dims
}

// layoutPanel runs one composer pass into the remaining window area.
func (a *App) layoutPanel(gtx layout.Context) layout.Dimensions {
	now := gtx.Now
	elapsed := 0.0
	if !a.lastFrame.IsZero() {
		elapsed = now.Sub(a.lastFrame).Seconds()
		if elapsed > 0.25 {
			elapsed = 0.25
		}
	}
	a.lastFrame = now

	metrics, changed := a.sim.Sample(now)
	if a.paused {
		changed = false
	}

	w := float64(gtx.Constraints.Max.X)
	h := float64(gtx.Constraints.Max.Y)
	s := surface.NewGio(gtx, a.fonts)

	redraw, err := a.composer.RenderPass(a.cfg, a.renderer, s, w, h, elapsed, metrics, changed)
	if err != nil {
		a.log.Error().Err(err).Msg("render pass failed")
	}
	if redraw || !a.paused {
		a.window.Invalidate()
	}
	return layout.Dimensions{Size: gtx.Constraints.Max}
}
