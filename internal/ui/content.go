package ui

import (
	"fmt"

	"github.com/opensensorlab/sensordeck/pkg/compose"
	"github.com/opensensorlab/sensordeck/pkg/frame"
	"github.com/opensensorlab/sensordeck/pkg/geom"
	"github.com/opensensorlab/sensordeck/pkg/surface"
	"github.com/opensensorlab/sensordeck/pkg/theme"
)

// BarContent is the demo content renderer: a label, the current value
// and a horizontal level bar per slot. It stands in for the external
// gauge/graph/arc renderers a real deployment plugs in.
type BarContent struct {
	Theme theme.Theme
}

func (c *BarContent) RenderItem(s surface.Surface, item frame.ContentItemConfig, rect geom.Rect, metrics compose.Snapshot) {
	if rect.W < 8 || rect.H < 8 {
		return
	}
	t := c.Theme
	inner := rect.InsetUniform(3)

	label := item.Label
	if label == "" {
		label = item.Metric
	}
	labelFont := theme.ThemeFontSized(1, 11).Resolve(t)
	s.Text(geom.Point{X: inner.X, Y: inner.Y}, label, labelFont, t.Color(3))

	val, text := c.metricValue(item.Metric, metrics)
	valueFont := theme.ThemeFont(2).Resolve(t)
	s.Text(geom.Point{X: inner.X, Y: inner.Y + labelFont.Size + 4}, text, valueFont, t.Color(1))

	barH := 5.0
	if inner.H < labelFont.Size+valueFont.Size+barH+10 {
		return
	}
	track := geom.Rect{X: inner.X, Y: inner.Bottom() - barH, W: inner.W, H: barH}
	s.FillRect(track, theme.ThemeColorAlpha(3, 70).Resolve(t))

	lo, hi := Range(item.Metric)
	frac := 0.0
	if hi > lo {
		frac = (val - lo) / (hi - lo)
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	fill := track
	fill.W = track.W * frac
	s.LinearGradient(fill, t.Gradient.Resolve(t))
}

// metricValue pulls the metric out of the snapshot, formatting numbers
// with their unit and passing strings through. Missing metrics show a
// placeholder so an empty slot is visibly empty rather than stuck at
// zero.
func (c *BarContent) metricValue(metric string, metrics compose.Snapshot) (float64, string) {
	raw, ok := metrics[metric]
	if !ok {
		return 0, "n/a"
	}
	unit, _ := metrics[metric+"_unit"].(string)
	switch v := raw.(type) {
	case float64:
		return v, fmt.Sprintf("%.1f%s", v, unit)
	case int:
		return float64(v), fmt.Sprintf("%d%s", v, unit)
	case string:
		return 0, v
	case bool:
		if v {
			return 1, "on"
		}
		return 0, "off"
	default:
		return 0, fmt.Sprint(v)
	}
}
