// Package compose orchestrates one panel redraw: frame, group layout,
// slot lookup, content delegation, dividers, item frames and the
// animation hook, in that order.
package compose

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/opensensorlab/sensordeck/pkg/frame"
	"github.com/opensensorlab/sensordeck/pkg/geom"
	"github.com/opensensorlab/sensordeck/pkg/layout"
	"github.com/opensensorlab/sensordeck/pkg/skin"
	"github.com/opensensorlab/sensordeck/pkg/surface"
)

// Snapshot maps metric field names to their current values. The
// composer passes it through to the content renderer untouched; values
// are numeric, text or boolean.
type Snapshot map[string]any

// ContentRenderer draws one content item into its rectangle. It is
// external to this core: bar, graph, arc and speedometer renderers all
// satisfy it.
type ContentRenderer interface {
	RenderItem(s surface.Surface, item frame.ContentItemConfig, rect geom.Rect, metrics Snapshot)
}

// Composer drives a skin renderer through a full render pass.
type Composer struct {
	content ContentRenderer
	log     zerolog.Logger
}

// New builds a composer delegating content items to the given renderer.
// A nil content renderer leaves content cells empty, which is valid for
// decoration-only panels.
func New(content ContentRenderer, log zerolog.Logger) *Composer {
	return &Composer{content: content, log: log}
}

// RenderPass runs one redraw against the surface and reports whether a
// further frame should be scheduled, either because the skin's animation
// asked for one or because dataChanged was set by the caller.
//
// A malformed configuration never fails the pass; the only returned
// error is a failure of the drawing surface itself, letting the caller
// skip this frame and retry on the next tick.
func (c *Composer) RenderPass(cfg frame.Config, r skin.Renderer, s surface.Surface, width, height, elapsed float64, metrics Snapshot, dataChanged bool) (bool, error) {
	content := r.RenderFrame(s, cfg, width, height)
	if content.W <= 0 || content.H <= 0 {
		// Nothing visible fits; RenderFrame already drew nothing, and
		// splitting a zero-size area would still reserve divider gaps
		// with paintable lines in them.
		if err := s.Err(); err != nil {
			return false, fmt.Errorf("drawing surface: %w", err)
		}
		return dataChanged, nil
	}
	groups := r.CalculateGroupLayouts(cfg, content)

	slots := cfg.Slots()
	var itemRects []geom.Rect
	for gi, group := range groups {
		g := gi + 1
		n := frame.GroupItemCount(slots, g)
		items := layout.ItemRects(group, n, cfg.ItemOrientation(gi), cfg.Spacing())
		itemRects = append(itemRects, items...)

		for ii, rect := range items {
			name := frame.Slot(g, ii+1)
			item, ok := slots[name]
			if !ok {
				c.log.Debug().Str("slot", name).Msg("no content configured for slot")
				continue
			}
			if c.content != nil {
				c.content.RenderItem(s, item, rect, metrics)
			}
		}
	}

	r.DrawGroupDividers(s, cfg, groups)

	if cfg.ItemFramesOn() {
		for _, rect := range itemRects {
			r.DrawItemFrame(s, cfg, rect)
		}
	}

	redraw := dataChanged
	if cfg.AnimationOn() {
		redraw = r.AnimateCustom(cfg, elapsed) || redraw
	}

	if err := s.Err(); err != nil {
		return false, fmt.Errorf("drawing surface: %w", err)
	}
	return redraw, nil
}
