// Package layout implements the weighted group-splitting algorithm shared
// by every panel skin. All functions are pure: they compute rectangles
// from their inputs and never touch the drawing surface or mutate the
// caller's configuration.
package layout

import (
	"github.com/opensensorlab/sensordeck/pkg/geom"
)

// NormalizeWeights coerces a weight list to exactly count entries. Short
// lists are padded with 1.0, long lists truncated. A count below one is
// treated as one. The input slice is never mutated.
func NormalizeWeights(weights []float64, count int) []float64 {
	if count < 1 {
		count = 1
	}
	out := make([]float64, count)
	for i := range out {
		if i < len(weights) {
			out[i] = weights[i]
		} else {
			out[i] = 1.0
		}
	}
	return out
}

// weightSum returns the sum of the weights, substituting an equal split
// when the sum is not positive. The substitution applies to this
// computation only.
func weightSum(weights []float64) (sum float64, equal bool) {
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		return float64(len(weights)), true
	}
	return sum, false
}

// DividerSpace returns the main-axis extent consumed by dividers between
// count groups: each of the count-1 gaps holds the divider plus padding
// on both sides.
func DividerSpace(count int, dividerWidth, dividerPadding float64) float64 {
	gaps := count - 1
	if gaps < 0 {
		gaps = 0
	}
	return float64(gaps) * (dividerWidth + 2*dividerPadding)
}

// SplitGroups divides the content rectangle into groupCount rectangles
// along the split orientation, sized proportionally to the weights.
// Groups fill the cross axis completely. The space reserved for dividers
// is excluded from the distributable extent; a content extent too small
// to hold the dividers yields zero-size groups rather than negative
// coordinates.
func SplitGroups(content geom.Rect, groupCount int, weights []float64, o geom.Orientation, dividerWidth, dividerPadding float64) []geom.Rect {
	if groupCount < 1 {
		groupCount = 1
	}
	w := NormalizeWeights(weights, groupCount)
	sum, equal := weightSum(w)
	if equal {
		for i := range w {
			w[i] = 1.0
		}
	}

	allowance := dividerWidth + 2*dividerPadding
	available := content.MainExtent(o) - DividerSpace(groupCount, dividerWidth, dividerPadding)
	if available < 0 {
		available = 0
	}

	rects := make([]geom.Rect, groupCount)
	pos := 0.0
	for i := range rects {
		size := available * (w[i] / sum)
		if size < 0 {
			size = 0
		}
		if o == geom.Vertical {
			rects[i] = geom.Rect{X: content.X, Y: content.Y + pos, W: content.W, H: size}
		} else {
			rects[i] = geom.Rect{X: content.X + pos, Y: content.Y, W: size, H: content.H}
		}
		pos += size
		if i < groupCount-1 {
			pos += allowance
		}
	}
	return rects
}

// DividerGaps returns the gap rectangle between each pair of consecutive
// group rectangles. The gaps span the groups' full cross extent; skins
// center their divider style inside them. The result has len(groups)-1
// entries, or none for fewer than two groups.
func DividerGaps(groups []geom.Rect, o geom.Orientation) []geom.Rect {
	if len(groups) < 2 {
		return nil
	}
	gaps := make([]geom.Rect, 0, len(groups)-1)
	for i := 0; i < len(groups)-1; i++ {
		if o == geom.Vertical {
			top := groups[i].Bottom()
			h := groups[i+1].Y - top
			if h < 0 {
				h = 0
			}
			gaps = append(gaps, geom.Rect{X: groups[i].X, Y: top, W: groups[i].W, H: h})
		} else {
			left := groups[i].Right()
			w := groups[i+1].X - left
			if w < 0 {
				w = 0
			}
			gaps = append(gaps, geom.Rect{X: left, Y: groups[i].Y, W: w, H: groups[i].H})
		}
	}
	return gaps
}

// ItemRects stacks n equal-share item rectangles inside a group along the
// group's own orientation, separated by spacing. Per-item weighting is
// deliberately not supported; weights apply at the group level only.
func ItemRects(group geom.Rect, n int, o geom.Orientation, spacing float64) []geom.Rect {
	if n < 1 {
		return nil
	}
	available := group.MainExtent(o) - spacing*float64(n-1)
	if available < 0 {
		available = 0
	}
	size := available / float64(n)

	rects := make([]geom.Rect, n)
	pos := 0.0
	for i := range rects {
		if o == geom.Vertical {
			rects[i] = geom.Rect{X: group.X, Y: group.Y + pos, W: group.W, H: size}
		} else {
			rects[i] = geom.Rect{X: group.X + pos, Y: group.Y, W: size, H: group.H}
		}
		pos += size + spacing
	}
	return rects
}
