package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensensorlab/sensordeck/pkg/geom"
)

const epsilon = 1e-9

func TestNormalizeWeights(t *testing.T) {
	cases := []struct {
		name    string
		weights []float64
		count   int
		want    []float64
	}{
		{"pads short list", []float64{2}, 3, []float64{2, 1, 1}},
		{"truncates long list", []float64{1, 2, 3, 4}, 2, []float64{1, 2}},
		{"exact length unchanged", []float64{1, 2}, 2, []float64{1, 2}},
		{"nil list", nil, 2, []float64{1, 1}},
		{"zero count coerced to one", []float64{5}, 0, []float64{5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeWeights(tc.weights, tc.count))
		})
	}
}

func TestSplitGroupsExtentSum(t *testing.T) {
	content := geom.Rect{X: 10, Y: 20, W: 640, H: 480}
	weights := []float64{3, 0.5, 2, 1, 1, 4, 0.25, 1}

	for count := 1; count <= 8; count++ {
		groups := SplitGroups(content, count, weights[:count], geom.Horizontal, 2, 1)
		require.Len(t, groups, count)

		sum := 0.0
		for _, g := range groups {
			sum += g.W
			assert.Equal(t, content.H, g.H, "groups fill the cross axis")
			assert.Equal(t, content.Y, g.Y)
		}
		want := content.W - DividerSpace(count, 2, 1)
		assert.InDelta(t, want, sum, epsilon, "count=%d", count)
	}
}

func TestSplitGroupsConcreteScenario(t *testing.T) {
	// content 300x100, 3 groups weighted 1:1:2, divider 2 with padding 1:
	// divider_space = 2*(2+2) = 8, available = 292.
	content := geom.Rect{W: 300, H: 100}
	groups := SplitGroups(content, 3, []float64{1, 1, 2}, geom.Horizontal, 2, 1)
	require.Len(t, groups, 3)

	assert.InDelta(t, 73, groups[0].W, epsilon)
	assert.InDelta(t, 73, groups[1].W, epsilon)
	assert.InDelta(t, 146, groups[2].W, epsilon)
	for _, g := range groups {
		assert.Equal(t, 100.0, g.H)
	}

	// Sequential placement with the divider allowance between groups.
	assert.InDelta(t, 0, groups[0].X, epsilon)
	assert.InDelta(t, 77, groups[1].X, epsilon)
	assert.InDelta(t, 154, groups[2].X, epsilon)
}

func TestSplitGroupsVertical(t *testing.T) {
	content := geom.Rect{X: 5, Y: 5, W: 100, H: 210}
	groups := SplitGroups(content, 2, []float64{1, 2}, geom.Vertical, 6, 2)
	require.Len(t, groups, 2)

	// divider_space = 6+4 = 10, available = 200.
	assert.InDelta(t, 200.0/3, groups[0].H, epsilon)
	assert.InDelta(t, 400.0/3, groups[1].H, epsilon)
	assert.Equal(t, 100.0, groups[0].W)
	assert.InDelta(t, groups[0].Bottom()+10, groups[1].Y, epsilon)
}

func TestSplitGroupsDegenerate(t *testing.T) {
	t.Run("zero group count treated as one", func(t *testing.T) {
		groups := SplitGroups(geom.Rect{W: 100, H: 50}, 0, nil, geom.Horizontal, 0, 0)
		require.Len(t, groups, 1)
		assert.Equal(t, 100.0, groups[0].W)
	})

	t.Run("non-positive weight sum falls back to equal split", func(t *testing.T) {
		groups := SplitGroups(geom.Rect{W: 90, H: 50}, 3, []float64{0, -1, 1}, geom.Horizontal, 0, 0)
		require.Len(t, groups, 3)
		for _, g := range groups {
			assert.InDelta(t, 30, g.W, epsilon)
		}
	})

	t.Run("content smaller than divider space yields zero sizes", func(t *testing.T) {
		groups := SplitGroups(geom.Rect{W: 5, H: 50}, 4, nil, geom.Horizontal, 4, 2)
		require.Len(t, groups, 4)
		for _, g := range groups {
			assert.Equal(t, 0.0, g.W)
			assert.False(t, math.Signbit(g.W))
		}
	})

	t.Run("negative content extent yields zero sizes", func(t *testing.T) {
		groups := SplitGroups(geom.Rect{W: -10, H: 50}, 2, nil, geom.Horizontal, 0, 0)
		for _, g := range groups {
			assert.Equal(t, 0.0, g.W)
		}
	})
}

func TestDividerGaps(t *testing.T) {
	content := geom.Rect{W: 300, H: 100}
	groups := SplitGroups(content, 3, []float64{1, 1, 2}, geom.Horizontal, 2, 1)

	gaps := DividerGaps(groups, geom.Horizontal)
	require.Len(t, gaps, 2)
	for _, gap := range gaps {
		assert.InDelta(t, 4, gap.W, epsilon, "gap holds divider width plus padding on both sides")
		assert.Equal(t, 100.0, gap.H)
	}
	assert.InDelta(t, 73, gaps[0].X, epsilon)

	assert.Nil(t, DividerGaps(groups[:1], geom.Horizontal))
	assert.Nil(t, DividerGaps(nil, geom.Horizontal))
}

func TestItemRects(t *testing.T) {
	group := geom.Rect{X: 10, Y: 10, W: 100, H: 90}

	t.Run("equal shares with spacing", func(t *testing.T) {
		items := ItemRects(group, 3, geom.Vertical, 3)
		require.Len(t, items, 3)
		for _, it := range items {
			assert.InDelta(t, 28, it.H, epsilon)
			assert.Equal(t, 100.0, it.W)
		}
		assert.InDelta(t, items[0].Bottom()+3, items[1].Y, epsilon)
	})

	t.Run("single item fills the group", func(t *testing.T) {
		items := ItemRects(group, 1, geom.Horizontal, 5)
		require.Len(t, items, 1)
		assert.Equal(t, group, items[0])
	})

	t.Run("zero items", func(t *testing.T) {
		assert.Nil(t, ItemRects(group, 0, geom.Horizontal, 0))
	})

	t.Run("spacing larger than group", func(t *testing.T) {
		items := ItemRects(geom.Rect{W: 4, H: 4}, 5, geom.Horizontal, 10)
		for _, it := range items {
			assert.Equal(t, 0.0, it.W)
		}
	})
}
