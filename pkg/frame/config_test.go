package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/opensensorlab/sensordeck/pkg/geom"
	"github.com/opensensorlab/sensordeck/pkg/theme"
)

func TestBaseConfigCoercions(t *testing.T) {
	var b BaseConfig

	assert.Equal(t, 1, b.Groups(), "zero group count reads as one")
	b.GroupCount = -3
	assert.Equal(t, 1, b.Groups())
	b.GroupCount = 4
	assert.Equal(t, 4, b.Groups())

	assert.Equal(t, 1.0, b.Speed(), "zero speed reads as neutral")
	b.AnimationSpeed = -2
	assert.Equal(t, 1.0, b.Speed())
	b.AnimationSpeed = 0.5
	assert.Equal(t, 0.5, b.Speed())
}

func TestBaseConfigWeightsCopy(t *testing.T) {
	b := BaseConfig{GroupWeights: []float64{1, 2, 3}}
	w := b.Weights()
	w[0] = 99
	assert.Equal(t, []float64{1, 2, 3}, b.GroupWeights)
}

func TestBaseConfigItemOrientation(t *testing.T) {
	b := BaseConfig{
		SplitOrientation:      geom.Horizontal,
		GroupItemOrientations: []geom.Orientation{geom.Vertical},
	}

	assert.Equal(t, geom.Vertical, b.ItemOrientation(0))
	assert.Equal(t, geom.Horizontal, b.ItemOrientation(1), "unset groups follow the split")
	assert.Equal(t, geom.Horizontal, b.ItemOrientation(-1))
}

func TestBaseConfigApplyTheme(t *testing.T) {
	b := DefaultBase()
	b.GroupCount = 5

	nord, ok := theme.Builtin("nord")
	require.True(t, ok)
	b.ApplyTheme(nord)

	assert.Equal(t, nord, b.CurrentTheme())
	assert.Equal(t, 5, b.GroupCount, "theme swap leaves layout fields alone")
}

func TestDefaultBase(t *testing.T) {
	b := DefaultBase()

	assert.Equal(t, 2, b.Groups())
	assert.Equal(t, geom.Horizontal, b.Split())
	assert.Equal(t, 8.0, b.Padding())
	assert.Equal(t, 4.0, b.Spacing())
	assert.Equal(t, DividerSolid, b.Dividers().Style)
	assert.True(t, b.AnimationOn())
	assert.False(t, b.ItemFramesOn())
	assert.Equal(t, theme.Default(), b.CurrentTheme())
}

func TestBaseConfigYAMLDefaults(t *testing.T) {
	doc := `
group_count: 3
group_weights: [1, 1, 2]
content_slots:
  group1_1: {kind: gauge, metric: cpu_temp}
`
	var b BaseConfig
	require.NoError(t, yaml.Unmarshal([]byte(doc), &b))

	assert.Equal(t, 3, b.GroupCount)
	assert.Equal(t, []float64{1, 1, 2}, b.GroupWeights)
	require.Contains(t, b.ContentSlots, "group1_1")
	assert.Equal(t, "cpu_temp", b.ContentSlots["group1_1"].Metric)

	// Unspecified fields keep the package defaults.
	def := DefaultBase()
	assert.Equal(t, def.ContentPadding, b.ContentPadding)
	assert.Equal(t, def.ItemSpacing, b.ItemSpacing)
	assert.Equal(t, def.Divider.Style, b.Divider.Style)
	assert.Equal(t, def.AnimationEnabled, b.AnimationEnabled)
}

func TestBaseConfigYAMLRoundTrip(t *testing.T) {
	b := DefaultBase()
	b.GroupCount = 3
	b.GroupWeights = []float64{2, 1, 1}
	b.SplitOrientation = geom.Vertical
	b.ContentSlots = map[string]ContentItemConfig{
		Slot(1, 1): {Kind: "gauge", Label: "CPU", Metric: "cpu_load"},
	}

	data, err := yaml.Marshal(&b)
	require.NoError(t, err)

	var got BaseConfig
	require.NoError(t, yaml.Unmarshal(data, &got))

	assert.Equal(t, b.GroupCount, got.GroupCount)
	assert.Equal(t, b.GroupWeights, got.GroupWeights)
	assert.Equal(t, b.SplitOrientation, got.SplitOrientation)
	assert.Equal(t, b.ContentSlots, got.ContentSlots)
}
