package surface

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensensorlab/sensordeck/pkg/geom"
	"github.com/opensensorlab/sensordeck/pkg/theme"
)

func TestRecorderCapturesOps(t *testing.T) {
	r := &Recorder{}
	r.FillRect(geom.Rect{W: 10, H: 10}, theme.FallbackColor)
	r.Line(geom.Point{}, geom.Point{X: 5}, 2, theme.FallbackColor)
	r.Text(geom.Point{X: 1, Y: 2}, "CPU", theme.FallbackFont, theme.FallbackColor)

	require.Len(t, r.Ops, 3)
	assert.Equal(t, OpFillRect, r.Ops[0].Kind)
	assert.Equal(t, OpLine, r.Ops[1].Kind)
	assert.Equal(t, 2.0, r.Ops[1].Width)
	assert.Equal(t, "CPU", r.Ops[2].Text)
}

func TestRecorderDrawCountSkipsBookkeeping(t *testing.T) {
	r := &Recorder{}
	r.Save()
	r.PushClip(geom.Rect{W: 10, H: 10})
	r.FillRect(geom.Rect{W: 5, H: 5}, theme.FallbackColor)
	r.PopClip()
	r.Restore()

	assert.Len(t, r.Ops, 5)
	assert.Equal(t, 1, r.DrawCount())
	assert.Equal(t, 1, r.CountKind(OpClipPush))
	assert.Equal(t, 1, r.CountKind(OpSave))
}

func TestRecorderFailAndReset(t *testing.T) {
	r := &Recorder{}
	assert.NoError(t, r.Err())

	boom := errors.New("boom")
	r.Fail(boom)
	assert.ErrorIs(t, r.Err(), boom)

	r.FillRect(geom.Rect{W: 1, H: 1}, theme.FallbackColor)
	r.Reset()
	assert.Empty(t, r.Ops)
	assert.NoError(t, r.Err())
}

func TestPathBuilder(t *testing.T) {
	var p Path
	assert.Equal(t, 0, p.Len())

	p.MoveTo(geom.Point{X: 1, Y: 1})
	p.LineTo(geom.Point{X: 5, Y: 1})
	p.QuadTo(geom.Point{X: 6, Y: 2}, geom.Point{X: 5, Y: 3})
	p.CubeTo(geom.Point{X: 4, Y: 4}, geom.Point{X: 2, Y: 4}, geom.Point{X: 1, Y: 3})
	p.Close()

	assert.Equal(t, 5, p.Len())
}

func TestFontCacheBound(t *testing.T) {
	c := NewFontCache(4)

	families := []string{"Go", "Go Mono", "A", "B", "C", "D", "E"}
	for _, fam := range families {
		got := c.Lookup(fam)
		assert.Equal(t, fam, string(got.Typeface))
	}
	assert.LessOrEqual(t, c.Len(), 4)

	// Repeated lookups of a cached family do not grow the table.
	before := c.Len()
	c.Lookup(families[len(families)-1])
	assert.Equal(t, before, c.Len())
}
