/*
File    : curvelang/generator/generator_test.go
*/
package generator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorIdentityTransform(t *testing.T) {
	g := NewGenerator()
	accepted, err := g.Submit(3, 4)
	require.NoError(t, err)
	assert.True(t, accepted)

	pts, err := g.Drain()
	require.NoError(t, err)
	require.Len(t, pts, 1)
	assert.InDelta(t, 3, pts[0].X, 1e-9)
	assert.InDelta(t, 4, pts[0].Y, 1e-9)
}

func TestGeneratorFullTransformComposition(t *testing.T) {
	// scale(2,1); rot(pi/2); origin(3,4); submit(1,0) -> (3,6)
	g := NewGenerator()
	g.SetScale(2, 1)
	g.SetRot(math.Pi / 2)
	g.SetOrigin(3, 4)

	accepted, err := g.Submit(1, 0)
	require.NoError(t, err)
	assert.True(t, accepted)

	pts, err := g.Drain()
	require.NoError(t, err)
	require.Len(t, pts, 1)
	assert.InDelta(t, 3, pts[0].X, 1e-9)
	assert.InDelta(t, 6, pts[0].Y, 1e-9)
}

func TestGeneratorRotationOnly(t *testing.T) {
	g := NewGenerator()
	g.SetRot(math.Pi / 2)

	_, err := g.Submit(0, 0)
	require.NoError(t, err)
	_, err = g.Submit(1, 0)
	require.NoError(t, err)

	pts, err := g.Drain()
	require.NoError(t, err)
	require.Len(t, pts, 2)
	assert.InDelta(t, 0, pts[0].X, 1e-9)
	assert.InDelta(t, 0, pts[0].Y, 1e-9)
	assert.InDelta(t, 0, pts[1].X, 1e-9)
	assert.InDelta(t, 1, pts[1].Y, 1e-9)
}

func TestGeneratorViewportCullingIsInclusive(t *testing.T) {
	g := NewGenerator()
	require.NoError(t, g.SetViewport(-10, 10, -10, 10))

	onBoundary, err := g.Submit(10, 10)
	require.NoError(t, err)
	assert.True(t, onBoundary, "boundary points must be accepted (inclusive bounds)")

	outside, err := g.Submit(10.0001, 0)
	require.NoError(t, err)
	assert.False(t, outside)
	assert.Equal(t, 1, g.Discarded)
}

func TestGeneratorInvalidViewportRejected(t *testing.T) {
	g := NewGenerator()
	err := g.SetViewport(10, -10, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidViewport)
}

func TestGeneratorDrainIsSingleUse(t *testing.T) {
	g := NewGenerator()
	_, err := g.Submit(0, 0)
	require.NoError(t, err)

	_, err = g.Drain()
	require.NoError(t, err)

	_, err = g.Drain()
	assert.ErrorIs(t, err, ErrAlreadyDrained)
}

func TestGeneratorStrictModeRejectsNonFinite(t *testing.T) {
	g := NewGenerator()
	g.Strict = true
	_, err := g.Submit(math.Inf(1), 0)
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestGeneratorNonStrictModeSilentlyDropsNonFinite(t *testing.T) {
	g := NewGenerator()
	accepted, err := g.Submit(math.NaN(), 0)
	require.NoError(t, err)
	assert.False(t, accepted, "NaN never satisfies the viewport comparison, so it's dropped, not stored")
}
