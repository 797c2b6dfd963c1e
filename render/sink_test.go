/*
File    : curvelang/render/sink_test.go
*/
package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curvelang/curvelang/generator"
)

func TestPNGSinkProducesDecodableImage(t *testing.T) {
	var buf bytes.Buffer
	sink := NewPNGSink(&buf)
	sink.Width, sink.Height = 16, 16

	vp := generator.Viewport{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1}
	points := []generator.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}

	require.NoError(t, sink.Render(points, vp))

	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, 16, bounds.Dx())
	assert.Equal(t, 16, bounds.Dy())
}

func TestRecordingSinkStoresWhatItWasGiven(t *testing.T) {
	sink := &RecordingSink{}
	vp := generator.Viewport{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}
	points := []generator.Point{{X: 5, Y: 5}}

	require.NoError(t, sink.Render(points, vp))
	assert.Equal(t, points, sink.Points)
	assert.Equal(t, vp, sink.Viewport)
}
