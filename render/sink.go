/*
File    : curvelang/render/sink.go
*/

// Package render implements the rendering sink collaborator
// (component 7): it takes the generator's accepted points and the
// viewport they were culled against, and produces a visible artifact.
// The only shipped Sink rasterizes to a PNG image using the standard
// library's image/png encoder — the one place this module reaches for
// the standard library over a third-party dependency, justified
// because none of the available example repos import an image/drawing
// library (see DESIGN.md).
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/curvelang/curvelang/generator"
)

// Sink receives a finished point set and does something observable
// with it. Points arrive already transformed and already culled to
// vp; Sink only needs vp to map them onto its own output space.
type Sink interface {
	Render(points []generator.Point, vp generator.Viewport) error
}

// PNGSink rasterizes points as single-pixel dots (thickened by Radius)
// onto a Width x Height canvas, mapping the viewport rectangle onto
// the canvas with the Y axis flipped (curve-space Y increases upward;
// image-space Y increases downward).
type PNGSink struct {
	Writer     io.Writer
	Width      int
	Height     int
	Radius     int
	Background color.Color
	Foreground color.Color
}

// NewPNGSink returns a PNGSink with sensible defaults: a 512x512 white
// canvas, black dots one pixel wide.
func NewPNGSink(w io.Writer) *PNGSink {
	return &PNGSink{
		Writer:     w,
		Width:      512,
		Height:     512,
		Radius:     0,
		Background: color.White,
		Foreground: color.Black,
	}
}

// Render maps each point from vp's rectangle onto the canvas and
// encodes the result as a PNG.
func (s *PNGSink) Render(points []generator.Point, vp generator.Viewport) error {
	width, height := s.Width, s.Height
	if width <= 0 {
		width = 512
	}
	if height <= 0 {
		height = 512
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := s.Background
	if bg == nil {
		bg = color.White
	}
	fg := s.Foreground
	if fg == nil {
		fg = color.Black
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, bg)
		}
	}

	spanX := vp.MaxX - vp.MinX
	spanY := vp.MaxY - vp.MinY
	for _, p := range points {
		if spanX <= 0 || spanY <= 0 {
			continue
		}
		px := int((p.X - vp.MinX) / spanX * float64(width-1))
		py := int((1 - (p.Y-vp.MinY)/spanY) * float64(height-1))
		s.plot(img, px, py, fg)
	}

	return png.Encode(s.Writer, img)
}

func (s *PNGSink) plot(img *image.RGBA, cx, cy int, c color.Color) {
	b := img.Bounds()
	for dy := -s.Radius; dy <= s.Radius; dy++ {
		for dx := -s.Radius; dx <= s.Radius; dx++ {
			x, y := cx+dx, cy+dy
			if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
				img.Set(x, y, c)
			}
		}
	}
}

// RecordingSink accumulates the rendered points and viewport in
// memory instead of producing an artifact, for use by tests.
type RecordingSink struct {
	Points   []generator.Point
	Viewport generator.Viewport
}

func (s *RecordingSink) Render(points []generator.Point, vp generator.Viewport) error {
	s.Points = points
	s.Viewport = vp
	return nil
}
