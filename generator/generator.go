/*
File    : curvelang/generator/generator.go
*/

// Package generator implements the point generator: it applies scale,
// rotation, and translation (in that order) to each raw (x, y),
// discards points falling outside a configured viewport rectangle, and
// accumulates the accepted points for the rendering sink.
package generator

import (
	"fmt"
	"math"
)

// Point is an accepted, post-transform (x, y) pair.
type Point struct {
	X, Y float64
}

// Transform holds the three values composed onto every raw point:
// origin (default (0,0)), scale (default (1,1)), and rotation in
// radians (default 0, with its sin/cos cached whenever it changes).
type Transform struct {
	OriginX, OriginY float64
	ScaleX, ScaleY   float64
	Rotation         float64
	sin, cos         float64
}

func newTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1, sin: 0, cos: 1}
}

// Viewport is the inclusive rectangle [MinX, MaxX] x [MinY, MaxY]
// outside which generated points are discarded. The zero-value
// Viewport is not usable; NewGenerator installs defaults large enough
// to be effectively unbounded.
type Viewport struct {
	MinX, MaxX, MinY, MaxY float64
}

func (v Viewport) contains(x, y float64) bool {
	return x >= v.MinX && x <= v.MaxX && y >= v.MinY && y <= v.MaxY
}

// defaultBound is large enough that no practical curve program
// exceeds it, giving the "effectively unbounded" default viewport the
// contract calls for.
const defaultBound = 1e9

// Generator owns the transform state, the viewport, and the ordered
// accepted-point storage. It is single-use: Drain may not be called
// twice.
type Generator struct {
	xf       Transform
	vp       Viewport
	points   []Point
	drained  bool

	// Strict, when set, turns a submitted NaN/Inf coordinate into an
	// error instead of letting the viewport's ordinary comparison
	// (always false against NaN) silently discard it. Off by default,
	// matching the language's "never abort on math" contract.
	Strict bool

	// Discarded counts every point rejected by the viewport over the
	// generator's lifetime (it is never reset); the FOR driver compares
	// it before and after a loop to report an end-of-loop warning.
	Discarded int
}

// NewGenerator returns a Generator with identity transform and an
// effectively unbounded viewport.
func NewGenerator() *Generator {
	return &Generator{
		xf: newTransform(),
		vp: Viewport{MinX: -defaultBound, MaxX: defaultBound, MinY: -defaultBound, MaxY: defaultBound},
	}
}

// SetOrigin sets the translation applied last.
func (g *Generator) SetOrigin(x, y float64) {
	g.xf.OriginX, g.xf.OriginY = x, y
}

// SetScale sets the scale applied first, in the curve's intrinsic
// frame.
func (g *Generator) SetScale(sx, sy float64) {
	g.xf.ScaleX, g.xf.ScaleY = sx, sy
}

// SetRot sets the rotation (about the transformed origin) applied
// between scale and translation, and re-derives the cached sin/cos.
func (g *Generator) SetRot(theta float64) {
	g.xf.Rotation = theta
	g.xf.sin, g.xf.cos = math.Sin(theta), math.Cos(theta)
}

// ErrInvalidViewport is returned by SetViewport when the requested
// rectangle is degenerate or inverted.
var ErrInvalidViewport = fmt.Errorf("viewport requires min < max on both axes")

// SetViewport installs a new culling rectangle. Requires minX < maxX
// and minY < maxY; an invalid rectangle is rejected and the previous
// viewport is left in place.
func (g *Generator) SetViewport(minX, maxX, minY, maxY float64) error {
	if !(minX < maxX) || !(minY < maxY) {
		return ErrInvalidViewport
	}
	g.vp = Viewport{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
	return nil
}

// Viewport returns the current culling rectangle.
func (g *Generator) Viewport() Viewport { return g.vp }

// Count reports how many points are currently accumulated, without
// draining them. Used by the REPL to report progress after each
// statement, since Drain is single-use and a REPL session must keep
// accumulating across many statements.
func (g *Generator) Count() int { return len(g.points) }

// ErrNonFinite is returned by Submit in Strict mode when the
// transformed point has a non-finite coordinate.
var ErrNonFinite = fmt.Errorf("point has a non-finite coordinate")

// Submit transforms the raw point (scale, then rotate about the
// transformed origin, then translate) and either appends it to
// storage or discards it as out of viewport. The bool result reports
// whether the point was accepted.
func (g *Generator) Submit(x, y float64) (bool, error) {
	sx, sy := g.xf.ScaleX*x, g.xf.ScaleY*y
	rx := sx*g.xf.cos - sy*g.xf.sin
	ry := sx*g.xf.sin + sy*g.xf.cos
	px, py := rx+g.xf.OriginX, ry+g.xf.OriginY

	if g.Strict && (math.IsNaN(px) || math.IsInf(px, 0) || math.IsNaN(py) || math.IsInf(py, 0)) {
		return false, ErrNonFinite
	}

	if !g.vp.contains(px, py) {
		g.Discarded++
		return false, nil
	}
	g.points = append(g.points, Point{X: px, Y: py})
	return true, nil
}

// ErrAlreadyDrained is returned by Drain when called a second time.
var ErrAlreadyDrained = fmt.Errorf("generator already drained")

// Drain consumes and returns the accumulated points. A Generator may
// not be drained twice.
func (g *Generator) Drain() ([]Point, error) {
	if g.drained {
		return nil, ErrAlreadyDrained
	}
	g.drained = true
	pts := g.points
	g.points = nil
	return pts, nil
}
