/*
File    : curvelang/curvelang_test.go
*/

// Package curvelang contains end-to-end scenario tests driving the
// full reader -> lexer -> parser -> generator -> sink pipeline through
// eval.Run, exercised the same way cmd/curvelang's run subcommand does.
package curvelang

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curvelang/curvelang/eval"
	"github.com/curvelang/curvelang/render"
)

func run(t *testing.T, src string) *render.RecordingSink {
	t.Helper()
	sink := &render.RecordingSink{}
	require.NoError(t, eval.Run(strings.NewReader(src), sink))
	return sink
}

func TestScenarioUnitCircleQuadrantPoints(t *testing.T) {
	sink := run(t, `
		FOR T FROM 0 TO 3 STEP 1 DRAW (COS(T * PI/2), SIN(T * PI/2));
	`)
	require.Len(t, sink.Points, 4)
	expected := [][2]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	for i, pt := range sink.Points {
		assert.InDelta(t, expected[i][0], pt.X, 1e-9)
		assert.InDelta(t, expected[i][1], pt.Y, 1e-9)
	}
}

func TestScenarioScaleThenOrigin(t *testing.T) {
	sink := run(t, `
		SCALE IS (10, 10);
		ORIGIN IS (100, 100);
		FOR T FROM 0 TO 0 STEP 1 DRAW (1, 1);
	`)
	require.Len(t, sink.Points, 1)
	assert.InDelta(t, 110, sink.Points[0].X, 1e-9)
	assert.InDelta(t, 110, sink.Points[0].Y, 1e-9)
}

func TestScenarioRotationAboutOrigin(t *testing.T) {
	sink := run(t, `
		ROT IS 3.14159265358979/2;
		FOR T FROM 0 TO 1 STEP 1 DRAW (T, 0);
	`)
	require.Len(t, sink.Points, 2)
	assert.InDelta(t, 0, sink.Points[0].X, 1e-6)
	assert.InDelta(t, 0, sink.Points[0].Y, 1e-6)
	assert.InDelta(t, 0, sink.Points[1].X, 1e-6)
	assert.InDelta(t, 1, sink.Points[1].Y, 1e-6)
}

func TestScenarioDefDrivenSpiral(t *testing.T) {
	sink := run(t, `
		DEF RADIUS = T;
		FOR T FROM 0 TO 2 STEP 1 DRAW (RADIUS * COS(T), RADIUS * SIN(T));
	`)
	require.Len(t, sink.Points, 3)
	for i, pt := range sink.Points {
		tt := float64(i)
		assert.InDelta(t, tt*math.Cos(tt), pt.X, 1e-9)
		assert.InDelta(t, tt*math.Sin(tt), pt.Y, 1e-9)
	}
}

func TestScenarioDefaultViewportKeepsAllPoints(t *testing.T) {
	sink := &render.RecordingSink{}
	require.NoError(t, eval.Run(strings.NewReader(`
		FOR T FROM -5 TO 5 STEP 1 DRAW (T, 0);
	`), sink))
	require.Len(t, sink.Points, 11)
}

func TestScenarioUndefinedVariableAbortsWholeProgram(t *testing.T) {
	sink := &render.RecordingSink{}
	err := eval.Run(strings.NewReader(`
		ORIGIN IS (1, 2);
		FOR T FROM 0 TO 0 STEP 1 DRAW (NOPE, 0);
	`), sink)
	require.Error(t, err)
	assert.Nil(t, sink.Points)
}

func TestScenarioMultilineCommentsAreIgnored(t *testing.T) {
	sink := run(t, `
		-- set up the frame
		ORIGIN IS (0, 0); // no offset
		FOR T FROM 0 TO 0 STEP 1 DRAW (5, 5); -- single point
	`)
	require.Len(t, sink.Points, 1)
	assert.InDelta(t, 5, sink.Points[0].X, 1e-9)
}
