package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lassopick/internal/domain"
)

func square(x0, y0, x1, y1 float64) domain.Polygon {
	return domain.Polygon{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestAreaOrientation(t *testing.T) {
	ccw := square(0, 0, 2, 3)
	assert.InDelta(t, 6.0, Area(ccw), 1e-12)

	cw := domain.Polygon{ccw[3], ccw[2], ccw[1], ccw[0]}
	assert.InDelta(t, -6.0, Area(cw), 1e-12)

	assert.Zero(t, Area(domain.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}))
}

func TestContainsInterior(t *testing.T) {
	poly := square(-1, -1, 3, 3)
	assert.True(t, Contains(poly, domain.Point{X: 0, Y: 0}))
	assert.True(t, Contains(poly, domain.Point{X: 2, Y: 0}))
	assert.False(t, Contains(poly, domain.Point{X: 10, Y: 10}))
	assert.False(t, Contains(poly, domain.Point{X: -1.5, Y: 0}))
}

func TestContainsBoundaryIsInclusive(t *testing.T) {
	poly := square(0, 0, 4, 4)

	edges := []domain.Point{
		{X: 2, Y: 0}, // bottom edge
		{X: 4, Y: 2}, // right edge
		{X: 2, Y: 4}, // top edge
		{X: 0, Y: 2}, // left edge
	}
	for _, p := range edges {
		assert.True(t, Contains(poly, p), "edge point %v", p)
	}

	for _, v := range poly {
		assert.True(t, Contains(poly, v), "vertex %v", v)
	}

	// just outside the right edge
	assert.False(t, Contains(poly, domain.Point{X: 4 + 1e-6, Y: 2}))
}

func TestContainsDiagonalEdge(t *testing.T) {
	tri := domain.Polygon{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}}
	assert.True(t, Contains(tri, domain.Point{X: 2, Y: 2}))
	assert.True(t, Contains(tri, domain.Point{X: 1, Y: 1}))
	assert.False(t, Contains(tri, domain.Point{X: 2.1, Y: 2.1}))
}

func TestContainsConcave(t *testing.T) {
	// U shape opening upward
	u := domain.Polygon{
		{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 6}, {X: 4, Y: 6},
		{X: 4, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 6}, {X: 0, Y: 6},
	}
	assert.True(t, Contains(u, domain.Point{X: 1, Y: 5}))
	assert.True(t, Contains(u, domain.Point{X: 5, Y: 5}))
	assert.False(t, Contains(u, domain.Point{X: 3, Y: 4}))
	assert.True(t, Contains(u, domain.Point{X: 3, Y: 1}))
}

func TestDegeneratePolygonContainsNothing(t *testing.T) {
	cases := map[string]domain.Polygon{
		"empty":     nil,
		"single":    {{X: 1, Y: 1}},
		"segment":   {{X: 0, Y: 0}, {X: 2, Y: 0}},
		"collinear": {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
		"repeated":  {{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}},
	}
	for name, poly := range cases {
		t.Run(name, func(t *testing.T) {
			require.True(t, Degenerate(poly))
			assert.False(t, Contains(poly, domain.Point{X: 1, Y: 0}))
			assert.False(t, Contains(poly, domain.Point{X: 1, Y: 1}))
		})
	}
}

func TestFigureEightContainsBothLobes(t *testing.T) {
	// the lobes have opposite orientation, so the net area is zero
	eight := domain.Polygon{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 4}, {X: 2, Y: 4}}
	require.InDelta(t, 0, Area(eight), 1e-12)
	require.False(t, Degenerate(eight))

	lower := domain.Point{X: 1, Y: 0.5}
	upper := domain.Point{X: 1, Y: 3.5}
	assert.True(t, Contains(eight, lower))
	assert.True(t, Contains(eight, upper))
	assert.True(t, Contains(eight, domain.Point{X: 1, Y: 2}), "crossing point is on the boundary")
	assert.False(t, Contains(eight, domain.Point{X: 0.2, Y: 2}))
	assert.False(t, Contains(eight, domain.Point{X: 3, Y: 1}))

	assert.Equal(t, []bool{true, true, false}, ContainsAll(eight, []domain.Point{lower, upper, {X: 0.2, Y: 2}}))
}

func TestRepeatedLeadingVertexIsNotDegenerate(t *testing.T) {
	poly := domain.Polygon{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}}
	assert.False(t, Degenerate(poly))
	assert.True(t, Contains(poly, domain.Point{X: 1.5, Y: 0.5}))
}

func TestContainsAllMatchesContains(t *testing.T) {
	poly := domain.Polygon{{X: 0.5, Y: -1}, {X: 3, Y: -1}, {X: 3, Y: 3}, {X: 0.5, Y: 3}}
	pts := []domain.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 10, Y: 10}, {X: 0.5, Y: 1},
	}

	got := ContainsAll(poly, pts)
	require.Len(t, got, len(pts))
	for i, p := range pts {
		assert.Equal(t, Contains(poly, p), got[i], "point %v", p)
	}
	assert.Equal(t, []bool{false, true, true, false, true}, got)
}

func TestBounds(t *testing.T) {
	_, _, ok := Bounds(nil)
	assert.False(t, ok)

	min, max, ok := Bounds([]domain.Point{{X: 3, Y: -1}, {X: -2, Y: 5}, {X: 0, Y: 0}})
	require.True(t, ok)
	assert.Equal(t, domain.Point{X: -2, Y: -1}, min)
	assert.Equal(t, domain.Point{X: 3, Y: 5}, max)
}
