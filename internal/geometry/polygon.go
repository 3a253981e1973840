// Package geometry provides the polygon membership test used to resolve lasso
// gestures against the candidate points.
//
// Membership is boundary inclusive: a point lying on an edge or a vertex of
// the polygon, within Zeroish, is inside. Degenerate polygons (fewer than
// three vertices, or all vertices on one line) contain nothing, so a click
// without a drag never selects the point under the cursor.
package geometry

import (
	"math"

	"lassopick/internal/domain"
)

// Zeroish is the distance under which a point is considered to lie on an
// edge or a vertex is considered to lie on a line.
var Zeroish = 1e-9

// Area returns the signed shoelace area of the polygon. Counter-clockwise
// vertex order (with y up) gives a positive result.
func Area(poly domain.Polygon) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Degenerate reports whether the polygon encloses no area: it has fewer than
// three vertices or they are all collinear. The net signed area is not used,
// since the lobes of a self-intersecting lasso cancel out.
func Degenerate(poly domain.Polygon) bool {
	if len(poly) < 3 {
		return true
	}
	a := poly[0]
	for i, b := range poly[1:] {
		length := math.Hypot(b.X-a.X, b.Y-a.Y)
		if length <= Zeroish {
			continue
		}
		for _, c := range poly[i+2:] {
			if math.Abs(crossProduct(a, b, c))/length > Zeroish {
				return false
			}
		}
		return true
	}
	return true
}

// Bounds returns the bounding box of pts. ok is false for an empty slice.
func Bounds(pts []domain.Point) (min, max domain.Point, ok bool) {
	if len(pts) == 0 {
		return min, max, false
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max, true
}

// crossProduct returns the z component of (b-a) x (c-a).
func crossProduct(a, b, c domain.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// OnSegment reports whether p lies on the segment a-b within Zeroish.
func OnSegment(p, a, b domain.Point) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length <= Zeroish {
		return math.Hypot(p.X-a.X, p.Y-a.Y) <= Zeroish
	}
	if math.Abs(crossProduct(a, b, p))/length > Zeroish {
		return false
	}
	// projection must fall between the endpoints
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (length * length)
	slack := Zeroish / length
	return t >= -slack && t <= 1+slack
}

// OnBoundary reports whether p lies on any edge of the closed polygon.
func OnBoundary(poly domain.Polygon, p domain.Point) bool {
	n := len(poly)
	for i := 0; i < n; i++ {
		if OnSegment(p, poly[i], poly[(i+1)%n]) {
			return true
		}
	}
	return false
}

// Contains reports whether p is inside poly, boundary included. The polygon
// may be self-intersecting; interior is decided by the even-odd rule.
func Contains(poly domain.Polygon, p domain.Point) bool {
	if Degenerate(poly) {
		return false
	}
	if OnBoundary(poly, p) {
		return true
	}
	return crossings(poly, p)%2 == 1
}

// crossings counts edges crossed by a ray from p towards +x.
func crossings(poly domain.Polygon, p domain.Point) int {
	n := len(poly)
	count := 0
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
		if p.X < x {
			count++
		}
	}
	return count
}

// ContainsAll evaluates Contains for every point, in order.
func ContainsAll(poly domain.Polygon, pts []domain.Point) []bool {
	inside := make([]bool, len(pts))
	if Degenerate(poly) {
		return inside
	}
	min, max, _ := Bounds(poly)
	min.X, min.Y = min.X-Zeroish, min.Y-Zeroish
	max.X, max.Y = max.X+Zeroish, max.Y+Zeroish
	for i, p := range pts {
		if p.X < min.X || p.X > max.X || p.Y < min.Y || p.Y > max.Y {
			continue
		}
		inside[i] = OnBoundary(poly, p) || crossings(poly, p)%2 == 1
	}
	return inside
}
