// Package canvas maps between terminal cells and data coordinates and turns
// mouse events on the drawing area into selection commands.
package canvas

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"lassopick/internal/domain"
	"lassopick/internal/ui/views"
)

// padFraction is the margin added around a points-only extent on each side
const padFraction = 0.05

// Extent is the data-space rectangle shown on the canvas. Y grows downward,
// the same way image rows do.
type Extent struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal span
func (e Extent) Width() float64 { return e.MaxX - e.MinX }

// Height returns the vertical span
func (e Extent) Height() float64 { return e.MaxY - e.MinY }

// ImageExtent covers a w x h pixel backdrop exactly
func ImageExtent(w, h int) Extent {
	return Extent{MaxX: float64(w), MaxY: float64(h)}
}

// PointsExtent covers all points with a small margin. A zero span on
// either axis is widened to one unit each side.
func PointsExtent(pts []domain.Point) Extent {
	if len(pts) == 0 {
		return Extent{MaxX: 1, MaxY: 1}
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	minX, maxX := padded(floats.Min(xs), floats.Max(xs))
	minY, maxY := padded(floats.Min(ys), floats.Max(ys))
	return Extent{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func padded(lo, hi float64) (float64, float64) {
	span := hi - lo
	if span <= 0 {
		return lo - 1, hi + 1
	}
	pad := span * padFraction
	return lo - pad, hi + pad
}

// Viewport places an Extent on a block of terminal cells
type Viewport struct {
	Extent
	Left, Top  int
	Cols, Rows int
}

// Contains reports whether the screen position is on the canvas
func (v Viewport) Contains(x, y int) bool {
	return x >= v.Left && x < v.Left+v.Cols && y >= v.Top && y < v.Top+v.Rows
}

// Clamp moves a screen position onto the nearest canvas cell
func (v Viewport) Clamp(x, y int) (int, int) {
	return clampInt(x, v.Left, v.Left+v.Cols-1), clampInt(y, v.Top, v.Top+v.Rows-1)
}

// CellAt converts a screen position into a canvas-relative cell
func (v Viewport) CellAt(x, y int) views.Cell {
	return views.Cell{Col: x - v.Left, Row: y - v.Top}
}

// ScreenToData returns the data coordinates of the centre of the cell under
// a screen position
func (v Viewport) ScreenToData(x, y int) domain.Point {
	c := v.CellAt(x, y)
	return domain.Point{
		X: v.MinX + (float64(c.Col)+0.5)/float64(v.Cols)*v.Width(),
		Y: v.MinY + (float64(c.Row)+0.5)/float64(v.Rows)*v.Height(),
	}
}

// DataToCell returns the canvas-relative cell a data point falls in, or
// false when the point lies outside the extent
func (v Viewport) DataToCell(p domain.Point) (views.Cell, bool) {
	if v.Cols <= 0 || v.Rows <= 0 || v.Width() <= 0 || v.Height() <= 0 {
		return views.Cell{}, false
	}
	if p.X < v.MinX || p.X > v.MaxX || p.Y < v.MinY || p.Y > v.MaxY {
		return views.Cell{}, false
	}
	col := int(math.Floor((p.X - v.MinX) / v.Width() * float64(v.Cols)))
	row := int(math.Floor((p.Y - v.MinY) / v.Height() * float64(v.Rows)))
	return views.Cell{Col: min(col, v.Cols-1), Row: min(row, v.Rows-1)}, true
}

// DataToScreen returns the absolute screen position of a data point
func (v Viewport) DataToScreen(p domain.Point) (int, int, bool) {
	c, ok := v.DataToCell(p)
	return c.Col + v.Left, c.Row + v.Top, ok
}

func clampInt(n, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(n, hi))
}
