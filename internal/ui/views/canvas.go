package views

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lassopick/internal/domain"
)

// Cell addresses one character cell of the canvas
type Cell struct {
	Col int
	Row int
}

// Marker is a point drawn in a cell
type Marker struct {
	Cell
	Color domain.ColorKey
}

// CanvasState contains everything needed to draw the canvas
type CanvasState struct {
	Cols    int
	Rows    int
	Shades  *image.Gray // one gray level per cell; nil draws no backdrop
	Markers []Marker
	Lasso   []Cell // vertices of the lasso in progress, in drawing order
}

type cellKind int

const (
	cellEmpty cellKind = iota
	cellLasso
	cellUnselected
	cellSelected
)

// CanvasRenderer draws the point canvas
type CanvasRenderer struct {
	styles     *Styles
	marker     string
	lassoGlyph string
}

// NewCanvasRenderer creates a renderer drawing points with marker
func NewCanvasRenderer(styles *Styles, marker string) *CanvasRenderer {
	if marker == "" {
		marker = "■"
	}
	return &CanvasRenderer{styles: styles, marker: marker, lassoGlyph: "·"}
}

// Render returns the canvas as Rows newline-separated lines
func (r *CanvasRenderer) Render(s CanvasState) string {
	if s.Cols <= 0 || s.Rows <= 0 {
		return ""
	}

	grid := make([][]cellKind, s.Rows)
	for row := range grid {
		grid[row] = make([]cellKind, s.Cols)
	}
	inGrid := func(c Cell) bool {
		return c.Col >= 0 && c.Col < s.Cols && c.Row >= 0 && c.Row < s.Rows
	}

	for _, c := range LassoCells(s.Lasso) {
		if inGrid(c) {
			grid[c.Row][c.Col] = cellLasso
		}
	}
	// a selected marker wins over an unselected one sharing its cell
	for _, m := range s.Markers {
		if !inGrid(m.Cell) {
			continue
		}
		kind := cellUnselected
		if m.Color == domain.ColorSelected {
			kind = cellSelected
		}
		if kind > grid[m.Row][m.Col] {
			grid[m.Row][m.Col] = kind
		}
	}

	var out strings.Builder
	for row := 0; row < s.Rows; row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		r.renderRow(&out, grid[row], row, s.Shades)
	}
	return out.String()
}

// renderRow emits runs of identically styled cells as one styled string
func (r *CanvasRenderer) renderRow(out *strings.Builder, kinds []cellKind, row int, shades *image.Gray) {
	var run strings.Builder
	var runStyle lipgloss.Style
	runKey := ""

	flush := func() {
		if run.Len() > 0 {
			out.WriteString(runStyle.Render(run.String()))
			run.Reset()
		}
	}

	for col, kind := range kinds {
		style, glyph, key := r.cellStyle(kind)
		if shades != nil && image.Pt(col, row).In(shades.Bounds()) {
			bg := GrayColor(shades.GrayAt(col, row).Y)
			style = style.Background(bg)
			key += "/" + string(bg)
		}
		if key != runKey {
			flush()
			runStyle, runKey = style, key
		}
		run.WriteString(glyph)
	}
	flush()
}

func (r *CanvasRenderer) cellStyle(kind cellKind) (lipgloss.Style, string, string) {
	switch kind {
	case cellSelected:
		return r.styles.Selected, r.marker, "s"
	case cellUnselected:
		return r.styles.Unselected, r.marker, "u"
	case cellLasso:
		return r.styles.Lasso, r.lassoGlyph, "l"
	default:
		return lipgloss.NewStyle(), " ", "e"
	}
}

// LassoCells joins consecutive lasso vertices with straight cell lines.
// The closing edge is not drawn until the lasso completes.
func LassoCells(vertices []Cell) []Cell {
	if len(vertices) == 0 {
		return nil
	}
	cells := []Cell{vertices[0]}
	for i := 1; i < len(vertices); i++ {
		line := lineCells(vertices[i-1], vertices[i])
		cells = append(cells, line[1:]...)
	}
	return cells
}

// lineCells rasterizes a-b with Bresenham's algorithm, endpoints included
func lineCells(a, b Cell) []Cell {
	dx := abs(b.Col - a.Col)
	dy := -abs(b.Row - a.Row)
	sx, sy := 1, 1
	if a.Col > b.Col {
		sx = -1
	}
	if a.Row > b.Row {
		sy = -1
	}

	cells := []Cell{a}
	err := dx + dy
	c := a
	for c != b {
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			c.Col += sx
		}
		if e2 <= dx {
			err += dx
			c.Row += sy
		}
		cells = append(cells, c)
	}
	return cells
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
