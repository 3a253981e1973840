package canvas

import (
	tea "github.com/charmbracelet/bubbletea"

	"lassopick/internal/registry"
	"lassopick/internal/selection"
	"lassopick/internal/ui/views"
)

// GestureState is what the translator needs to know about the controller
type GestureState interface {
	GestureActive() bool
}

// MouseTranslator converts mouse events on the canvas into selection
// commands and remembers the screen cells of the lasso for drawing
type MouseTranslator struct {
	viewport Viewport
	cells    []views.Cell
}

// NewMouseTranslator creates a translator for v
func NewMouseTranslator(v Viewport) *MouseTranslator {
	return &MouseTranslator{viewport: v}
}

// SetViewport replaces the viewport after a resize
func (t *MouseTranslator) SetViewport(v Viewport) {
	t.viewport = v
}

// Viewport returns the current viewport
func (t *MouseTranslator) Viewport() Viewport {
	return t.viewport
}

// LassoCells returns the cells visited by the lasso in progress
func (t *MouseTranslator) LassoCells() []views.Cell {
	return t.cells
}

// Clear forgets the drawn lasso
func (t *MouseTranslator) Clear() {
	t.cells = nil
}

// Translate returns the commands for one mouse event. Press events always
// map to StartGesture when on the canvas; the controller decides whether the
// gesture may begin.
func (t *MouseTranslator) Translate(msg tea.MouseMsg, state GestureState) []selection.Command {
	v := t.viewport
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !v.Contains(msg.X, msg.Y) {
			return nil
		}
		if !state.GestureActive() {
			t.cells = []views.Cell{v.CellAt(msg.X, msg.Y)}
		}
		return []selection.Command{selection.StartGesture{Anchor: v.ScreenToData(msg.X, msg.Y)}}

	case tea.MouseActionMotion:
		if !state.GestureActive() {
			return nil
		}
		x, y := v.Clamp(msg.X, msg.Y)
		t.record(v.CellAt(x, y))
		return []selection.Command{selection.AddGesturePoint{Vertex: v.ScreenToData(x, y)}}

	case tea.MouseActionRelease:
		if !state.GestureActive() {
			return nil
		}
		defer t.Clear()
		if !v.Contains(msg.X, msg.Y) {
			return []selection.Command{selection.CancelGesture{}}
		}
		return []selection.Command{
			selection.AddGesturePoint{Vertex: v.ScreenToData(msg.X, msg.Y)},
			selection.CompleteGesture{},
		}
	}
	return nil
}

func (t *MouseTranslator) record(c views.Cell) {
	if n := len(t.cells); n > 0 && t.cells[n-1] == c {
		return
	}
	t.cells = append(t.cells, c)
}

// Markers places every registry entry on the canvas
func Markers(v Viewport, entries []registry.Entry) []views.Marker {
	markers := make([]views.Marker, 0, len(entries))
	for _, e := range entries {
		c, ok := v.DataToCell(e.Point)
		if !ok {
			continue
		}
		markers = append(markers, views.Marker{Cell: c, Color: e.Color()})
	}
	return markers
}
