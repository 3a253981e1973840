// Package registry holds the fixed, ordered set of candidate points together
// with each point's selection flag.
package registry

import (
	"fmt"

	"lassopick/internal/domain"
)

// Entry is a candidate point and its current selection flag
type Entry struct {
	domain.Point
	Selected bool
}

// Color returns the derived display colour key
func (e Entry) Color() domain.ColorKey {
	return domain.ColorFor(e.Selected)
}

// PreconditionViolation is the panic value for an out-of-range index.
// It is a programming error, never a recoverable runtime condition.
type PreconditionViolation struct {
	Index int
	Len   int
}

func (p PreconditionViolation) Error() string {
	return fmt.Sprintf("registry: index %d out of range [0, %d)", p.Index, p.Len)
}

// Registry owns the selection flags; callers mutate them only through its methods.
// Length and coordinates never change after New.
type Registry struct {
	entries []Entry
	coords  []domain.Point
}

// New creates a registry with every point unselected
func New(points []domain.Point) *Registry {
	r := &Registry{
		entries: make([]Entry, len(points)),
		coords:  make([]domain.Point, len(points)),
	}
	for i, p := range points {
		r.entries[i] = Entry{Point: p}
		r.coords[i] = p
	}
	return r
}

// Len returns the number of points
func (r *Registry) Len() int {
	return len(r.entries)
}

// All returns a snapshot of every entry in registry order
func (r *Registry) All() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// At returns the entry at index i
func (r *Registry) At(i int) Entry {
	r.check(i)
	return r.entries[i]
}

// Color returns the display colour key of the point at index i
func (r *Registry) Color(i int) domain.ColorKey {
	return r.At(i).Color()
}

// Coordinates returns the point coordinates in registry order
func (r *Registry) Coordinates() []domain.Point {
	out := make([]domain.Point, len(r.coords))
	copy(out, r.coords)
	return out
}

// SetSelected sets the flag at index i and reports whether it changed
func (r *Registry) SetSelected(i int, value bool) bool {
	r.check(i)
	if r.entries[i].Selected == value {
		return false
	}
	r.entries[i].Selected = value
	return true
}

// ResetAll clears every flag and returns how many were set
func (r *Registry) ResetAll() int {
	cleared := 0
	for i := range r.entries {
		if r.entries[i].Selected {
			r.entries[i].Selected = false
			cleared++
		}
	}
	return cleared
}

// ExportSelected returns the coordinates of selected points in registry order
func (r *Registry) ExportSelected() []domain.Point {
	selected := make([]domain.Point, 0, r.SelectedCount())
	for _, e := range r.entries {
		if e.Selected {
			selected = append(selected, e.Point)
		}
	}
	return selected
}

// SelectedCount returns the number of selected points
func (r *Registry) SelectedCount() int {
	count := 0
	for _, e := range r.entries {
		if e.Selected {
			count++
		}
	}
	return count
}

func (r *Registry) check(i int) {
	if i < 0 || i >= len(r.entries) {
		panic(PreconditionViolation{Index: i, Len: len(r.entries)})
	}
}
