package domain

// Point is a 2D coordinate pair in data space
type Point struct {
	X float64
	Y float64
}

// Polygon is a closed path; the last vertex connects back to the first
type Polygon []Point

// Mode is the interpretation applied to points enclosed by the next gesture
type Mode int

const (
	ModeAdd Mode = iota
	ModeRemove
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeAdd:
		return "add"
	case ModeRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Indicator returns the single character shown as the mode label
func (m Mode) Indicator() string {
	if m == ModeRemove {
		return "-"
	}
	return "+"
}

// Target returns the selection flag a gesture assigns in this mode
func (m Mode) Target() bool {
	return m == ModeAdd
}

// ColorKey is the derived display attribute of a point
type ColorKey int

const (
	ColorUnselected ColorKey = iota
	ColorSelected
)

// ColorFor returns the display colour key for a selection flag
func ColorFor(selected bool) ColorKey {
	if selected {
		return ColorSelected
	}
	return ColorUnselected
}
