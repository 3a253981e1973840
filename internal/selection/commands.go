package selection

import "lassopick/internal/domain"

// Command is a typed message processed by the Controller in arrival order
type Command interface {
	Type() string
}

// StartGesture begins a lasso at Anchor
type StartGesture struct {
	Anchor domain.Point
}

func (c StartGesture) Type() string { return "start_gesture" }

// AddGesturePoint extends the lasso in progress
type AddGesturePoint struct {
	Vertex domain.Point
}

func (c AddGesturePoint) Type() string { return "add_gesture_point" }

// CompleteGesture closes the lasso. An empty Polygon means "use the path
// accumulated since StartGesture".
type CompleteGesture struct {
	Polygon domain.Polygon
}

func (c CompleteGesture) Type() string { return "complete_gesture" }

// CancelGesture dismisses the lasso in progress without applying it
type CancelGesture struct{}

func (c CancelGesture) Type() string { return "cancel_gesture" }

// SetMode switches between add and remove
type SetMode struct {
	Mode domain.Mode
}

func (c SetMode) Type() string { return "set_mode" }

// Reset clears every selection and returns to add mode
type Reset struct{}

func (c Reset) Type() string { return "reset" }

// Export writes the selected points to the destination Name
type Export struct {
	Name string
}

func (c Export) Type() string { return "export" }
