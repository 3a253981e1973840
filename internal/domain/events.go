package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPointsLoaded    EventType = "PointsLoaded"
	EventGestureStarted  EventType = "GestureStarted"
	EventGestureApplied  EventType = "GestureApplied"
	EventGestureIgnored  EventType = "GestureIgnored"
	EventGestureCanceled EventType = "GestureCanceled"
	EventModeChanged     EventType = "ModeChanged"
	EventSelectionReset  EventType = "SelectionReset"
	EventExportCompleted EventType = "ExportCompleted"
	EventExportFailed    EventType = "ExportFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PointsLoadedEvent is emitted once the candidate point set is known
type PointsLoadedEvent struct {
	Source string
	Count  int
}

func (e PointsLoadedEvent) Type() EventType { return EventPointsLoaded }

// GestureStartedEvent is emitted when a lasso acquires the canvas
type GestureStartedEvent struct {
	Anchor Point
}

func (e GestureStartedEvent) Type() EventType { return EventGestureStarted }

// GestureAppliedEvent is emitted after a completed lasso has been applied
type GestureAppliedEvent struct {
	Mode     Mode
	Vertices int
	Enclosed int // points inside the polygon
	Changed  int // points whose flag actually flipped
	Selected int // selected total afterwards
}

func (e GestureAppliedEvent) Type() EventType { return EventGestureApplied }

// GestureIgnoredEvent is emitted when a gesture command is dropped on purpose
type GestureIgnoredEvent struct {
	Reason string
}

func (e GestureIgnoredEvent) Type() EventType { return EventGestureIgnored }

// GestureCanceledEvent is emitted when the input layer dismisses a lasso
type GestureCanceledEvent struct{}

func (e GestureCanceledEvent) Type() EventType { return EventGestureCanceled }

// ModeChangedEvent is emitted on every mode command, including re-confirmations
type ModeChangedEvent struct {
	Mode     Mode
	Previous Mode
}

func (e ModeChangedEvent) Type() EventType { return EventModeChanged }

// SelectionResetEvent is emitted after a reset
type SelectionResetEvent struct {
	Cleared int
}

func (e SelectionResetEvent) Type() EventType { return EventSelectionReset }

// ExportCompletedEvent is emitted after the selected points were written
type ExportCompletedEvent struct {
	Path  string
	Count int
}

func (e ExportCompletedEvent) Type() EventType { return EventExportCompleted }

// ExportFailedEvent is emitted when an export could not be written
type ExportFailedEvent struct {
	Name  string
	Error error
}

func (e ExportFailedEvent) Type() EventType { return EventExportFailed }
