// Package selection implements the lasso selection state machine.
//
// A Controller receives typed commands from whatever input layer is in use
// and applies them to a registry.Registry. Gestures are direct assignments:
// every point enclosed by a completed lasso is set to the current mode's
// target value, so applying the same lasso twice in one mode changes nothing
// the second time.
package selection

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"lassopick/internal/domain"
	"lassopick/internal/geometry"
	"lassopick/internal/registry"
)

// IgnoreReason explains why a gesture command had no effect
type IgnoreReason string

const (
	NotIgnored IgnoreReason = ""
	// LockHeld: a gesture start arrived while the canvas was captured
	LockHeld IgnoreReason = "canvas locked"
	// NoGesture: a gesture update arrived with no gesture in progress
	NoGesture IgnoreReason = "no gesture in progress"
)

// ErrGestureIgnored is matched by Result.Err for ignored gesture commands.
// Handle never returns it as an error.
var ErrGestureIgnored = errors.New("gesture ignored")

// Result describes the effect of one command
type Result struct {
	Redraw      bool
	Ignored     IgnoreReason
	ModeChanged bool
	Enclosed    int
	Changed     int
	ExportPath  string
	Exported    int
}

// Err returns ErrGestureIgnored wrapped with the reason, or nil
func (r Result) Err() error {
	if r.Ignored == NotIgnored {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrGestureIgnored, r.Ignored)
}

// Exporter writes points to the destination a name resolves to
type Exporter interface {
	Export(name string, pts []domain.Point) (string, error)
}

// Publisher receives domain events
type Publisher interface {
	Publish(event domain.DomainEvent)
}

type nopPublisher struct{}

func (nopPublisher) Publish(domain.DomainEvent) {}

// Option configures a Controller
type Option func(*Controller)

// WithPublisher routes domain events to p
func WithPublisher(p Publisher) Option {
	return func(c *Controller) {
		if p != nil {
			c.publisher = p
		}
	}
}

// WithLock shares an externally owned canvas lock
func WithLock(l *CanvasLock) Option {
	return func(c *Controller) {
		if l != nil {
			c.lock = l
		}
	}
}

// WithLogger sets the logger used for gesture, mode and export activity
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// Controller owns the interaction mode and the gesture in progress
type Controller struct {
	registry  *registry.Registry
	exporter  Exporter
	publisher Publisher
	lock      *CanvasLock
	logger    *zap.Logger

	mode domain.Mode
	path domain.Polygon // nil when no gesture is in progress
}

// NewController creates a controller in add mode with no gesture in progress
func NewController(reg *registry.Registry, exporter Exporter, opts ...Option) *Controller {
	c := &Controller{
		registry:  reg,
		exporter:  exporter,
		publisher: nopPublisher{},
		lock:      NewCanvasLock(),
		logger:    zap.NewNop(),
		mode:      domain.ModeAdd,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the current mode
func (c *Controller) Mode() domain.Mode {
	return c.mode
}

// ModeIndicator returns "+" or "-" for the mode label
func (c *Controller) ModeIndicator() string {
	return c.mode.Indicator()
}

// Lock returns the canvas lock the controller honours
func (c *Controller) Lock() *CanvasLock {
	return c.lock
}

// GestureActive reports whether a lasso is between start and completion
func (c *Controller) GestureActive() bool {
	return c.path != nil
}

// GesturePath returns a copy of the vertices recorded for the lasso in progress
func (c *Controller) GesturePath() domain.Polygon {
	if c.path == nil {
		return nil
	}
	out := make(domain.Polygon, len(c.path))
	copy(out, c.path)
	return out
}

// Registry returns the point registry
func (c *Controller) Registry() *registry.Registry {
	return c.registry
}

// Handle processes one command synchronously. Only Export returns errors;
// ignored gesture commands are reported through Result.Ignored.
func (c *Controller) Handle(cmd Command) (Result, error) {
	switch cmd := cmd.(type) {
	case StartGesture:
		return c.StartGesture(cmd.Anchor), nil
	case AddGesturePoint:
		return c.AddGesturePoint(cmd.Vertex), nil
	case CompleteGesture:
		return c.CompleteGesture(cmd.Polygon), nil
	case CancelGesture:
		return c.CancelGesture(), nil
	case SetMode:
		return c.SetMode(cmd.Mode), nil
	case Reset:
		return c.Reset(), nil
	case Export:
		return c.Export(cmd.Name)
	case nil:
		return Result{}, fmt.Errorf("nil command")
	default:
		return Result{}, fmt.Errorf("unknown command %q", cmd.Type())
	}
}

// StartGesture captures the canvas and records the anchor. It is ignored
// while the canvas lock is held, including by a gesture already in progress.
func (c *Controller) StartGesture(anchor domain.Point) Result {
	if !c.lock.TryAcquire(OwnerGesture) {
		return c.ignore(LockHeld)
	}
	c.path = domain.Polygon{anchor}
	c.publisher.Publish(domain.GestureStartedEvent{Anchor: anchor})
	return Result{Redraw: true}
}

// AddGesturePoint appends a vertex to the lasso in progress
func (c *Controller) AddGesturePoint(v domain.Point) Result {
	if c.path == nil {
		return c.ignore(NoGesture)
	}
	if last := c.path[len(c.path)-1]; last == v {
		return Result{}
	}
	c.path = append(c.path, v)
	return Result{Redraw: true}
}

// CompleteGesture releases the canvas and applies the lasso. When poly is
// empty the path recorded since StartGesture is used.
func (c *Controller) CompleteGesture(poly domain.Polygon) Result {
	if c.path == nil {
		return c.ignore(NoGesture)
	}
	if len(poly) == 0 {
		poly = c.path
	}
	c.endGesture()
	return c.ApplyGesture(poly)
}

// CancelGesture releases the canvas and discards the lasso
func (c *Controller) CancelGesture() Result {
	if c.path == nil {
		return c.ignore(NoGesture)
	}
	c.endGesture()
	c.publisher.Publish(domain.GestureCanceledEvent{})
	return Result{Redraw: true}
}

// ApplyGesture assigns the current mode's target value to every point
// inside poly. Points outside are untouched.
func (c *Controller) ApplyGesture(poly domain.Polygon) Result {
	target := c.mode.Target()
	inside := geometry.ContainsAll(poly, c.registry.Coordinates())

	res := Result{Redraw: true}
	for i, in := range inside {
		if !in {
			continue
		}
		res.Enclosed++
		if c.registry.SetSelected(i, target) {
			res.Changed++
		}
	}

	c.logger.Debug("gesture applied",
		zap.Stringer("mode", c.mode),
		zap.Int("vertices", len(poly)),
		zap.Float64("area", geometry.Area(poly)),
		zap.Int("enclosed", res.Enclosed),
		zap.Int("changed", res.Changed))
	c.publisher.Publish(domain.GestureAppliedEvent{
		Mode:     c.mode,
		Vertices: len(poly),
		Enclosed: res.Enclosed,
		Changed:  res.Changed,
		Selected: c.registry.SelectedCount(),
	})
	return res
}

// SetMode switches mode. Re-selecting the active mode only re-confirms the label.
func (c *Controller) SetMode(m domain.Mode) Result {
	prev := c.mode
	c.mode = m
	c.logger.Info("mode set", zap.Stringer("mode", m), zap.Stringer("previous", prev))
	c.publisher.Publish(domain.ModeChangedEvent{Mode: m, Previous: prev})
	return Result{Redraw: true, ModeChanged: prev != m}
}

// Reset clears every selection and returns to add mode. A gesture in
// progress is left alone and will apply in add mode.
func (c *Controller) Reset() Result {
	prev := c.mode
	cleared := c.registry.ResetAll()
	c.mode = domain.ModeAdd
	c.logger.Info("selection reset", zap.Int("cleared", cleared))
	c.publisher.Publish(domain.SelectionResetEvent{Cleared: cleared})
	return Result{Redraw: true, ModeChanged: prev != c.mode, Changed: cleared}
}

// Export writes the selected points through the exporter. Failures are
// returned to the caller; the session state is unaffected either way.
func (c *Controller) Export(name string) (Result, error) {
	if c.exporter == nil {
		err := fmt.Errorf("no exporter configured")
		c.publisher.Publish(domain.ExportFailedEvent{Name: name, Error: err})
		return Result{}, err
	}

	pts := c.registry.ExportSelected()
	path, err := c.exporter.Export(name, pts)
	if err != nil {
		c.logger.Warn("export failed", zap.String("name", name), zap.Error(err))
		c.publisher.Publish(domain.ExportFailedEvent{Name: name, Error: err})
		return Result{ExportPath: path}, err
	}

	c.logger.Info("exported selection", zap.String("path", path), zap.Int("count", len(pts)))
	c.publisher.Publish(domain.ExportCompletedEvent{Path: path, Count: len(pts)})
	return Result{ExportPath: path, Exported: len(pts)}, nil
}

func (c *Controller) endGesture() {
	c.path = nil
	c.lock.Release(OwnerGesture)
}

func (c *Controller) ignore(reason IgnoreReason) Result {
	c.logger.Warn("gesture command ignored", zap.String("reason", string(reason)))
	c.publisher.Publish(domain.GestureIgnoredEvent{Reason: string(reason)})
	return Result{Ignored: reason}
}
