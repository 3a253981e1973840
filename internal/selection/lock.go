package selection

// Owner identifies who holds the canvas lock
type Owner string

const (
	OwnerNone    Owner = ""
	OwnerGesture Owner = "gesture"
	OwnerPrompt  Owner = "prompt"
)

// CanvasLock grants exclusive capture of the drawing surface. A lasso holds
// it from start to completion; the UI holds it while a prompt is open.
type CanvasLock struct {
	owner Owner
}

// NewCanvasLock creates an unlocked canvas lock
func NewCanvasLock() *CanvasLock {
	return &CanvasLock{}
}

// TryAcquire takes the lock for owner and reports success.
// Acquiring a lock already held by the same owner fails too.
func (l *CanvasLock) TryAcquire(owner Owner) bool {
	if owner == OwnerNone || l.owner != OwnerNone {
		return false
	}
	l.owner = owner
	return true
}

// Release frees the lock if owner holds it and reports whether it did
func (l *CanvasLock) Release(owner Owner) bool {
	if owner == OwnerNone || l.owner != owner {
		return false
	}
	l.owner = OwnerNone
	return true
}

// Locked reports whether anyone holds the lock
func (l *CanvasLock) Locked() bool {
	return l.owner != OwnerNone
}

// Owner returns the current holder
func (l *CanvasLock) Owner() Owner {
	return l.owner
}
