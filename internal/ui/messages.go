package ui

import "lassopick/internal/domain"

// EventMsg carries a domain event from the event bus into the update loop
type EventMsg struct {
	Event domain.DomainEvent
}

// pagerDoneMsg contains the result of viewing an export in the pager
type pagerDoneMsg struct {
	path string
	err  error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
