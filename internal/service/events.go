package service

import (
	"sync"
	"time"

	"assetnorm/internal/domain"
)

// EventType names a stage in the life of a normalization run
type EventType string

const (
	EventRunStarted  EventType = "run_started"
	EventRunFinished EventType = "run_finished"
	EventRunFailed   EventType = "run_failed"
)

// Event reports a run outcome for one input file.
// Summary is set on EventRunFinished and Err on EventRunFailed.
type Event struct {
	Type    EventType
	Input   string
	Time    time.Time
	Summary *domain.Summary
	Err     error
}

// EventBus fans run events out to subscribers without ever blocking the
// publisher. A subscriber whose buffer is full misses the event.
type EventBus struct {
	mu          sync.RWMutex
	subscribers []chan Event
	closed      bool
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe returns a channel receiving every later event. The channel is
// closed by Close.
func (eb *EventBus) Subscribe(buffer int) <-chan Event {
	ch := make(chan Event, buffer)

	eb.mu.Lock()
	defer eb.mu.Unlock()
	if eb.closed {
		close(ch)
		return ch
	}
	eb.subscribers = append(eb.subscribers, ch)
	return ch
}

// Publish stamps the event time if unset and delivers it to every
// subscriber with room. It returns the number of subscribers reached.
func (eb *EventBus) Publish(event Event) int {
	if event.Time.IsZero() {
		event.Time = time.Now()
	}

	eb.mu.RLock()
	defer eb.mu.RUnlock()
	if eb.closed {
		return 0
	}

	delivered := 0
	for _, ch := range eb.subscribers {
		select {
		case ch <- event:
			delivered++
		default:
		}
	}
	return delivered
}

// Close closes every subscriber channel. Later publishes are dropped.
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	if eb.closed {
		return
	}
	eb.closed = true
	for _, ch := range eb.subscribers {
		close(ch)
	}
}
