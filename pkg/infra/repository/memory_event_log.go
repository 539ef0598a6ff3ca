package repository

import (
	"sync"

	"github.com/DoisLONG/GenAIStudio/pkg/domain/governance"
)

// memoryEventLog is the process-local audit log. Appends are serialized by
// a mutex so that concurrent requests never lose events; reads copy the
// selected window so callers never observe a partially appended entry.
// The log grows for the life of the process, it is cleared only by restart.
type memoryEventLog struct {
	mu     sync.RWMutex
	events []*governance.GovernanceEvent
}

func NewMemoryEventLog() governance.EventLog {
	return &memoryEventLog{}
}

func (l *memoryEventLog) Append(event *governance.GovernanceEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *memoryEventLog) Tail(limit int) []*governance.GovernanceEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if limit <= 0 {
		return []*governance.GovernanceEvent{}
	}
	start := len(l.events) - limit
	if start < 0 {
		start = 0
	}

	window := make([]*governance.GovernanceEvent, len(l.events)-start)
	copy(window, l.events[start:])
	return window
}

func (l *memoryEventLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}
