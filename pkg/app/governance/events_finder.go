package governance

import (
	domainGovernance "github.com/DoisLONG/GenAIStudio/pkg/domain/governance"
)

//go:generate mockery --name=EventsFinder --dir=. --output=./mocks --filename=events_finder_mock.go --case=underscore --with-expecter
type EventsFinder interface {
	Find(limit int) []*domainGovernance.GovernanceEvent
}

type eventsFinder struct {
	eventLog domainGovernance.EventLog
}

func NewEventsFinder(eventLog domainGovernance.EventLog) EventsFinder {
	return &eventsFinder{eventLog: eventLog}
}

// Find returns the newest limit events in append order. It is the data
// source of the operational dashboard.
func (s *eventsFinder) Find(limit int) []*domainGovernance.GovernanceEvent {
	return s.eventLog.Tail(limit)
}
