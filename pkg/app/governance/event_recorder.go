package governance

import (
	domainGovernance "github.com/DoisLONG/GenAIStudio/pkg/domain/governance"
	"github.com/DoisLONG/GenAIStudio/pkg/handlers/http/request"
	"github.com/DoisLONG/GenAIStudio/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=EventRecorder --dir=. --output=./mocks --filename=event_recorder_mock.go --case=underscore --with-expecter
type EventRecorder interface {
	Record(req *request.CreateEventRequest) *domainGovernance.GovernanceEvent
}

type eventRecorder struct {
	logger   *logrus.Logger
	eventLog domainGovernance.EventLog
}

func NewEventRecorder(logger *logrus.Logger, eventLog domainGovernance.EventLog) EventRecorder {
	return &eventRecorder{
		logger:   logger,
		eventLog: eventLog,
	}
}

// Record appends an externally submitted event as-is. This path is a raw
// passthrough: no tenant or config validation is applied, and freeform
// event types are accepted.
func (s *eventRecorder) Record(req *request.CreateEventRequest) *domainGovernance.GovernanceEvent {
	event := domainGovernance.NewGovernanceEvent(
		req.TenantID,
		req.Region,
		req.Language,
		req.EventType,
		req.Payload,
	)
	s.eventLog.Append(event)
	prometheus.GovernanceEventsTotal.WithLabelValues(req.TenantID, req.EventType).Inc()

	s.logger.WithFields(logrus.Fields{
		"tenant_id":  req.TenantID,
		"event_type": req.EventType,
	}).Debug("governance event recorded")

	return event
}
