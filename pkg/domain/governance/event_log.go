package governance

//go:generate mockery --name=EventLog --dir=. --output=./mocks --filename=event_log_mock.go --case=underscore --with-expecter
type EventLog interface {
	// Append stores the event at the end of the log. It never fails; the
	// append order is the log's total order.
	Append(event *GovernanceEvent)

	// Tail returns the most recent limit events in append order, oldest of
	// the selected window first. A limit larger than the log returns the
	// whole log; a limit of zero returns an empty slice.
	Tail(limit int) []*GovernanceEvent

	// Len returns the number of stored events.
	Len() int
}
