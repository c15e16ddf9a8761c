package events

import "github.com/kezig/logistics-service/internal/domain"

// EventType identifies the kind of event being published.
type EventType string

const (
	// EventOperationObserved is published once per inbound HTTP request by the
	// audit interceptor.
	EventOperationObserved EventType = "operation.observed"
)

// Event is a published message with its typed payload.
type Event struct {
	Type      EventType
	Operation *domain.OperationLog
}
