package worker

import (
	"github.com/kezig/logistics-service/internal/events"
	"github.com/kezig/logistics-service/internal/service"
)

// StartAuditWorker registers audit persistence handlers.
func StartAuditWorker(auditService *service.AuditService, dispatcher events.Dispatcher) {
	if auditService == nil {
		return
	}
	auditService.RegisterHandlers(dispatcher)
}
