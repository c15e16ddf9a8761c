package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/kezig/logistics-service/internal/events"
	"github.com/kezig/logistics-service/internal/repository"
)

// AuditService persists operation log entries published by the audit
// interceptor. Persistence is strictly best-effort: a write failure is
// reported to the operational log and otherwise swallowed, so the request
// pipeline is never blocked by auditing.
type AuditService struct {
	logs   repository.OperationLogRepository
	logger *zap.Logger
}

// NewAuditService builds the service.
func NewAuditService(logs repository.OperationLogRepository, logger *zap.Logger) *AuditService {
	return &AuditService{logs: logs, logger: logger}
}

// RegisterHandlers subscribes the service to operation events.
func (s *AuditService) RegisterHandlers(dispatcher events.Dispatcher) {
	dispatcher.Subscribe(events.EventOperationObserved, s.handleOperationObserved)
}

func (s *AuditService) handleOperationObserved(ctx context.Context, event events.Event) error {
	if event.Operation == nil {
		return nil
	}
	if err := s.logs.Create(ctx, event.Operation); err != nil {
		s.logger.Error("operation log write failed",
			zap.String("path", event.Operation.Path),
			zap.String("method", event.Operation.Method),
			zap.Error(err),
		)
	}
	return nil
}
