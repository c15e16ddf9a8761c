package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kezig/logistics-service/internal/domain"
	"github.com/kezig/logistics-service/internal/events"
)

type fakeOperationLogRepo struct {
	mu      sync.Mutex
	entries []domain.OperationLog
	failing bool
}

func (r *fakeOperationLogRepo) Create(_ context.Context, entry *domain.OperationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return errors.New("database unavailable")
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func TestAuditServicePersistsOperationEvents(t *testing.T) {
	repo := &fakeOperationLogRepo{}
	svc := NewAuditService(repo, zap.NewNop())

	dispatcher := events.NewInMemoryDispatcher()
	svc.RegisterHandlers(dispatcher)

	err := dispatcher.Publish(context.Background(), events.Event{
		Type: events.EventOperationObserved,
		Operation: &domain.OperationLog{
			Username: "alice",
			Role:     domain.RoleStaff,
			Path:     "/admin_waybills/",
			Method:   "POST",
		},
	})
	require.NoError(t, err)
	require.Len(t, repo.entries, 1)
	require.Equal(t, "alice", repo.entries[0].Username)
}

func TestAuditServiceSwallowsWriteFailures(t *testing.T) {
	repo := &fakeOperationLogRepo{failing: true}
	svc := NewAuditService(repo, zap.NewNop())

	dispatcher := events.NewInMemoryDispatcher()
	svc.RegisterHandlers(dispatcher)

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:      events.EventOperationObserved,
		Operation: &domain.OperationLog{Username: domain.AnonymousUser, Role: domain.RoleGuest},
	})
	require.NoError(t, err)
	require.Empty(t, repo.entries)
}
