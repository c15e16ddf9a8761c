package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kezig/logistics-service/internal/domain"
)

// OperationLogRepository appends audit records. The log is write-only from
// the service's point of view.
type OperationLogRepository interface {
	Create(ctx context.Context, entry *domain.OperationLog) error
}

type operationLogRepository struct {
	pool *pgxpool.Pool
}

// NewOperationLogRepository returns a Postgres-backed implementation.
func NewOperationLogRepository(pool *pgxpool.Pool) OperationLogRepository {
	return &operationLogRepository{pool: pool}
}

func (r *operationLogRepository) Create(ctx context.Context, entry *domain.OperationLog) error {
	const query = `
        INSERT INTO operation_logs (username, role, path, method, ip_address, payload)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		entry.Username,
		entry.Role,
		entry.Path,
		entry.Method,
		entry.IPAddress,
		entry.Payload,
	).Scan(&entry.ID, &entry.CreatedAt)
}
