package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kezig/logistics-service/internal/domain"
)

// TrackingRepository defines persistence access for tracking records.
type TrackingRepository interface {
	Create(ctx context.Context, tracking *domain.Tracking) error
	GetByID(ctx context.Context, id string) (*domain.Tracking, error)
	ListByWaybill(ctx context.Context, waybillNumber string) ([]domain.Tracking, error)
	Update(ctx context.Context, tracking *domain.Tracking) error
	Delete(ctx context.Context, id string) error
}

type trackingRepository struct {
	pool *pgxpool.Pool
}

// NewTrackingRepository returns a Postgres-backed implementation.
func NewTrackingRepository(pool *pgxpool.Pool) TrackingRepository {
	return &trackingRepository{pool: pool}
}

func (r *trackingRepository) Create(ctx context.Context, t *domain.Tracking) error {
	const query = `
        INSERT INTO trackings (
            id, waybill_number, location, status, timestamp, description,
            reserved1, reserved2, reserved3
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.WaybillNumber, t.Location, t.Status, t.Timestamp, t.Description,
		t.Reserved1, t.Reserved2, t.Reserved3,
	)
	return err
}

func (r *trackingRepository) GetByID(ctx context.Context, id string) (*domain.Tracking, error) {
	const query = `
        SELECT id, waybill_number, location, status, timestamp, description,
               reserved1, reserved2, reserved3
        FROM trackings WHERE id=$1`

	var t domain.Tracking
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.WaybillNumber, &t.Location, &t.Status, &t.Timestamp, &t.Description,
		&t.Reserved1, &t.Reserved2, &t.Reserved3,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *trackingRepository) ListByWaybill(ctx context.Context, waybillNumber string) ([]domain.Tracking, error) {
	const query = `
        SELECT id, waybill_number, location, status, timestamp, description,
               reserved1, reserved2, reserved3
        FROM trackings WHERE waybill_number=$1 ORDER BY timestamp ASC`

	rows, err := r.pool.Query(ctx, query, waybillNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trackings []domain.Tracking
	for rows.Next() {
		var t domain.Tracking
		if err := rows.Scan(
			&t.ID, &t.WaybillNumber, &t.Location, &t.Status, &t.Timestamp, &t.Description,
			&t.Reserved1, &t.Reserved2, &t.Reserved3,
		); err != nil {
			return nil, err
		}
		trackings = append(trackings, t)
	}
	return trackings, rows.Err()
}

func (r *trackingRepository) Update(ctx context.Context, t *domain.Tracking) error {
	const query = `
        UPDATE trackings SET
            waybill_number=$1, location=$2, status=$3, timestamp=$4, description=$5,
            reserved1=$6, reserved2=$7, reserved3=$8
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		t.WaybillNumber, t.Location, t.Status, t.Timestamp, t.Description,
		t.Reserved1, t.Reserved2, t.Reserved3, t.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *trackingRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM trackings WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
