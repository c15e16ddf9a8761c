package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kezig/logistics-service/internal/domain"
)

// WaybillRepository defines persistence access for waybills. Deletion is a
// soft delete; updates never touch deleted rows.
type WaybillRepository interface {
	Create(ctx context.Context, waybill *domain.Waybill) error
	Update(ctx context.Context, waybill *domain.Waybill) error
	SoftDelete(ctx context.Context, waybillNumber string) error
	GetByNumber(ctx context.Context, waybillNumber string) (*domain.Waybill, error)
}

type waybillRepository struct {
	pool *pgxpool.Pool
}

// NewWaybillRepository returns a Postgres-backed implementation.
func NewWaybillRepository(pool *pgxpool.Pool) WaybillRepository {
	return &waybillRepository{pool: pool}
}

func (r *waybillRepository) Create(ctx context.Context, w *domain.Waybill) error {
	const query = `
        INSERT INTO waybills (
            waybill_number, sender_name, sender_phone, receiver_name, receiver_phone,
            origin, origin_city, destination, destination_city, status,
            is_insured, insured_amount, value_added_services, image_urls, media_attachments,
            weight, length, width, height, volume,
            goods_type, package_type, description,
            reserved1, reserved2, reserved3
        ) VALUES (
            $1, $2, $3, $4, $5,
            $6, $7, $8, $9, $10,
            $11, $12, $13, $14, $15,
            $16, $17, $18, $19, $20,
            $21, $22, $23,
            $24, $25, $26
        )
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		w.WaybillNumber, w.SenderName, w.SenderPhone, w.ReceiverName, w.ReceiverPhone,
		w.Origin, w.OriginCity, w.Destination, w.DestinationCity, w.Status,
		w.IsInsured, w.InsuredAmount, w.ValueAddedServices, w.ImageURLs, w.MediaAttachments,
		w.Weight, w.Length, w.Width, w.Height, w.Volume,
		w.GoodsType, w.PackageType, w.Description,
		w.Reserved1, w.Reserved2, w.Reserved3,
	).Scan(&w.CreatedAt, &w.UpdatedAt)
}

func (r *waybillRepository) Update(ctx context.Context, w *domain.Waybill) error {
	const query = `
        UPDATE waybills SET
            sender_name=$1, sender_phone=$2, receiver_name=$3, receiver_phone=$4,
            origin=$5, origin_city=$6, destination=$7, destination_city=$8, status=$9,
            is_insured=$10, insured_amount=$11, value_added_services=$12, image_urls=$13,
            media_attachments=$14, weight=$15, length=$16, width=$17, height=$18,
            volume=$19, goods_type=$20, package_type=$21, description=$22,
            reserved1=$23, reserved2=$24, reserved3=$25, updated_at=NOW()
        WHERE waybill_number=$26 AND is_deleted = FALSE`

	cmd, err := r.pool.Exec(ctx, query,
		w.SenderName, w.SenderPhone, w.ReceiverName, w.ReceiverPhone,
		w.Origin, w.OriginCity, w.Destination, w.DestinationCity, w.Status,
		w.IsInsured, w.InsuredAmount, w.ValueAddedServices, w.ImageURLs,
		w.MediaAttachments, w.Weight, w.Length, w.Width, w.Height,
		w.Volume, w.GoodsType, w.PackageType, w.Description,
		w.Reserved1, w.Reserved2, w.Reserved3, w.WaybillNumber,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *waybillRepository) SoftDelete(ctx context.Context, waybillNumber string) error {
	const query = `
        UPDATE waybills SET is_deleted = TRUE, deleted_at = NOW()
        WHERE waybill_number=$1 AND is_deleted = FALSE`

	cmd, err := r.pool.Exec(ctx, query, waybillNumber)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *waybillRepository) GetByNumber(ctx context.Context, waybillNumber string) (*domain.Waybill, error) {
	const query = `
        SELECT waybill_number, sender_name, sender_phone, receiver_name, receiver_phone,
               origin, origin_city, destination, destination_city, status,
               is_insured, insured_amount, value_added_services, image_urls, media_attachments,
               weight, length, width, height, volume,
               goods_type, package_type, description,
               reserved1, reserved2, reserved3,
               is_deleted, deleted_at, created_at, updated_at
        FROM waybills WHERE waybill_number=$1 AND is_deleted = FALSE`

	var w domain.Waybill
	if err := r.pool.QueryRow(ctx, query, waybillNumber).Scan(
		&w.WaybillNumber, &w.SenderName, &w.SenderPhone, &w.ReceiverName, &w.ReceiverPhone,
		&w.Origin, &w.OriginCity, &w.Destination, &w.DestinationCity, &w.Status,
		&w.IsInsured, &w.InsuredAmount, &w.ValueAddedServices, &w.ImageURLs, &w.MediaAttachments,
		&w.Weight, &w.Length, &w.Width, &w.Height, &w.Volume,
		&w.GoodsType, &w.PackageType, &w.Description,
		&w.Reserved1, &w.Reserved2, &w.Reserved3,
		&w.IsDeleted, &w.DeletedAt, &w.CreatedAt, &w.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &w, nil
}
