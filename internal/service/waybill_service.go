package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/kezig/logistics-service/internal/domain"
	"github.com/kezig/logistics-service/internal/repository"
	apperrors "github.com/kezig/logistics-service/pkg/util/errorutil"
)

// WaybillService implements waybill CRUD over the record store.
type WaybillService struct {
	waybills repository.WaybillRepository
}

// NewWaybillService builds the service.
func NewWaybillService(waybills repository.WaybillRepository) *WaybillService {
	return &WaybillService{waybills: waybills}
}

// Create inserts a new waybill keyed by its waybill number.
func (s *WaybillService) Create(ctx context.Context, waybill *domain.Waybill) error {
	if waybill.WaybillNumber == "" {
		return apperrors.NewValidationError("waybill_number required", nil)
	}
	if _, err := s.waybills.GetByNumber(ctx, waybill.WaybillNumber); err == nil {
		return apperrors.NewConflict("waybill already exists",
			map[string]any{"waybill_number": waybill.WaybillNumber})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	return s.waybills.Create(ctx, waybill)
}

// Update overwrites a waybill's fields. Soft-deleted waybills are not found.
func (s *WaybillService) Update(ctx context.Context, waybill *domain.Waybill) error {
	if err := s.waybills.Update(ctx, waybill); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("waybill",
				map[string]any{"waybill_number": waybill.WaybillNumber})
		}
		return err
	}
	return nil
}

// Delete marks a waybill deleted. Already-deleted waybills are not found.
func (s *WaybillService) Delete(ctx context.Context, waybillNumber string) error {
	if err := s.waybills.SoftDelete(ctx, waybillNumber); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("waybill",
				map[string]any{"waybill_number": waybillNumber})
		}
		return err
	}
	return nil
}
