package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/kezig/logistics-service/internal/domain"
	"github.com/kezig/logistics-service/internal/repository"
	apperrors "github.com/kezig/logistics-service/pkg/util/errorutil"
)

const trackingIDMaxAttempts = 100

// TrackingService implements tracking record CRUD. Record IDs are derived
// from content so resubmitting the same event is idempotent.
type TrackingService struct {
	trackings repository.TrackingRepository
}

// NewTrackingService builds the service.
func NewTrackingService(trackings repository.TrackingRepository) *TrackingService {
	return &TrackingService{trackings: trackings}
}

// TrackingID hashes status, timestamp and description into a 16-hex-char ID,
// with an optional numeric suffix for collision resolution.
func TrackingID(t *domain.Tracking, suffix int) string {
	base := t.Status
	if t.Timestamp != nil {
		base += t.Timestamp.Format("2006-01-02T15:04:05")
	}
	base += t.Description
	base = strings.Join(strings.Fields(base), "")

	sum := md5.Sum([]byte(base))
	id := hex.EncodeToString(sum[:])[:16]
	if suffix > 0 {
		return fmt.Sprintf("%s_%d", id, suffix)
	}
	return id
}

// Create inserts a tracking record, assigning a content-derived ID. If a
// record with identical status, timestamp and description already exists the
// existing ID is returned and created is false.
func (s *TrackingService) Create(ctx context.Context, t *domain.Tracking) (string, bool, error) {
	if t.WaybillNumber == "" {
		return "", false, apperrors.NewValidationError("waybill_number required", nil)
	}

	for suffix := 0; suffix < trackingIDMaxAttempts; suffix++ {
		id := TrackingID(t, suffix)

		existing, err := s.trackings.GetByID(ctx, id)
		if errors.Is(err, pgx.ErrNoRows) {
			t.ID = id
			if err := s.trackings.Create(ctx, t); err != nil {
				return "", false, err
			}
			return id, true, nil
		}
		if err != nil {
			return "", false, err
		}

		if sameTrackingContent(existing, t) {
			return existing.ID, false, nil
		}
	}

	return "", false, apperrors.NewInternalError(
		errors.New("exhausted tracking id suffixes"))
}

func sameTrackingContent(a, b *domain.Tracking) bool {
	if a.Status != b.Status || a.Description != b.Description {
		return false
	}
	if (a.Timestamp == nil) != (b.Timestamp == nil) {
		return false
	}
	return a.Timestamp == nil || a.Timestamp.Equal(*b.Timestamp)
}

// ListByWaybill returns all tracking records for a waybill in timestamp order.
func (s *TrackingService) ListByWaybill(ctx context.Context, waybillNumber string) ([]domain.Tracking, error) {
	return s.trackings.ListByWaybill(ctx, waybillNumber)
}

// Update overwrites a tracking record by ID.
func (s *TrackingService) Update(ctx context.Context, t *domain.Tracking) error {
	if err := s.trackings.Update(ctx, t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("tracking record", map[string]any{"tracking_id": t.ID})
		}
		return err
	}
	return nil
}

// Delete removes a tracking record by ID.
func (s *TrackingService) Delete(ctx context.Context, id string) error {
	if err := s.trackings.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("tracking record", map[string]any{"tracking_id": id})
		}
		return err
	}
	return nil
}
