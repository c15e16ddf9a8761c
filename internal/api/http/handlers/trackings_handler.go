package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kezig/logistics-service/internal/api/dto"
	"github.com/kezig/logistics-service/internal/service"
)

// TrackingsHandler exposes tracking record endpoints.
type TrackingsHandler struct {
	trackings *service.TrackingService
}

// NewTrackingsHandler constructs handler.
func NewTrackingsHandler(trackingService *service.TrackingService) *TrackingsHandler {
	return &TrackingsHandler{trackings: trackingService}
}

// Create handles POST /admin_trackings/.
func (h *TrackingsHandler) Create(c *fiber.Ctx) error {
	var req dto.TrackingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	id, created, err := h.trackings.Create(c.Context(), req.ToDomain())
	if err != nil {
		return err
	}
	if !created {
		return c.JSON(fiber.Map{
			"message":     "tracking record already exists",
			"tracking_id": id,
		})
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":     "tracking record created",
		"tracking_id": id,
	})
}

// ListByWaybill handles GET /admin_trackings/:waybill_number.
func (h *TrackingsHandler) ListByWaybill(c *fiber.Ctx) error {
	trackings, err := h.trackings.ListByWaybill(c.Context(), c.Params("waybill_number"))
	if err != nil {
		return err
	}

	out := make([]dto.TrackingResponse, 0, len(trackings))
	for _, t := range trackings {
		out = append(out, dto.FromDomainTracking(t))
	}
	return c.JSON(out)
}

// Update handles PUT /admin_trackings/:tracking_id.
func (h *TrackingsHandler) Update(c *fiber.Ctx) error {
	var req dto.TrackingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	tracking := req.ToDomain()
	tracking.ID = c.Params("tracking_id")

	if err := h.trackings.Update(c.Context(), tracking); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":     "tracking record updated",
		"tracking_id": tracking.ID,
	})
}

// Delete handles DELETE /admin_trackings/:tracking_id.
func (h *TrackingsHandler) Delete(c *fiber.Ctx) error {
	trackingID := c.Params("tracking_id")

	if err := h.trackings.Delete(c.Context(), trackingID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":     "tracking record deleted",
		"tracking_id": trackingID,
	})
}
