package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kezig/logistics-service/internal/api/dto"
	"github.com/kezig/logistics-service/internal/service"
)

// WaybillsHandler exposes waybill CRUD endpoints.
type WaybillsHandler struct {
	waybills *service.WaybillService
}

// NewWaybillsHandler constructs handler.
func NewWaybillsHandler(waybillService *service.WaybillService) *WaybillsHandler {
	return &WaybillsHandler{waybills: waybillService}
}

// Create handles POST /admin_waybills/.
func (h *WaybillsHandler) Create(c *fiber.Ctx) error {
	var req dto.WaybillRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.waybills.Create(c.Context(), req.ToDomain()); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":        "waybill created",
		"waybill_number": req.WaybillNumber,
	})
}

// Update handles PUT /admin_waybills/:waybill_number.
func (h *WaybillsHandler) Update(c *fiber.Ctx) error {
	var req dto.WaybillRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	waybill := req.ToDomain()
	waybill.WaybillNumber = c.Params("waybill_number")

	if err := h.waybills.Update(c.Context(), waybill); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":        "waybill updated",
		"waybill_number": waybill.WaybillNumber,
	})
}

// Delete handles DELETE /admin_waybills/:waybill_number.
func (h *WaybillsHandler) Delete(c *fiber.Ctx) error {
	waybillNumber := c.Params("waybill_number")

	if err := h.waybills.Delete(c.Context(), waybillNumber); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":        "waybill deleted",
		"waybill_number": waybillNumber,
	})
}
