package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kezig/logistics-service/internal/api/dto"
	"github.com/kezig/logistics-service/internal/domain"
	"github.com/kezig/logistics-service/internal/service"
)

// UsersHandler exposes admin-only credential management.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Add handles POST /admin/users/add.
func (h *UsersHandler) Add(c *fiber.Ctx) error {
	var req dto.AddUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}
	if req.Role == "" {
		req.Role = string(domain.RoleStaff)
	}

	if err := h.users.AddUser(c.Context(), req.Username, req.Password, domain.Role(req.Role)); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("user %s created", req.Username)})
}

// Delete handles POST /admin/users/delete.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	var req dto.DeleteUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" {
		return fiber.NewError(http.StatusBadRequest, "username required")
	}

	if err := h.users.DeleteUser(c.Context(), req.Username); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("user %s deleted", req.Username)})
}

// UpdateRole handles POST /admin/users/update-role.
func (h *UsersHandler) UpdateRole(c *fiber.Ctx) error {
	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Role == "" {
		return fiber.NewError(http.StatusBadRequest, "username and role required")
	}

	if err := h.users.UpdateRole(c.Context(), req.Username, domain.Role(req.Role)); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{
		Message: fmt.Sprintf("role of user %s updated to %s", req.Username, req.Role),
	})
}
