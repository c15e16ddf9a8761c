package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/kezig/logistics-service/internal/auth"
	"github.com/kezig/logistics-service/internal/domain"
	"github.com/kezig/logistics-service/internal/repository"
	apperrors "github.com/kezig/logistics-service/pkg/util/errorutil"
)

// UserService implements admin-side credential management.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// AddUser creates a credential. The username must be unused and the role must
// be one of the assignable roles.
func (s *UserService) AddUser(ctx context.Context, username, password string, role domain.Role) error {
	if _, ok := domain.ParseRole(string(role)); !ok {
		return apperrors.NewValidationError("invalid role", map[string]any{"role": role})
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return apperrors.NewConflict("username already exists", map[string]any{"username": username})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	return s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
}

// DeleteUser removes a credential. The root account is protected.
func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	if username == domain.RootUsername {
		return apperrors.NewForbidden("the root user cannot be deleted")
	}
	return s.users.Delete(ctx, username)
}

// UpdateRole changes a credential's role.
func (s *UserService) UpdateRole(ctx context.Context, username string, role domain.Role) error {
	if _, ok := domain.ParseRole(string(role)); !ok {
		return apperrors.NewValidationError("invalid role", map[string]any{"role": role})
	}
	if err := s.users.UpdateRole(ctx, username, role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"username": username})
		}
		return err
	}
	return nil
}
