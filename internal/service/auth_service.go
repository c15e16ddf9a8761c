package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/kezig/logistics-service/internal/auth"
	"github.com/kezig/logistics-service/internal/domain"
	"github.com/kezig/logistics-service/internal/repository"
	apperrors "github.com/kezig/logistics-service/pkg/util/errorutil"
)

const rootPasswordLength = 64

// AuthService is the session authority. It issues tokens, enforces the
// single-active-session-per-subject invariant through the registry, and
// revokes sessions on logout.
//
// Possession of a cryptographically valid token is necessary but not
// sufficient: Resolve additionally requires the token to be the subject's
// current registry entry, which is how logout and supersession take effect
// before the token's own expiry.
type AuthService struct {
	users      repository.UserRepository
	codec      *auth.TokenCodec
	sessions   *auth.SessionRegistry
	limiter    LoginLimiter
	bcryptCost int
	logger     *zap.Logger
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	Codec    *auth.TokenCodec
	Sessions *auth.SessionRegistry
	Limiter  LoginLimiter
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies, bcryptCost int, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		codec:      deps.Codec,
		sessions:   deps.Sessions,
		limiter:    deps.Limiter,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Login verifies credentials and installs a fresh session, displacing any
// prior session for the same username.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, username)
		if err != nil {
			// The limiter is advisory; losing redis must not lock everyone out.
			s.logger.Warn("login limiter unavailable", zap.Error(err))
		} else if !allowed {
			return "", time.Time{}, apperrors.NewDomainError(
				"TOO_MANY_ATTEMPTS", "too many login attempts", 429, nil)
		}
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewUnauthorized("invalid username or password")
		}
		return "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid username or password")
	}

	token, expiresAt, err := s.codec.Issue(user.Username, user.Role)
	if err != nil {
		return "", time.Time{}, err
	}
	s.sessions.Replace(user.Username, token)
	return token, expiresAt, nil
}

// Refresh exchanges a live session token for a new one with a fresh expiry.
// The old token stops resolving the moment the registry entry is replaced.
func (s *AuthService) Refresh(token string) (string, time.Time, error) {
	identity, err := s.Resolve(token)
	if err != nil {
		return "", time.Time{}, err
	}

	newToken, expiresAt, err := s.codec.Issue(identity.Username, identity.Role)
	if err != nil {
		return "", time.Time{}, err
	}
	s.sessions.Replace(identity.Username, newToken)
	return newToken, expiresAt, nil
}

// Resolve validates a token both cryptographically and against the active
// session registry. Every codec failure kind collapses to unauthorized here.
func (s *AuthService) Resolve(token string) (auth.Identity, error) {
	claims, err := s.codec.Decode(token)
	if err != nil {
		return auth.Identity{}, apperrors.NewUnauthorized("invalid token")
	}
	if !s.sessions.IsCurrent(claims.Subject, token) {
		return auth.Identity{}, apperrors.NewUnauthorized("session revoked or superseded")
	}
	return auth.Identity{Username: claims.Subject, Role: claims.Role}, nil
}

// BestEffortResolve resolves the caller for audit purposes. Any failure,
// including an empty token, yields the anonymous guest identity.
func (s *AuthService) BestEffortResolve(token string) auth.Identity {
	if token == "" {
		return auth.Identity{Username: domain.AnonymousUser, Role: domain.RoleGuest}
	}
	identity, err := s.Resolve(token)
	if err != nil {
		return auth.Identity{Username: domain.AnonymousUser, Role: domain.RoleGuest}
	}
	return identity
}

// Logout removes the subject's session if the presented token is still its
// current one. Undecodable or foreign tokens are ignored.
func (s *AuthService) Logout(token string) {
	claims, err := s.codec.Decode(token)
	if err != nil {
		return
	}
	s.sessions.RemoveIfCurrent(claims.Subject, token)
}

// TokenTTL exposes the configured token lifetime for cookie max-age.
func (s *AuthService) TokenTTL() time.Duration {
	return s.codec.TTL()
}

// EnsureRootCredential creates the root credential with a random password on
// first start, or rotates the existing root password. The plaintext is
// printed once to the operational log and is not recoverable afterwards.
func (s *AuthService) EnsureRootCredential(ctx context.Context) error {
	raw, err := auth.GeneratePassword(rootPasswordLength)
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(raw, s.bcryptCost)
	if err != nil {
		return err
	}

	_, err = s.users.GetByUsername(ctx, domain.RootUsername)
	switch {
	case err == nil:
		if err := s.users.UpdatePasswordHash(ctx, domain.RootUsername, hash); err != nil {
			return err
		}
	case errors.Is(err, pgx.ErrNoRows):
		user := &domain.User{
			Username:     domain.RootUsername,
			PasswordHash: hash,
			Role:         domain.RoleAdmin,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}
	default:
		return err
	}

	s.logger.Warn("root password generated; capture it now, it will not be shown again",
		zap.String("username", domain.RootUsername),
		zap.String("password", raw),
	)
	return nil
}
