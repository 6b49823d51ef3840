package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/gearguard-backend/internal/domain"
	"github.com/heartmarshall/gearguard-backend/pkg/ctxutil"
)

// ValidateToken verifies a bearer token and returns the user ID it was issued for.
// Every verification failure is reported as ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", "error", err)
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// Me returns the authenticated user. A valid token for a user that no longer
// exists is treated as unauthorized.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Me: %w", err)
	}

	return user, nil
}
