package auth

import (
	"context"
	"errors"

	"aesn/internal/models"
	"aesn/internal/repository"
)

// ErrUserNotFound is returned when a token verifies but names a login that no
// longer exists, e.g. a deleted account. Both ErrUserNotFound and
// ErrInvalidToken surface to clients as unauthorized; they stay distinct here
// for observability.
var ErrUserNotFound = errors.New("token subject no longer exists")

// IdentityResolver maps an inbound access token to a persisted user record.
type IdentityResolver struct {
	tokens *TokenService
	users  repository.UserRepository
}

// NewIdentityResolver returns an IdentityResolver backed by the given token
// service and user repository.
func NewIdentityResolver(tokens *TokenService, users repository.UserRepository) *IdentityResolver {
	return &IdentityResolver{tokens: tokens, users: users}
}

// Resolve verifies the token and loads the full user record for its subject.
// Read-only; no side effects.
func (r *IdentityResolver) Resolve(ctx context.Context, token string) (*models.User, error) {
	login, err := r.tokens.Verify(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := r.users.GetByLogin(ctx, login)
	if err != nil {
		return nil, models.NewUpstreamError(err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
