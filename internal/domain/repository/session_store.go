package repository

import (
	"context"
	"time"

	"digital-hospital-sim/internal/domain/entity"
)

// SessionStore tracks issued session tokens and the remembered
// current-user record. Token entries expire with the JWT; the
// current-user record holds only non-secret fields and lives under a
// well-known key separate from the credential fixture.
type SessionStore interface {
	StoreToken(ctx context.Context, username, tokenID string, ttl time.Duration) error
	TokenValid(ctx context.Context, username, tokenID string) (bool, error)
	RevokeToken(ctx context.Context, username, tokenID string) error
	SaveCurrentUser(ctx context.Context, user *entity.User) error
	ClearCurrentUser(ctx context.Context, username string) error
}
