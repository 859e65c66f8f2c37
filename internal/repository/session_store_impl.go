package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"digital-hospital-sim/internal/domain/entity"
	domainRepo "digital-hospital-sim/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const (
	accessTokenKeyPrefix = "access_token:"
	currentUserKeyPrefix = "current_user:"
)

type sessionStore struct {
	client *redis.Client
}

// NewSessionStore backs session state with Redis: token entries for
// revocation checks and the remembered current-user record. The user
// record holds only non-secret fields, never the password hash.
func NewSessionStore(client *redis.Client) domainRepo.SessionStore {
	return &sessionStore{client: client}
}

func (s *sessionStore) StoreToken(ctx context.Context, username, tokenID string, ttl time.Duration) error {
	key := fmt.Sprintf("%s%s:%s", accessTokenKeyPrefix, username, tokenID)
	return s.client.Set(ctx, key, "valid", ttl).Err()
}

func (s *sessionStore) TokenValid(ctx context.Context, username, tokenID string) (bool, error) {
	key := fmt.Sprintf("%s%s:%s", accessTokenKeyPrefix, username, tokenID)
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *sessionStore) RevokeToken(ctx context.Context, username, tokenID string) error {
	key := fmt.Sprintf("%s%s:%s", accessTokenKeyPrefix, username, tokenID)
	return s.client.Del(ctx, key).Err()
}

func (s *sessionStore) SaveCurrentUser(ctx context.Context, user *entity.User) error {
	record := struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}{Username: user.Username, Role: user.Role}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	key := currentUserKeyPrefix + user.Username
	return s.client.Set(ctx, key, data, 0).Err()
}

func (s *sessionStore) ClearCurrentUser(ctx context.Context, username string) error {
	return s.client.Del(ctx, currentUserKeyPrefix+username).Err()
}
