package middleware

import (
	"context"
	"net/http"
	"strings"

	"digital-hospital-sim/internal/domain/entity"
	"digital-hospital-sim/internal/domain/repository"
	"digital-hospital-sim/pkg/jwt"
	"digital-hospital-sim/pkg/response"
)

type contextKey string

const (
	UsernameKey contextKey = "username"
	RoleKey     contextKey = "role"
	TokenIDKey  contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService   *jwt.JWTService
	sessionStore repository.SessionStore
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessionStore repository.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:   jwtService,
		sessionStore: sessionStore,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		// A logged-out token is revoked even when its signature still checks out.
		valid, err := m.sessionStore.TokenValid(r.Context(), claims.Username, claims.TokenID)
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !valid {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUsernameFromContext extracts the authenticated username from context
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// GetRoleFromContext extracts the authenticated role from context
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}

// GetTokenIDFromContext extracts the session token id from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// GetUserFromContext rebuilds the session user from context claims.
func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	username, ok := GetUsernameFromContext(ctx)
	if !ok {
		return nil, false
	}
	role, ok := GetRoleFromContext(ctx)
	if !ok {
		return nil, false
	}
	return &entity.User{Username: username, Role: role}, true
}
