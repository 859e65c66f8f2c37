package usecase

import (
	"context"
	"errors"

	"digital-hospital-sim/internal/delivery/dto"
	"digital-hospital-sim/internal/domain/repository"
	"digital-hospital-sim/internal/service"
	"digital-hospital-sim/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, username, tokenID string) error
	GetCurrentUser(ctx context.Context, username string) (*dto.UserResponse, error)
}

type authUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	sessionStore repository.SessionStore
	jwtService   *jwt.JWTService
	workspaces   *service.WorkspaceManager
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	sessionStore repository.SessionStore,
	jwtService *jwt.JWTService,
	workspaces *service.WorkspaceManager,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		userRepo:     userRepo,
		sessionStore: sessionStore,
		jwtService:   jwtService,
		workspaces:   workspaces,
	}
}

// Login verifies credentials, issues a session token, and resets the
// user's workspace so a fresh session never inherits tabs or cached
// records from an earlier one.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByUsername(req.Username)
	if err != nil {
		u.log.Warnf("Failed to look up user %s: %+v", req.Username, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, tokenID, err := u.jwtService.GenerateSessionToken(user.Username, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	if err := u.sessionStore.StoreToken(ctx, user.Username, tokenID, u.jwtService.GetSessionExpiry()); err != nil {
		u.log.Warnf("Failed to store session token: %+v", err)
		return nil, err
	}

	if err := u.sessionStore.SaveCurrentUser(ctx, user); err != nil {
		u.log.Warnf("Failed to save current user record: %+v", err)
	}

	u.workspaces.Reset(user.Username)

	return &dto.TokenResponse{
		AccessToken: token,
		ExpiresIn:   int64(u.jwtService.GetSessionExpiry().Seconds()),
	}, nil
}

// Logout revokes the session token, forgets the remembered user, and
// clears the workspace so dependents fall back to their logged-out
// empty state.
func (u *authUsecase) Logout(ctx context.Context, username, tokenID string) error {
	if err := u.sessionStore.RevokeToken(ctx, username, tokenID); err != nil {
		u.log.Warnf("Failed to revoke session token: %+v", err)
		return err
	}

	if err := u.sessionStore.ClearCurrentUser(ctx, username); err != nil {
		u.log.Warnf("Failed to clear current user record: %+v", err)
	}

	u.workspaces.Reset(username)
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, username string) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByUsername(username)
	if err != nil {
		u.log.Warnf("Failed to look up user %s: %+v", username, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &dto.UserResponse{
		Username: user.Username,
		Role:     user.Role,
		CanEdit:  user.CanEdit(),
	}, nil
}
