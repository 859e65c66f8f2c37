package usecase

import (
	"context"
	"testing"
	"time"

	"digital-hospital-sim/config"
	"digital-hospital-sim/internal/delivery/dto"
	"digital-hospital-sim/internal/domain/entity"
	"digital-hospital-sim/internal/service"
	"digital-hospital-sim/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type authFixtures struct {
	users        *MockUserRepository
	sessionStore *MockSessionStore
	jwtService   *jwt.JWTService
	workspaces   *service.WorkspaceManager
}

func newAuthUsecaseForTest() (AuthUsecase, *authFixtures) {
	log := quietLogger()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	accounts := map[string]*entity.User{
		"admin": {Username: "admin", Password: string(hashed), Role: entity.RoleAdmin},
		"sn001": {Username: "sn001", Password: string(hashed), Role: entity.RoleStudent},
	}

	f := &authFixtures{
		users: &MockUserRepository{
			FindByUsernameFunc: func(username string) (*entity.User, error) {
				return accounts[username], nil
			},
		},
		sessionStore: &MockSessionStore{},
		jwtService:   jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", SessionExpiry: time.Hour}),
		workspaces:   service.NewWorkspaceManager(log),
	}
	uc := NewAuthUsecase(log, f.users, f.sessionStore, f.jwtService, f.workspaces)
	return uc, f
}

func TestLoginIssuesValidSessionToken(t *testing.T) {
	uc, f := newAuthUsecaseForTest()

	token, err := uc.Login(context.Background(), &dto.LoginRequest{Username: "sn001", Password: "password"})

	assert.NoError(t, err)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	claims, err := f.jwtService.ValidateToken(token.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "sn001", claims.Username)
	assert.Equal(t, entity.RoleStudent, claims.Role)
	assert.NotEmpty(t, claims.TokenID)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	uc, _ := newAuthUsecaseForTest()

	_, err := uc.Login(context.Background(), &dto.LoginRequest{Username: "sn001", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	uc, _ := newAuthUsecaseForTest()

	_, err := uc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "password"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginResetsWorkspace(t *testing.T) {
	uc, f := newAuthUsecaseForTest()
	ws := f.workspaces.Get("sn001")
	ws.OpenTab(entity.TabKindPatient, "100001")

	_, err := uc.Login(context.Background(), &dto.LoginRequest{Username: "sn001", Password: "password"})

	assert.NoError(t, err)
	assert.Empty(t, ws.Tabs(entity.TabKindPatient), "a fresh session inherits no tabs")
}

func TestLogoutRevokesTokenAndResetsWorkspace(t *testing.T) {
	uc, f := newAuthUsecaseForTest()
	ws := f.workspaces.Get("sn001")
	ws.OpenTab(entity.TabKindPatient, "100001")

	err := uc.Logout(context.Background(), "sn001", "token-123")

	assert.NoError(t, err)
	assert.Equal(t, []string{"token-123"}, f.sessionStore.RevokedTokens)
	assert.Empty(t, ws.Tabs(entity.TabKindPatient))
}

func TestGetCurrentUser(t *testing.T) {
	uc, _ := newAuthUsecaseForTest()

	adminInfo, err := uc.GetCurrentUser(context.Background(), "admin")
	assert.NoError(t, err)
	assert.True(t, adminInfo.CanEdit)

	studentInfo, err := uc.GetCurrentUser(context.Background(), "sn001")
	assert.NoError(t, err)
	assert.False(t, studentInfo.CanEdit)

	_, err = uc.GetCurrentUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
