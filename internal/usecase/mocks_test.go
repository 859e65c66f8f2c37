package usecase

import (
	"context"
	"errors"
	"time"

	"digital-hospital-sim/internal/domain/entity"
	"digital-hospital-sim/internal/domain/repository"
)

// Compile-time checks that the mocks satisfy the repository contracts.
var (
	_ repository.UserRepository   = (*MockUserRepository)(nil)
	_ repository.RosterRepository = (*MockRosterRepository)(nil)
	_ repository.ChartRepository  = (*MockChartRepository)(nil)
	_ repository.DrugRepository   = (*MockDrugRepository)(nil)
	_ repository.ChartStore       = (*MockChartStore)(nil)
	_ repository.SessionStore     = (*MockSessionStore)(nil)
)

type MockUserRepository struct {
	FindByUsernameFunc func(username string) (*entity.User, error)
}

func (m *MockUserRepository) FindByUsername(username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(username)
	}
	return nil, nil
}

type MockRosterRepository struct {
	ListFunc                func() []entity.PatientSummary
	FindByPatientNumberFunc func(patientNumber string) (*entity.PatientSummary, error)
}

func (m *MockRosterRepository) List() []entity.PatientSummary {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil
}

func (m *MockRosterRepository) FindByPatientNumber(patientNumber string) (*entity.PatientSummary, error) {
	if m.FindByPatientNumberFunc != nil {
		return m.FindByPatientNumberFunc(patientNumber)
	}
	return nil, nil
}

type MockChartRepository struct {
	FindByPatientNumberFunc func(patientNumber string) (*entity.Chart, error)
	CallCount               int
}

func (m *MockChartRepository) FindByPatientNumber(patientNumber string) (*entity.Chart, error) {
	m.CallCount++
	if m.FindByPatientNumberFunc != nil {
		return m.FindByPatientNumberFunc(patientNumber)
	}
	return nil, nil
}

type MockDrugRepository struct {
	IndexFunc    func() []entity.DrugSummary
	FindByIDFunc func(id string) (*entity.Drug, error)
}

func (m *MockDrugRepository) Index() []entity.DrugSummary {
	if m.IndexFunc != nil {
		return m.IndexFunc()
	}
	return nil
}

func (m *MockDrugRepository) FindByID(id string) (*entity.Drug, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(id)
	}
	return nil, nil
}

type MockChartStore struct {
	SaveFunc  func(ctx context.Context, username string, chart *entity.Chart) error
	LoadFunc  func(ctx context.Context, username string, patientNumber string) (*entity.Chart, error)
	SaveCalls int
}

func (m *MockChartStore) Save(ctx context.Context, username string, chart *entity.Chart) error {
	m.SaveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, username, chart)
	}
	return nil
}

func (m *MockChartStore) Load(ctx context.Context, username string, patientNumber string) (*entity.Chart, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, username, patientNumber)
	}
	return nil, nil
}

type MockSessionStore struct {
	StoreTokenFunc       func(ctx context.Context, username, tokenID string, ttl time.Duration) error
	TokenValidFunc       func(ctx context.Context, username, tokenID string) (bool, error)
	RevokeTokenFunc      func(ctx context.Context, username, tokenID string) error
	SaveCurrentUserFunc  func(ctx context.Context, user *entity.User) error
	ClearCurrentUserFunc func(ctx context.Context, username string) error

	RevokedTokens []string
}

func (m *MockSessionStore) StoreToken(ctx context.Context, username, tokenID string, ttl time.Duration) error {
	if m.StoreTokenFunc != nil {
		return m.StoreTokenFunc(ctx, username, tokenID, ttl)
	}
	return nil
}

func (m *MockSessionStore) TokenValid(ctx context.Context, username, tokenID string) (bool, error) {
	if m.TokenValidFunc != nil {
		return m.TokenValidFunc(ctx, username, tokenID)
	}
	return true, nil
}

func (m *MockSessionStore) RevokeToken(ctx context.Context, username, tokenID string) error {
	m.RevokedTokens = append(m.RevokedTokens, tokenID)
	if m.RevokeTokenFunc != nil {
		return m.RevokeTokenFunc(ctx, username, tokenID)
	}
	return nil
}

func (m *MockSessionStore) SaveCurrentUser(ctx context.Context, user *entity.User) error {
	if m.SaveCurrentUserFunc != nil {
		return m.SaveCurrentUserFunc(ctx, user)
	}
	return nil
}

func (m *MockSessionStore) ClearCurrentUser(ctx context.Context, username string) error {
	if m.ClearCurrentUserFunc != nil {
		return m.ClearCurrentUserFunc(ctx, username)
	}
	return nil
}

var errStoreDown = errors.New("store unavailable")
