package usecase

import (
	"context"
	"errors"

	"digital-hospital-sim/internal/converter"
	"digital-hospital-sim/internal/delivery/dto"
	"digital-hospital-sim/internal/domain/entity"
	"digital-hospital-sim/internal/domain/repository"
	"digital-hospital-sim/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrTabNotOpen     = errors.New("no tab is open for this id")
	ErrInvalidTabKind = errors.New("invalid tab kind")
)

// WorkspaceUsecase drives the tab strips. Opening and activating are
// deliberately separate operations: selecting an entity in a list only
// guarantees its tab exists, and the user activates it from the strip.
// The assigned dashboard is the single place that combines both in one
// gesture.
type WorkspaceUsecase interface {
	ListTabs(user *entity.User, kind entity.TabKind) (*dto.TabListResponse, error)
	OpenTab(ctx context.Context, user *entity.User, kind entity.TabKind, entityID string) (*dto.TabResponse, error)
	ActivateTab(ctx context.Context, user *entity.User, kind entity.TabKind, entityID string) (*dto.ActivateTabResponse, error)
	CloseTab(ctx context.Context, user *entity.User, kind entity.TabKind, entityID string) (*dto.SelectionResponse, error)
	OpenAndActivatePatient(ctx context.Context, user *entity.User, patientNumber string) (*dto.ActivateTabResponse, error)
}

type workspaceUsecase struct {
	log        *logrus.Logger
	rosterRepo repository.RosterRepository
	drugRepo   repository.DrugRepository
	workspaces *service.WorkspaceManager
	patients   PatientUsecase
	drugs      DrugUsecase
}

func NewWorkspaceUsecase(
	log *logrus.Logger,
	rosterRepo repository.RosterRepository,
	drugRepo repository.DrugRepository,
	workspaces *service.WorkspaceManager,
	patients PatientUsecase,
	drugs DrugUsecase,
) WorkspaceUsecase {
	return &workspaceUsecase{
		log:        log,
		rosterRepo: rosterRepo,
		drugRepo:   drugRepo,
		workspaces: workspaces,
		patients:   patients,
		drugs:      drugs,
	}
}

func (u *workspaceUsecase) ListTabs(user *entity.User, kind entity.TabKind) (*dto.TabListResponse, error) {
	if !kind.Valid() {
		return nil, ErrInvalidTabKind
	}
	ws := u.workspaces.Get(user.Username)
	return converter.TabsToListResponse(ws.Tabs(kind)), nil
}

// OpenTab ensures a tab exists for the entity without activating it.
// Opening an already-open id is a no-op that leaves position and
// active state untouched.
func (u *workspaceUsecase) OpenTab(ctx context.Context, user *entity.User, kind entity.TabKind, entityID string) (*dto.TabResponse, error) {
	if !kind.Valid() {
		return nil, ErrInvalidTabKind
	}
	if err := u.entityExists(kind, entityID); err != nil {
		return nil, err
	}

	ws := u.workspaces.Get(user.Username)
	tab := ws.OpenTab(kind, entityID)
	return converter.TabToResponse(&tab), nil
}

// ActivateTab selects the tab and renders its detail pane, loading the
// record through the registry on first view. When the backing record
// turns out to be gone, the load path has already removed the tab and
// not-found is propagated.
func (u *workspaceUsecase) ActivateTab(ctx context.Context, user *entity.User, kind entity.TabKind, entityID string) (*dto.ActivateTabResponse, error) {
	if !kind.Valid() {
		return nil, ErrInvalidTabKind
	}

	ws := u.workspaces.Get(user.Username)
	if !ws.ContainsTab(kind, entityID) {
		return nil, ErrTabNotOpen
	}

	resp := &dto.ActivateTabResponse{}
	switch kind {
	case entity.TabKindPatient:
		chart, err := u.patients.GetChart(ctx, user, entityID)
		if err != nil {
			return nil, err
		}
		resp.Patient = chart
	case entity.TabKindDrug:
		drug, err := u.drugs.GetDrug(ctx, user, entityID)
		if err != nil {
			return nil, err
		}
		resp.Drug = drug
	}

	ws.ActivateTab(kind, entityID)
	if active := ws.ActiveTab(kind); active != nil {
		resp.Tab = *converter.TabToResponse(active)
	}
	return resp, nil
}

// CloseTab removes the tab and reports the replacement selection:
// the most recently opened remaining tab when the closed one was
// active, the unchanged active tab otherwise, or the list view when
// nothing remains.
func (u *workspaceUsecase) CloseTab(ctx context.Context, user *entity.User, kind entity.TabKind, entityID string) (*dto.SelectionResponse, error) {
	if !kind.Valid() {
		return nil, ErrInvalidTabKind
	}

	ws := u.workspaces.Get(user.Username)
	if !ws.ContainsTab(kind, entityID) {
		return nil, ErrTabNotOpen
	}

	next, _ := ws.CloseTab(kind, entityID)
	resp := &dto.SelectionResponse{
		Active:   converter.TabToResponse(next),
		ShowList: next == nil,
	}
	return resp, nil
}

// OpenAndActivatePatient is the dashboard gesture: clicking an
// assigned row both opens and activates the patient's tab, since the
// click already implies intent to view.
func (u *workspaceUsecase) OpenAndActivatePatient(ctx context.Context, user *entity.User, patientNumber string) (*dto.ActivateTabResponse, error) {
	if _, err := u.OpenTab(ctx, user, entity.TabKindPatient, patientNumber); err != nil {
		return nil, err
	}
	return u.ActivateTab(ctx, user, entity.TabKindPatient, patientNumber)
}

func (u *workspaceUsecase) entityExists(kind entity.TabKind, entityID string) error {
	switch kind {
	case entity.TabKindPatient:
		row, err := u.rosterRepo.FindByPatientNumber(entityID)
		if err != nil {
			return err
		}
		if row == nil {
			return ErrPatientNotFound
		}
	case entity.TabKindDrug:
		for _, d := range u.drugRepo.Index() {
			if d.ID == entityID {
				return nil
			}
		}
		return ErrDrugNotFound
	}
	return nil
}
