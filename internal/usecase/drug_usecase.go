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

var ErrDrugNotFound = errors.New("drug not found")

type DrugUsecase interface {
	ListDrugs() []dto.DrugRow
	GetDrug(ctx context.Context, user *entity.User, id string) (*dto.DrugDetailResponse, error)
}

type drugUsecase struct {
	log        *logrus.Logger
	drugRepo   repository.DrugRepository
	workspaces *service.WorkspaceManager
}

func NewDrugUsecase(
	log *logrus.Logger,
	drugRepo repository.DrugRepository,
	workspaces *service.WorkspaceManager,
) DrugUsecase {
	return &drugUsecase{
		log:        log,
		drugRepo:   drugRepo,
		workspaces: workspaces,
	}
}

func (u *drugUsecase) ListDrugs() []dto.DrugRow {
	index := u.drugRepo.Index()
	rows := make([]dto.DrugRow, len(index))
	for i := range index {
		rows[i] = converter.DrugSummaryToRow(&index[i])
	}
	return rows
}

// GetDrug returns the rendered monograph, lazily loading it into the
// session registry. A stale id with no backing monograph removes the
// referencing tab before reporting not found.
func (u *drugUsecase) GetDrug(ctx context.Context, user *entity.User, id string) (*dto.DrugDetailResponse, error) {
	ws := u.workspaces.Get(user.Username)

	drug, err := ws.EnsureDrug(id, func() (*entity.Drug, error) {
		return u.drugRepo.FindByID(id)
	})
	if err != nil {
		if errors.Is(err, service.ErrRecordMissing) {
			ws.CloseTab(entity.TabKindDrug, id)
			return nil, ErrDrugNotFound
		}
		u.log.Warnf("Failed to load drug %s: %+v", id, err)
		return nil, err
	}

	return converter.DrugToDetailResponse(drug), nil
}
