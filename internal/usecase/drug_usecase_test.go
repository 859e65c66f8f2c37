package usecase

import (
	"context"
	"testing"

	"digital-hospital-sim/internal/domain/entity"
	"digital-hospital-sim/internal/service"

	"github.com/stretchr/testify/assert"
)

func newDrugUsecaseForTest() (DrugUsecase, *MockDrugRepository, *service.WorkspaceManager) {
	log := quietLogger()
	repo := drugRepoMock()
	workspaces := service.NewWorkspaceManager(log)
	return NewDrugUsecase(log, repo, workspaces), repo, workspaces
}

func TestListDrugs(t *testing.T) {
	uc, _, _ := newDrugUsecaseForTest()

	rows := uc.ListDrugs()

	assert.Len(t, rows, 2)
	assert.Equal(t, "morphine", rows[0].ID)
	assert.Equal(t, "Opioid analgesic", rows[0].Class)
}

func TestGetDrugNormalizesMonograph(t *testing.T) {
	uc, _, _ := newDrugUsecaseForTest()

	drug, err := uc.GetDrug(context.Background(), student("sn001"), "morphine")

	assert.NoError(t, err)
	assert.Equal(t, "Morphine", drug.Name)
	assert.Equal(t, "Opioid analgesic", drug.Class, "identity backfilled from index")
	assert.Equal(t, entity.DefaultStandardDose, drug.StandardDose)
	assert.NotNil(t, drug.Indications)
}

func TestGetDrugCachesPerSession(t *testing.T) {
	uc, repo, _ := newDrugUsecaseForTest()
	calls := 0
	inner := repo.FindByIDFunc
	repo.FindByIDFunc = func(id string) (*entity.Drug, error) {
		calls++
		return inner(id)
	}

	_, err := uc.GetDrug(context.Background(), student("sn001"), "morphine")
	assert.NoError(t, err)
	_, err = uc.GetDrug(context.Background(), student("sn001"), "morphine")
	assert.NoError(t, err)

	assert.Equal(t, 1, calls)
}

func TestGetDrugUnknownIDRemovesTab(t *testing.T) {
	uc, _, workspaces := newDrugUsecaseForTest()
	ws := workspaces.Get("sn001")
	ws.OpenTab(entity.TabKindDrug, "discontinued")

	_, err := uc.GetDrug(context.Background(), student("sn001"), "discontinued")

	assert.ErrorIs(t, err, ErrDrugNotFound)
	assert.False(t, ws.ContainsTab(entity.TabKindDrug, "discontinued"))
}
