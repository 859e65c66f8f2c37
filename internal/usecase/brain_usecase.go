package usecase

import (
	"context"

	"digital-hospital-sim/internal/converter"
	"digital-hospital-sim/internal/delivery/dto"
	"digital-hospital-sim/internal/domain/entity"
	"digital-hospital-sim/internal/service"

	"github.com/sirupsen/logrus"
)

// brainEmptyMessage is the explicit empty state for a logged-in user
// with no assignments, distinct from the logged-out state the
// middleware produces.
const brainEmptyMessage = "You are not currently assigned to any patients."

type BrainUsecase interface {
	GetAssigned(ctx context.Context, user *entity.User) (*dto.BrainResponse, error)
}

type brainUsecase struct {
	log        *logrus.Logger
	workspaces *service.WorkspaceManager
}

func NewBrainUsecase(log *logrus.Logger, workspaces *service.WorkspaceManager) BrainUsecase {
	return &brainUsecase{log: log, workspaces: workspaces}
}

// GetAssigned recomputes the dashboard from every chart loaded this
// session, not merely the open tabs, filtered to those assigned to the
// current user. Rows come back ordered by patient number.
func (u *brainUsecase) GetAssigned(ctx context.Context, user *entity.User) (*dto.BrainResponse, error) {
	ws := u.workspaces.Get(user.Username)

	resp := &dto.BrainResponse{Assigned: []dto.BrainRow{}}
	for _, chart := range ws.LoadedCharts() {
		if chart.IsAssigned(user.Username) {
			resp.Assigned = append(resp.Assigned, converter.ChartToBrainRow(chart))
		}
	}

	if len(resp.Assigned) == 0 {
		resp.Message = brainEmptyMessage
	}
	return resp, nil
}
