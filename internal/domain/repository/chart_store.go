package repository

import (
	"context"

	"digital-hospital-sim/internal/domain/entity"
)

// ChartStore persists edited charts under a username-scoped key so a
// user's changes survive a reload of their session. Load returns
// (nil, nil) when no saved copy exists.
type ChartStore interface {
	Save(ctx context.Context, username string, chart *entity.Chart) error
	Load(ctx context.Context, username string, patientNumber string) (*entity.Chart, error)
}
