package repository

import (
	"digital-hospital-sim/internal/domain/entity"
)

// ChartRepository serves per-patient chart fixtures.
// FindByPatientNumber returns (nil, nil) when no fixture exists for the
// patient; absence is not an error, it triggers fallback synthesis from
// the roster row.
type ChartRepository interface {
	FindByPatientNumber(patientNumber string) (*entity.Chart, error)
}
