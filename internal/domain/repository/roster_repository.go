package repository

import (
	"digital-hospital-sim/internal/domain/entity"
)

// RosterRepository serves the patient roster loaded from the CSV fixture.
type RosterRepository interface {
	List() []entity.PatientSummary
	FindByPatientNumber(patientNumber string) (*entity.PatientSummary, error)
}
