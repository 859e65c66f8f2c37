package repository

import (
	"digital-hospital-sim/internal/domain/entity"
)

// DrugRepository serves the drug manual index and per-drug monographs.
type DrugRepository interface {
	// Index returns all drug summaries sorted by name.
	Index() []entity.DrugSummary
	// FindByID returns (nil, nil) when no monograph exists for the id.
	FindByID(id string) (*entity.Drug, error)
}
