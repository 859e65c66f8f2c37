package converter

import (
	"digital-hospital-sim/internal/delivery/dto"
	"digital-hospital-sim/internal/domain/entity"
)

// DrugSummaryToRow converts an index entry to a manual list row.
func DrugSummaryToRow(d *entity.DrugSummary) dto.DrugRow {
	return dto.DrugRow{
		ID:    d.ID,
		Name:  d.Name,
		Class: d.Class,
	}
}

// DrugToDetailResponse converts a monograph to its detail view model.
func DrugToDetailResponse(d *entity.Drug) *dto.DrugDetailResponse {
	if d == nil {
		return nil
	}
	return &dto.DrugDetailResponse{
		ID:          d.ID,
		Name:        d.Name,
		Class:       d.Class,
		Summary:     d.Summary,
		Indications: append([]string{}, d.Indications...),
		SideEffects: append([]string{}, d.SideEffects...),
		Cautions:    append([]string{}, d.Cautions...),
		Compatibility: dto.CompatibilityResponse{
			IV:    d.Compatibility.IV,
			Oral:  d.Compatibility.Oral,
			Other: d.Compatibility.Other,
		},
		StandardDose:             d.StandardDose,
		MinSafeDoseMgPerKgPerDay: d.MinSafeDoseMgPerKgPerDay,
		MaxSafeDoseMgPerKgPerDay: d.MaxSafeDoseMgPerKgPerDay,
	}
}
