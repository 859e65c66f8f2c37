package converter

import (
	"digital-hospital-sim/internal/delivery/dto"
	"digital-hospital-sim/internal/domain/entity"
)

// PatientSummaryToRow converts a roster entry to a list-view row.
func PatientSummaryToRow(p *entity.PatientSummary) dto.PatientRow {
	return dto.PatientRow{
		PatientNumber: p.PatientNumber,
		LastName:      p.LastName,
		FirstName:     p.FirstName,
		Gender:        p.Gender,
		DOB:           p.DOB,
		Age:           p.Age,
		Weight:        p.Weight,
		Allergies:     p.Allergies,
	}
}

// ChartToBrainRow converts a loaded chart to an assigned-dashboard row.
func ChartToBrainRow(chart *entity.Chart) dto.BrainRow {
	d := chart.Demographics
	return dto.BrainRow{
		PatientNumber: chart.PatientNumber,
		DisplayName:   displayName(d.LastName, d.FirstName),
		Unit:          d.Unit,
		Room:          d.Room,
	}
}
