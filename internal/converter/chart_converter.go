package converter

import (
	"strings"

	"digital-hospital-sim/internal/delivery/dto"
	"digital-hospital-sim/internal/domain/entity"
)

// ChartToDetailResponse builds the detail-pane view model from a chart
// and the viewing user. It is a pure mapping: the chart is never
// mutated here, and every role- or assignment-dependent affordance is
// derived from the user passed in, not from ambient state.
func ChartToDetailResponse(chart *entity.Chart, user *entity.User) *dto.ChartDetailResponse {
	if chart == nil || user == nil {
		return nil
	}

	d := chart.Demographics

	resp := &dto.ChartDetailResponse{
		PatientNumber: chart.PatientNumber,
		DisplayName:   displayName(d.LastName, d.FirstName),
		Demographics: dto.DemographicsResponse{
			FirstName:   d.FirstName,
			LastName:    d.LastName,
			Gender:      d.Gender,
			DateOfBirth: d.DateOfBirth,
			Age:         d.Age,
			WeightKg:    d.WeightKg,
			Allergies:   d.Allergies,
			Unit:        d.Unit,
			Room:        d.Room,
			Precautions: d.Precautions,
		},
		PrimaryDiagnosis: chart.PrimaryDiagnosis(),
		Diagnoses:        diagnosesToResponse(chart.Diagnoses),
		Orders:           ordersToResponse(chart.Orders),
		OrderCount:       len(chart.Orders),
		VitalsLog:        vitalsToResponse(chart.VitalsLog),
		Assessments:      assessmentsToResponse(chart.Assessments),
		Medications: dto.MedicationsResponse{
			ActiveOrders: medicationOrdersToResponse(chart.Medications.ActiveOrders),
			MAR:          marToResponse(chart.Medications.MAR),
		},
		MARCount:       len(chart.Medications.MAR),
		AssignedNurses: append([]string{}, chart.AssignedNurses...),
		IsAssigned:     chart.IsAssigned(user.Username),
		Editable:       user.CanEdit(),
	}

	return resp
}

func displayName(lastName, firstName string) string {
	return strings.ToUpper(lastName) + ", " + firstName
}

func diagnosesToResponse(in []entity.Diagnosis) []dto.DiagnosisResponse {
	out := make([]dto.DiagnosisResponse, len(in))
	for i, d := range in {
		out[i] = dto.DiagnosisResponse{
			Description: d.Description,
			Status:      d.Status,
			OnsetDate:   d.OnsetDate,
		}
	}
	return out
}

func ordersToResponse(in []entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, len(in))
	for i, o := range in {
		out[i] = dto.OrderResponse{
			Category:  o.Category,
			Text:      o.Text,
			Status:    o.Status,
			OrderedAt: o.OrderedAt,
		}
	}
	return out
}

func vitalsToResponse(in []entity.Vital) []dto.VitalResponse {
	out := make([]dto.VitalResponse, len(in))
	for i, v := range in {
		out[i] = dto.VitalResponse{
			RecordedAt: v.RecordedAt,
			Temp:       v.Temp,
			HeartRate:  v.HeartRate,
			RespRate:   v.RespRate,
			BP:         v.BP,
			SpO2:       v.SpO2,
		}
	}
	return out
}

func assessmentsToResponse(in []entity.Assessment) []dto.AssessmentResponse {
	out := make([]dto.AssessmentResponse, len(in))
	for i, a := range in {
		out[i] = dto.AssessmentResponse{
			RecordedAt: a.RecordedAt,
			System:     a.System,
			Note:       a.Note,
		}
	}
	return out
}

func medicationOrdersToResponse(in []entity.MedicationOrder) []dto.MedicationOrderResponse {
	out := make([]dto.MedicationOrderResponse, len(in))
	for i, m := range in {
		out[i] = dto.MedicationOrderResponse{
			Drug:      m.Drug,
			Dose:      m.Dose,
			Route:     m.Route,
			Frequency: m.Frequency,
		}
	}
	return out
}

func marToResponse(in []entity.MAREntry) []dto.MAREntryResponse {
	out := make([]dto.MAREntryResponse, len(in))
	for i, m := range in {
		out[i] = dto.MAREntryResponse{
			Drug:    m.Drug,
			Dose:    m.Dose,
			Route:   m.Route,
			GivenAt: m.GivenAt,
			GivenBy: m.GivenBy,
		}
	}
	return out
}
