package converter

import (
	"testing"

	"digital-hospital-sim/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func sampleChart() *entity.Chart {
	age := 7
	weight := 23.5
	return entity.NormalizeChart(&entity.Chart{
		PatientNumber: "100002",
		Demographics: entity.Demographics{
			FirstName: "Tama",
			LastName:  "Ngata",
			Gender:    "M",
			Age:       &age,
			WeightKg:  &weight,
			Unit:      "Medical Ward",
			Room:      "12B",
		},
		Diagnoses: []entity.Diagnosis{{Description: "Community-acquired pneumonia"}},
		Orders: []entity.Order{
			{Category: "Medication", Text: "Amoxicillin 250 mg PO q8h"},
			{Category: "Diet", Text: "Regular diet"},
		},
		Medications: entity.Medications{
			MAR: []entity.MAREntry{{Drug: "Amoxicillin", GivenAt: "2026-08-25T06:15:00"}},
		},
		AssignedNurses: []string{"sn001"},
	}, nil)
}

func TestChartToDetailResponseDisplayName(t *testing.T) {
	resp := ChartToDetailResponse(sampleChart(), &entity.User{Username: "sn002", Role: entity.RoleStudent})

	assert.Equal(t, "NGATA, Tama", resp.DisplayName)
	assert.Equal(t, "Community-acquired pneumonia", resp.PrimaryDiagnosis)
	assert.Equal(t, 2, resp.OrderCount)
	assert.Equal(t, 1, resp.MARCount)
}

func TestChartToDetailResponseViewerAffordances(t *testing.T) {
	chart := sampleChart()

	asAssigned := ChartToDetailResponse(chart, &entity.User{Username: "sn001", Role: entity.RoleStudent})
	assert.True(t, asAssigned.IsAssigned)
	assert.False(t, asAssigned.Editable)

	asAdmin := ChartToDetailResponse(chart, &entity.User{Username: "admin", Role: entity.RoleAdmin})
	assert.False(t, asAdmin.IsAssigned)
	assert.True(t, asAdmin.Editable)
}

func TestChartToDetailResponseDoesNotAliasChart(t *testing.T) {
	chart := sampleChart()
	resp := ChartToDetailResponse(chart, &entity.User{Username: "sn001", Role: entity.RoleStudent})

	resp.AssignedNurses[0] = "mutated"

	assert.Equal(t, "sn001", chart.AssignedNurses[0])
}

func TestChartToDetailResponseNilInputs(t *testing.T) {
	assert.Nil(t, ChartToDetailResponse(nil, &entity.User{}))
	assert.Nil(t, ChartToDetailResponse(sampleChart(), nil))
}

func TestChartToBrainRow(t *testing.T) {
	row := ChartToBrainRow(sampleChart())

	assert.Equal(t, "100002", row.PatientNumber)
	assert.Equal(t, "NGATA, Tama", row.DisplayName)
	assert.Equal(t, "Medical Ward", row.Unit)
	assert.Equal(t, "12B", row.Room)
}
