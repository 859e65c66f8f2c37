package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleAssignmentRoundTrip(t *testing.T) {
	c := &Chart{AssignedNurses: []string{"sn002"}}

	c.ToggleAssignment("sn001")
	assert.True(t, c.IsAssigned("sn001"))
	assert.True(t, c.IsAssigned("sn002"))

	c.ToggleAssignment("sn001")
	assert.False(t, c.IsAssigned("sn001"))
	assert.Equal(t, []string{"sn002"}, c.AssignedNurses, "toggling twice restores the set exactly")
}

func TestToggleAssignmentNeverDuplicates(t *testing.T) {
	c := &Chart{}

	c.ToggleAssignment("sn001")
	c.ToggleAssignment("sn001")
	c.ToggleAssignment("sn001")

	assert.Equal(t, []string{"sn001"}, c.AssignedNurses)
}

func TestPrimaryDiagnosis(t *testing.T) {
	c := &Chart{}
	assert.Equal(t, "N/A", c.PrimaryDiagnosis())

	c.Diagnoses = []Diagnosis{
		{Description: "Pneumonia", Status: "Active"},
		{Description: "Asthma"},
	}
	assert.Equal(t, "Pneumonia", c.PrimaryDiagnosis())
}

func TestSetPrimaryDiagnosisEditsOnlyFirstDescription(t *testing.T) {
	c := &Chart{Diagnoses: []Diagnosis{
		{Description: "Pneumonia", Status: "Active", OnsetDate: "2026-08-24"},
		{Description: "Asthma"},
	}}

	c.SetPrimaryDiagnosis("Bronchiolitis")

	assert.Equal(t, "Bronchiolitis", c.Diagnoses[0].Description)
	assert.Equal(t, "Active", c.Diagnoses[0].Status, "other fields of the first record are untouched")
	assert.Equal(t, "2026-08-24", c.Diagnoses[0].OnsetDate)
	assert.Equal(t, "Asthma", c.Diagnoses[1].Description)
}

func TestSetPrimaryDiagnosisInsertsWhenEmpty(t *testing.T) {
	c := &Chart{}

	c.SetPrimaryDiagnosis("Bronchiolitis")

	assert.Len(t, c.Diagnoses, 1)
	assert.Equal(t, "Bronchiolitis", c.Diagnoses[0].Description)
}

func TestChartFromRoster(t *testing.T) {
	row := &PatientSummary{
		PatientNumber: "100001",
		LastName:      "Lee",
		FirstName:     "Anna",
		Gender:        "F",
		DOB:           "2010-01-01",
		Age:           "14",
		Weight:        "45",
		Allergies:     "Penicillin",
	}

	c := ChartFromRoster(row)

	assert.Equal(t, "100001", c.PatientNumber)
	assert.Equal(t, "Anna", c.Demographics.FirstName)
	assert.Equal(t, "Lee", c.Demographics.LastName)
	if assert.NotNil(t, c.Demographics.Age) {
		assert.Equal(t, 14, *c.Demographics.Age)
	}
	if assert.NotNil(t, c.Demographics.WeightKg) {
		assert.Equal(t, 45.0, *c.Demographics.WeightKg)
	}
	assert.Equal(t, "Penicillin", c.Demographics.Allergies)
	assert.Equal(t, DefaultPrecautions, c.Demographics.Precautions)
	assert.NotNil(t, c.Diagnoses)
	assert.Empty(t, c.Diagnoses)
	assert.NotNil(t, c.Medications.ActiveOrders)
	assert.NotNil(t, c.Medications.MAR)
	assert.NotNil(t, c.AssignedNurses)
}

func TestChartFromRosterFillsDefaults(t *testing.T) {
	row := &PatientSummary{PatientNumber: "100006", LastName: "O'Connor", FirstName: "Liam"}

	c := ChartFromRoster(row)

	assert.Equal(t, DefaultAllergies, c.Demographics.Allergies)
	assert.Equal(t, DefaultPrecautions, c.Demographics.Precautions)
	assert.Nil(t, c.Demographics.Age)
	assert.Nil(t, c.Demographics.WeightKg)
}

func TestNormalizeChartBackfillsFromRoster(t *testing.T) {
	row := &PatientSummary{
		PatientNumber: "100002",
		LastName:      "Ngata",
		FirstName:     "Tama",
		Gender:        "M",
		DOB:           "2018-06-14",
		Age:           "7",
		Weight:        "23.5",
	}
	c := &Chart{Demographics: Demographics{FirstName: "Tama"}}

	NormalizeChart(c, row)

	assert.Equal(t, "100002", c.PatientNumber)
	assert.Equal(t, "Ngata", c.Demographics.LastName)
	assert.Equal(t, "2018-06-14", c.Demographics.DateOfBirth)
	if assert.NotNil(t, c.Demographics.WeightKg) {
		assert.Equal(t, 23.5, *c.Demographics.WeightKg)
	}
	assert.Equal(t, DefaultAllergies, c.Demographics.Allergies)
}

func TestNormalizeChartKeepsFixtureValues(t *testing.T) {
	age := 9
	row := &PatientSummary{PatientNumber: "100004", LastName: "Patel", Age: "12"}
	c := &Chart{
		PatientNumber: "100004",
		Demographics:  Demographics{LastName: "Patel-Smith", Age: &age},
	}

	NormalizeChart(c, row)

	assert.Equal(t, "Patel-Smith", c.Demographics.LastName)
	assert.Equal(t, 9, *c.Demographics.Age)
}

func TestParseAgeInput(t *testing.T) {
	assert.Nil(t, ParseAgeInput(""))
	assert.Nil(t, ParseAgeInput("  "))
	assert.Nil(t, ParseAgeInput("fourteen"))

	got := ParseAgeInput(" 14 ")
	if assert.NotNil(t, got) {
		assert.Equal(t, 14, *got)
	}
}

func TestParseWeightInput(t *testing.T) {
	assert.Nil(t, ParseWeightInput(""))
	assert.Nil(t, ParseWeightInput("heavy"))

	got := ParseWeightInput("23.5")
	if assert.NotNil(t, got) {
		assert.Equal(t, 23.5, *got)
	}
}
