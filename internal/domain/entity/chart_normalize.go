package entity

import (
	"strconv"
	"strings"
)

// ChartFromRoster synthesizes a minimal fallback chart from a roster
// row, used when a patient has no chart fixture.
func ChartFromRoster(row *PatientSummary) *Chart {
	c := &Chart{
		PatientNumber: row.PatientNumber,
		Demographics: Demographics{
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			Gender:      row.Gender,
			DateOfBirth: row.DOB,
			Age:         parseAge(row.Age),
			WeightKg:    parseWeight(row.Weight),
			Allergies:   row.Allergies,
		},
	}
	return NormalizeChart(c, row)
}

// NormalizeChart fills every optional chart field to its documented
// default, backfilling demographics from the roster row when the
// fixture omits them. It runs once at load time; downstream code may
// assume a fully populated record.
func NormalizeChart(c *Chart, row *PatientSummary) *Chart {
	if c == nil {
		c = &Chart{}
	}
	if c.PatientNumber == "" && row != nil {
		c.PatientNumber = row.PatientNumber
	}

	d := &c.Demographics
	if row != nil {
		if d.FirstName == "" {
			d.FirstName = row.FirstName
		}
		if d.LastName == "" {
			d.LastName = row.LastName
		}
		if d.Gender == "" {
			d.Gender = row.Gender
		}
		if d.DateOfBirth == "" {
			d.DateOfBirth = row.DOB
		}
		if d.Age == nil {
			d.Age = parseAge(row.Age)
		}
		if d.WeightKg == nil {
			d.WeightKg = parseWeight(row.Weight)
		}
		if d.Allergies == "" {
			d.Allergies = row.Allergies
		}
	}
	if d.Allergies == "" {
		d.Allergies = DefaultAllergies
	}
	if d.Precautions == "" {
		d.Precautions = DefaultPrecautions
	}

	if c.Diagnoses == nil {
		c.Diagnoses = []Diagnosis{}
	}
	if c.Orders == nil {
		c.Orders = []Order{}
	}
	if c.VitalsLog == nil {
		c.VitalsLog = []Vital{}
	}
	if c.Assessments == nil {
		c.Assessments = []Assessment{}
	}
	if c.Medications.ActiveOrders == nil {
		c.Medications.ActiveOrders = []MedicationOrder{}
	}
	if c.Medications.MAR == nil {
		c.Medications.MAR = []MAREntry{}
	}
	if c.AssignedNurses == nil {
		c.AssignedNurses = []string{}
	}

	return c
}

// ParseAgeInput parses free-form age input. Empty or non-numeric input
// yields nil rather than zero.
func ParseAgeInput(s string) *int {
	return parseAge(s)
}

// ParseWeightInput parses free-form weight input. Empty or non-numeric
// input yields nil rather than zero.
func ParseWeightInput(s string) *float64 {
	return parseWeight(s)
}

func parseAge(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func parseWeight(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
