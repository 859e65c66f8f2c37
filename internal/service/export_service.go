package service

import (
	"fmt"
	"strings"

	"digital-hospital-sim/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// ExportService renders a chart as a human-readable structured-text
// document, downloaded as <patientNumber>.txt.
type ExportService interface {
	Filename(chart *entity.Chart) string
	Render(chart *entity.Chart) []byte
}

type exportService struct {
	log *logrus.Logger
}

func NewExportService(log *logrus.Logger) ExportService {
	return &exportService{log: log}
}

func (s *exportService) Filename(chart *entity.Chart) string {
	return chart.PatientNumber + ".txt"
}

func (s *exportService) Render(chart *entity.Chart) []byte {
	var b strings.Builder
	d := chart.Demographics

	fmt.Fprintf(&b, "PATIENT CHART EXPORT\n")
	fmt.Fprintf(&b, "====================\n\n")
	fmt.Fprintf(&b, "Patient #:      %s\n", chart.PatientNumber)
	fmt.Fprintf(&b, "Name:           %s, %s\n", strings.ToUpper(d.LastName), d.FirstName)
	fmt.Fprintf(&b, "Gender:         %s\n", orDash(d.Gender))
	fmt.Fprintf(&b, "Date of Birth:  %s\n", orDash(d.DateOfBirth))
	fmt.Fprintf(&b, "Age:            %s\n", orDash(formatAge(d.Age)))
	fmt.Fprintf(&b, "Weight (kg):    %s\n", orDash(formatWeight(d.WeightKg)))
	fmt.Fprintf(&b, "Unit / Room:    %s / %s\n", orDash(d.Unit), orDash(d.Room))
	fmt.Fprintf(&b, "Allergies:      %s\n", d.Allergies)
	fmt.Fprintf(&b, "Precautions:    %s\n", d.Precautions)

	fmt.Fprintf(&b, "\nDIAGNOSES\n---------\n")
	if len(chart.Diagnoses) == 0 {
		fmt.Fprintf(&b, "None recorded.\n")
	}
	for i, dx := range chart.Diagnoses {
		fmt.Fprintf(&b, "%d. %s", i+1, dx.Description)
		if dx.Status != "" {
			fmt.Fprintf(&b, " (%s)", dx.Status)
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "\nORDERS\n------\n")
	if len(chart.Orders) == 0 {
		fmt.Fprintf(&b, "None recorded.\n")
	}
	for _, o := range chart.Orders {
		if o.Category != "" {
			fmt.Fprintf(&b, "[%s] ", o.Category)
		}
		fmt.Fprintf(&b, "%s", o.Text)
		if o.Status != "" {
			fmt.Fprintf(&b, " — %s", o.Status)
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "\nVITALS LOG\n----------\n")
	if len(chart.VitalsLog) == 0 {
		fmt.Fprintf(&b, "None recorded.\n")
	}
	for _, v := range chart.VitalsLog {
		fmt.Fprintf(&b, "%s  T:%s HR:%s RR:%s BP:%s SpO2:%s\n",
			v.RecordedAt, orDash(v.Temp), orDash(v.HeartRate), orDash(v.RespRate), orDash(v.BP), orDash(v.SpO2))
	}

	fmt.Fprintf(&b, "\nASSESSMENTS\n-----------\n")
	if len(chart.Assessments) == 0 {
		fmt.Fprintf(&b, "None recorded.\n")
	}
	for _, a := range chart.Assessments {
		if a.System != "" {
			fmt.Fprintf(&b, "%s [%s]: %s\n", a.RecordedAt, a.System, a.Note)
		} else {
			fmt.Fprintf(&b, "%s: %s\n", a.RecordedAt, a.Note)
		}
	}

	fmt.Fprintf(&b, "\nACTIVE MEDICATION ORDERS\n------------------------\n")
	if len(chart.Medications.ActiveOrders) == 0 {
		fmt.Fprintf(&b, "None recorded.\n")
	}
	for _, m := range chart.Medications.ActiveOrders {
		fmt.Fprintf(&b, "%s %s %s %s\n", m.Drug, m.Dose, m.Route, m.Frequency)
	}

	fmt.Fprintf(&b, "\nMAR\n---\n")
	if len(chart.Medications.MAR) == 0 {
		fmt.Fprintf(&b, "None recorded.\n")
	}
	for _, m := range chart.Medications.MAR {
		fmt.Fprintf(&b, "%s  %s %s %s", m.GivenAt, m.Drug, m.Dose, m.Route)
		if m.GivenBy != "" {
			fmt.Fprintf(&b, " (by %s)", m.GivenBy)
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "\nASSIGNED NURSES\n---------------\n")
	if len(chart.AssignedNurses) == 0 {
		fmt.Fprintf(&b, "None assigned.\n")
	}
	for _, n := range chart.AssignedNurses {
		fmt.Fprintf(&b, "- %s\n", n)
	}

	s.log.Debugf("Rendered chart export for patient %s", chart.PatientNumber)
	return []byte(b.String())
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func formatAge(age *int) string {
	if age == nil {
		return ""
	}
	return fmt.Sprintf("%d", *age)
}

func formatWeight(w *float64) string {
	if w == nil {
		return ""
	}
	return fmt.Sprintf("%g", *w)
}
