package repository

import (
	"os"
	"strings"

	"digital-hospital-sim/internal/domain/entity"
	domainRepo "digital-hospital-sim/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type rosterRepository struct {
	patients []entity.PatientSummary
}

// NewRosterRepository loads the patient roster CSV once at startup.
// A missing or unreadable file leaves the roster empty with a warning;
// the list view simply renders no rows.
func NewRosterRepository(path string, log *logrus.Logger) domainRepo.RosterRepository {
	r := &rosterRepository{}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("Failed to load patient roster %s: %+v", path, err)
		return r
	}

	r.patients = parseRosterCSV(string(data))
	log.Infof("Loaded %d patients from roster", len(r.patients))
	return r
}

func (r *rosterRepository) List() []entity.PatientSummary {
	out := make([]entity.PatientSummary, len(r.patients))
	copy(out, r.patients)
	return out
}

func (r *rosterRepository) FindByPatientNumber(patientNumber string) (*entity.PatientSummary, error) {
	for i := range r.patients {
		if r.patients[i].PatientNumber == patientNumber {
			p := r.patients[i]
			return &p, nil
		}
	}
	return nil, nil
}

// parseRosterCSV parses the roster fixture: header row skipped, fields
// comma-separated with optional surrounding double quotes, blank lines
// skipped. Fields never contain embedded commas.
func parseRosterCSV(text string) []entity.PatientSummary {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) <= 1 {
		return []entity.PatientSummary{}
	}

	out := []entity.PatientSummary{}
	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		cols := strings.Split(line, ",")
		for i, c := range cols {
			cols[i] = strings.Trim(strings.TrimSpace(c), `"`)
		}
		if len(cols) < 8 {
			// Pad short rows so optional trailing columns read as empty.
			for len(cols) < 8 {
				cols = append(cols, "")
			}
		}

		out = append(out, entity.PatientSummary{
			PatientNumber: cols[0],
			LastName:      cols[1],
			FirstName:     cols[2],
			Gender:        cols[3],
			DOB:           cols[4],
			Age:           cols[5],
			Weight:        cols[6],
			Allergies:     cols[7],
		})
	}
	return out
}
