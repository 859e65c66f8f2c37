package repository

import (
	"encoding/json"
	"os"
	"path/filepath"

	"digital-hospital-sim/internal/domain/entity"
	domainRepo "digital-hospital-sim/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type chartRepository struct {
	dir string
	log *logrus.Logger
}

// NewChartRepository serves chart fixtures from a directory of
// <patientNumber>.json files. Charts are read on demand; the registry
// layer caches them per session.
func NewChartRepository(dir string, log *logrus.Logger) domainRepo.ChartRepository {
	return &chartRepository{dir: dir, log: log}
}

func (r *chartRepository) FindByPatientNumber(patientNumber string) (*entity.Chart, error) {
	// Fixture names come from user-supplied ids; never let them escape the dir.
	name := filepath.Base(patientNumber) + ".json"
	path := filepath.Join(r.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Warnf("Failed to read chart fixture %s: %+v", path, err)
		}
		return nil, nil
	}

	var chart entity.Chart
	if err := json.Unmarshal(data, &chart); err != nil {
		// A malformed fixture degrades to the synthesized fallback chart.
		r.log.Warnf("Failed to parse chart fixture %s: %+v", path, err)
		return nil, nil
	}

	return &chart, nil
}
