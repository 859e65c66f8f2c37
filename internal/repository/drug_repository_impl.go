package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"digital-hospital-sim/internal/domain/entity"
	domainRepo "digital-hospital-sim/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type drugRepository struct {
	dir   string
	log   *logrus.Logger
	index []entity.DrugSummary
}

// NewDrugRepository loads the drug manual index (drugs.json) once at
// startup, sorted by name with a locale-aware comparison. Monographs
// live beside the index as <id>.json and are read on demand. A missing
// or unreadable index leaves the manual empty with a warning.
func NewDrugRepository(dir string, log *logrus.Logger) domainRepo.DrugRepository {
	r := &drugRepository{dir: dir, log: log}

	path := filepath.Join(dir, "drugs.json")
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("Failed to load drug index %s: %+v", path, err)
		return r
	}

	var index []entity.DrugSummary
	if err := json.Unmarshal(data, &index); err != nil {
		log.Warnf("Failed to parse drug index %s: %+v", path, err)
		return r
	}

	r.index = sortDrugIndex(index)
	log.Infof("Loaded %d drugs from manual index", len(r.index))
	return r
}

func (r *drugRepository) Index() []entity.DrugSummary {
	out := make([]entity.DrugSummary, len(r.index))
	copy(out, r.index)
	return out
}

func (r *drugRepository) FindByID(id string) (*entity.Drug, error) {
	summary := r.findSummary(id)

	name := filepath.Base(id) + ".json"
	path := filepath.Join(r.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Warnf("Failed to read drug monograph %s: %+v", path, err)
		}
		return nil, nil
	}

	var drug entity.Drug
	if err := json.Unmarshal(data, &drug); err != nil {
		r.log.Warnf("Failed to parse drug monograph %s: %+v", path, err)
		return nil, nil
	}

	return entity.NormalizeDrug(&drug, summary), nil
}

func (r *drugRepository) findSummary(id string) *entity.DrugSummary {
	for i := range r.index {
		if r.index[i].ID == id {
			s := r.index[i]
			return &s
		}
	}
	return nil
}

// sortDrugIndex orders summaries by name ascending using an
// English-locale collator, matching case-aware dictionary ordering.
func sortDrugIndex(index []entity.DrugSummary) []entity.DrugSummary {
	c := collate.New(language.English)
	sort.SliceStable(index, func(i, j int) bool {
		return c.CompareString(index[i].Name, index[j].Name) < 0
	})
	return index
}
