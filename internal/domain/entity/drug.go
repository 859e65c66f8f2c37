package entity

// DefaultStandardDose is shown when a drug monograph has no dosing example.
const DefaultStandardDose = "See institutional guidelines."

// DrugSummary is one row of the drug manual index.
type DrugSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Class string `json:"class"`
}

// Compatibility lists route compatibility notes for a drug.
type Compatibility struct {
	IV    string `json:"iv,omitempty"`
	Oral  string `json:"oral,omitempty"`
	Other string `json:"other,omitempty"`
}

// Drug is a full monograph from the drug reference manual.
// Safe-dose bounds are nil when the monograph does not define them.
type Drug struct {
	ID                       string        `json:"id"`
	Name                     string        `json:"name"`
	Class                    string        `json:"class"`
	Summary                  string        `json:"summary"`
	Indications              []string      `json:"indications"`
	SideEffects              []string      `json:"side_effects"`
	Cautions                 []string      `json:"cautions"`
	Compatibility            Compatibility `json:"compatibility"`
	StandardDose             string        `json:"standard_dose"`
	MinSafeDoseMgPerKgPerDay *float64      `json:"min_safe_dose_mg_per_kg_per_day,omitempty"`
	MaxSafeDoseMgPerKgPerDay *float64      `json:"max_safe_dose_mg_per_kg_per_day,omitempty"`
}

// NormalizeDrug fills missing monograph fields to their defaults,
// backfilling identity fields from the index row when present.
// List sections are never nil after normalization.
func NormalizeDrug(d *Drug, summary *DrugSummary) *Drug {
	if d == nil {
		d = &Drug{}
	}
	if summary != nil {
		if d.ID == "" {
			d.ID = summary.ID
		}
		if d.Name == "" {
			d.Name = summary.Name
		}
		if d.Class == "" {
			d.Class = summary.Class
		}
	}
	if d.Indications == nil {
		d.Indications = []string{}
	}
	if d.SideEffects == nil {
		d.SideEffects = []string{}
	}
	if d.Cautions == nil {
		d.Cautions = []string{}
	}
	if d.StandardDose == "" {
		d.StandardDose = DefaultStandardDose
	}
	return d
}
