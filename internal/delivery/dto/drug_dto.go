package dto

// DrugRow is one entry of the drug manual index.
type DrugRow struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Class string `json:"class"`
}

type CompatibilityResponse struct {
	IV    string `json:"iv,omitempty"`
	Oral  string `json:"oral,omitempty"`
	Other string `json:"other,omitempty"`
}

// DrugDetailResponse is the detail-pane view model for one monograph.
type DrugDetailResponse struct {
	ID                       string                `json:"id"`
	Name                     string                `json:"name"`
	Class                    string                `json:"class"`
	Summary                  string                `json:"summary"`
	Indications              []string              `json:"indications"`
	SideEffects              []string              `json:"side_effects"`
	Cautions                 []string              `json:"cautions"`
	Compatibility            CompatibilityResponse `json:"compatibility"`
	StandardDose             string                `json:"standard_dose"`
	MinSafeDoseMgPerKgPerDay *float64              `json:"min_safe_dose_mg_per_kg_per_day,omitempty"`
	MaxSafeDoseMgPerKgPerDay *float64              `json:"max_safe_dose_mg_per_kg_per_day,omitempty"`
}
