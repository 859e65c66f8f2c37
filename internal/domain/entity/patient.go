package entity

// Default values applied when a chart source omits optional fields.
const (
	DefaultAllergies   = "No Known Allergies"
	DefaultPrecautions = "None documented"
)

// PatientSummary is one row of the patient roster CSV.
// Age and Weight stay as raw roster strings; typed parsing happens when
// a chart is synthesized from the row.
type PatientSummary struct {
	PatientNumber string `json:"patient_number"`
	LastName      string `json:"last_name"`
	FirstName     string `json:"first_name"`
	Gender        string `json:"gender"`
	DOB           string `json:"dob"`
	Age           string `json:"age"`
	Weight        string `json:"weight"`
	Allergies     string `json:"allergies"`
}

// Demographics holds the banner-level patient data of a chart.
// Age and WeightKg are nil when the source value is absent or unparseable.
type Demographics struct {
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Gender      string   `json:"gender"`
	DateOfBirth string   `json:"date_of_birth"`
	Age         *int     `json:"age"`
	WeightKg    *float64 `json:"weight_kg"`
	Allergies   string   `json:"allergies"`
	Unit        string   `json:"unit"`
	Room        string   `json:"room"`
	Precautions string   `json:"precautions"`
}

// Diagnosis is one entry of a chart's ordered diagnosis list.
// The first entry is the primary diagnosis.
type Diagnosis struct {
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
	OnsetDate   string `json:"onset_date,omitempty"`
}

// Order is a provider order on a chart.
type Order struct {
	Category  string `json:"category,omitempty"`
	Text      string `json:"text"`
	Status    string `json:"status,omitempty"`
	OrderedAt string `json:"ordered_at,omitempty"`
}

// Vital is one flowsheet entry.
type Vital struct {
	RecordedAt string `json:"recorded_at"`
	Temp       string `json:"temp,omitempty"`
	HeartRate  string `json:"heart_rate,omitempty"`
	RespRate   string `json:"resp_rate,omitempty"`
	BP         string `json:"bp,omitempty"`
	SpO2       string `json:"spo2,omitempty"`
}

// Assessment is a free-text nursing assessment note.
type Assessment struct {
	RecordedAt string `json:"recorded_at"`
	System     string `json:"system,omitempty"`
	Note       string `json:"note"`
}

// MedicationOrder is an active medication order on a chart.
type MedicationOrder struct {
	Drug      string `json:"drug"`
	Dose      string `json:"dose,omitempty"`
	Route     string `json:"route,omitempty"`
	Frequency string `json:"frequency,omitempty"`
}

// MAREntry is one administration on the Medication Administration Record.
type MAREntry struct {
	Drug    string `json:"drug"`
	Dose    string `json:"dose,omitempty"`
	Route   string `json:"route,omitempty"`
	GivenAt string `json:"given_at"`
	GivenBy string `json:"given_by,omitempty"`
}

// Medications groups a chart's active orders and its MAR.
type Medications struct {
	ActiveOrders []MedicationOrder `json:"active_orders"`
	MAR          []MAREntry        `json:"mar"`
}

// Chart is the full clinical record for one patient. Charts are built
// either from a per-patient JSON fixture or synthesized from a roster
// row when no fixture exists, and are normalized to completeness at
// load time so downstream code never default-fills.
type Chart struct {
	PatientNumber  string       `json:"patient_number"`
	Demographics   Demographics `json:"demographics"`
	Diagnoses      []Diagnosis  `json:"diagnoses"`
	Orders         []Order      `json:"orders"`
	VitalsLog      []Vital      `json:"vitals_log"`
	Assessments    []Assessment `json:"assessments"`
	Medications    Medications  `json:"medications"`
	AssignedNurses []string     `json:"assigned_nurses"`
}

// IsAssigned reports whether the username is in the assigned-nurses set.
func (c *Chart) IsAssigned(username string) bool {
	for _, n := range c.AssignedNurses {
		if n == username {
			return true
		}
	}
	return false
}

// ToggleAssignment adds the username to the assigned-nurses set if
// absent, removes it if present. The set never holds duplicates, so
// toggling twice restores the original membership exactly.
func (c *Chart) ToggleAssignment(username string) {
	for i, n := range c.AssignedNurses {
		if n == username {
			c.AssignedNurses = append(c.AssignedNurses[:i], c.AssignedNurses[i+1:]...)
			return
		}
	}
	c.AssignedNurses = append(c.AssignedNurses, username)
}

// PrimaryDiagnosis returns the description of the first diagnosis,
// or "N/A" when the chart has none.
func (c *Chart) PrimaryDiagnosis() string {
	if len(c.Diagnoses) == 0 || c.Diagnoses[0].Description == "" {
		return "N/A"
	}
	return c.Diagnoses[0].Description
}

// SetPrimaryDiagnosis overwrites only the description of the first
// diagnosis, inserting a minimal record when the list is empty.
func (c *Chart) SetPrimaryDiagnosis(description string) {
	if len(c.Diagnoses) == 0 {
		c.Diagnoses = []Diagnosis{{Description: description}}
		return
	}
	c.Diagnoses[0].Description = description
}
