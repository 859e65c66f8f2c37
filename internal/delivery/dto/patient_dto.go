package dto

// PatientRow is one roster entry as listed in the patient list view.
type PatientRow struct {
	PatientNumber string `json:"patient_number"`
	LastName      string `json:"last_name"`
	FirstName     string `json:"first_name"`
	Gender        string `json:"gender"`
	DOB           string `json:"dob"`
	Age           string `json:"age"`
	Weight        string `json:"weight"`
	Allergies     string `json:"allergies"`
}

// DemographicsResponse mirrors the chart banner fields.
type DemographicsResponse struct {
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

type DiagnosisResponse struct {
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
	OnsetDate   string `json:"onset_date,omitempty"`
}

type OrderResponse struct {
	Category  string `json:"category,omitempty"`
	Text      string `json:"text"`
	Status    string `json:"status,omitempty"`
	OrderedAt string `json:"ordered_at,omitempty"`
}

type VitalResponse struct {
	RecordedAt string `json:"recorded_at"`
	Temp       string `json:"temp,omitempty"`
	HeartRate  string `json:"heart_rate,omitempty"`
	RespRate   string `json:"resp_rate,omitempty"`
	BP         string `json:"bp,omitempty"`
	SpO2       string `json:"spo2,omitempty"`
}

type AssessmentResponse struct {
	RecordedAt string `json:"recorded_at"`
	System     string `json:"system,omitempty"`
	Note       string `json:"note"`
}

type MedicationOrderResponse struct {
	Drug      string `json:"drug"`
	Dose      string `json:"dose,omitempty"`
	Route     string `json:"route,omitempty"`
	Frequency string `json:"frequency,omitempty"`
}

type MAREntryResponse struct {
	Drug    string `json:"drug"`
	Dose    string `json:"dose,omitempty"`
	Route   string `json:"route,omitempty"`
	GivenAt string `json:"given_at"`
	GivenBy string `json:"given_by,omitempty"`
}

type MedicationsResponse struct {
	ActiveOrders []MedicationOrderResponse `json:"active_orders"`
	MAR          []MAREntryResponse        `json:"mar"`
}

// ChartDetailResponse is the detail-pane view model for one patient.
// Editable reflects the session role; IsAssigned reflects the current
// user's membership in the assigned-nurses set.
type ChartDetailResponse struct {
	PatientNumber    string               `json:"patient_number"`
	DisplayName      string               `json:"display_name"`
	Demographics     DemographicsResponse `json:"demographics"`
	PrimaryDiagnosis string               `json:"primary_diagnosis"`
	Diagnoses        []DiagnosisResponse  `json:"diagnoses"`
	Orders           []OrderResponse      `json:"orders"`
	OrderCount       int                  `json:"order_count"`
	VitalsLog        []VitalResponse      `json:"vitals_log"`
	Assessments      []AssessmentResponse `json:"assessments"`
	Medications      MedicationsResponse  `json:"medications"`
	MARCount         int                  `json:"mar_count"`
	AssignedNurses   []string             `json:"assigned_nurses"`
	IsAssigned       bool                 `json:"is_assigned"`
	Editable         bool                 `json:"editable"`
}

// UpdateChartRequest carries the admin inline edits. Only non-nil
// fields are applied. Age and weight arrive as raw input strings;
// empty or non-numeric values clear the stored value.
type UpdateChartRequest struct {
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	Gender           *string `json:"gender"`
	DateOfBirth      *string `json:"date_of_birth"`
	Age              *string `json:"age"`
	Weight           *string `json:"weight"`
	Allergies        *string `json:"allergies"`
	Precautions      *string `json:"precautions"`
	Unit             *string `json:"unit"`
	Room             *string `json:"room"`
	PrimaryDiagnosis *string `json:"primary_diagnosis"`
}

// ToggleAssignmentResponse reports the new assignment state after a toggle.
type ToggleAssignmentResponse struct {
	PatientNumber string `json:"patient_number"`
	IsAssigned    bool   `json:"is_assigned"`
}
