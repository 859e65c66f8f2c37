package dto

// BrainRow is one patient on the assigned dashboard.
type BrainRow struct {
	PatientNumber string `json:"patient_number"`
	DisplayName   string `json:"display_name"`
	Unit          string `json:"unit"`
	Room          string `json:"room"`
}

// BrainResponse is the assigned dashboard for the current user.
// Message carries the explicit empty-state text when no patients are
// assigned; a logged-out caller never reaches this response.
type BrainResponse struct {
	Assigned []BrainRow `json:"assigned"`
	Message  string     `json:"message,omitempty"`
}
