package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"digital-hospital-sim/internal/delivery/dto"
	"digital-hospital-sim/internal/delivery/http/middleware"
	"digital-hospital-sim/internal/usecase"
	"digital-hospital-sim/pkg/response"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase) *PatientHandler {
	return &PatientHandler{patientUsecase: patientUsecase}
}

// ListRoster handles listing the patient roster
// @Summary List patient roster
// @Description Get all patients in roster order with raw roster fields
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patients [get]
func (h *PatientHandler) ListRoster(w http.ResponseWriter, r *http.Request) {
	rows := h.patientUsecase.ListRoster()
	response.Success(w, http.StatusOK, "Roster retrieved successfully", rows)
}

// GetChart handles viewing a patient chart
// @Summary Get patient chart
// @Description Get the rendered chart detail for a patient number
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param patientNumber path string true "Patient Number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{patientNumber}/chart [get]
func (h *PatientHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	patientNumber := mux.Vars(r)["patientNumber"]

	chart, err := h.patientUsecase.GetChart(r.Context(), user, patientNumber)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get chart")
		}
		return
	}

	response.Success(w, http.StatusOK, "Chart retrieved successfully", chart)
}

// UpdateChart handles admin chart edits
// @Summary Update patient chart
// @Description Apply inline demographic and diagnosis edits (admin only)
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param patientNumber path string true "Patient Number"
// @Param request body dto.UpdateChartRequest true "Chart Edits"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{patientNumber}/chart [put]
func (h *PatientHandler) UpdateChart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	patientNumber := mux.Vars(r)["patientNumber"]

	var req dto.UpdateChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	chart, err := h.patientUsecase.UpdateChart(r.Context(), user, patientNumber, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to update chart")
		}
		return
	}

	response.Success(w, http.StatusOK, "Chart updated successfully", chart)
}

// ToggleAssignment handles assigning or unassigning the current user
// @Summary Toggle patient assignment
// @Description Add or remove the current user on the patient's assigned nurses
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param patientNumber path string true "Patient Number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{patientNumber}/assignment [post]
func (h *PatientHandler) ToggleAssignment(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	patientNumber := mux.Vars(r)["patientNumber"]

	result, err := h.patientUsecase.ToggleAssignment(r.Context(), user, patientNumber)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to toggle assignment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Assignment updated successfully", result)
}

// ExportChart handles exporting a chart as a text document
// @Summary Export patient chart
// @Description Download the chart as a structured text file (admin only)
// @Tags Patients
// @Security BearerAuth
// @Produce plain
// @Param patientNumber path string true "Patient Number"
// @Success 200 {string} string
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{patientNumber}/export [get]
func (h *PatientHandler) ExportChart(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	patientNumber := mux.Vars(r)["patientNumber"]

	filename, content, err := h.patientUsecase.ExportChart(r.Context(), user, patientNumber)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to export chart")
		}
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}
