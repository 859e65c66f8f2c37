package handler

import (
	"net/http"

	"digital-hospital-sim/internal/delivery/http/middleware"
	"digital-hospital-sim/internal/usecase"
	"digital-hospital-sim/pkg/response"

	"github.com/gorilla/mux"
)

type BrainHandler struct {
	brainUsecase     usecase.BrainUsecase
	workspaceUsecase usecase.WorkspaceUsecase
}

func NewBrainHandler(brainUsecase usecase.BrainUsecase, workspaceUsecase usecase.WorkspaceUsecase) *BrainHandler {
	return &BrainHandler{
		brainUsecase:     brainUsecase,
		workspaceUsecase: workspaceUsecase,
	}
}

// GetAssigned handles the assigned-patients dashboard
// @Summary Get assigned patients
// @Description Get the dashboard rows for every chart assigned to the current user
// @Tags Brain
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /brain [get]
func (h *BrainHandler) GetAssigned(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	brain, err := h.brainUsecase.GetAssigned(r.Context(), user)
	if err != nil {
		response.InternalServerError(w, "Failed to get assigned patients")
		return
	}

	response.Success(w, http.StatusOK, "Assigned patients retrieved successfully", brain)
}

// OpenPatient handles the dashboard row click
// @Summary Open patient from dashboard
// @Description Open and activate the patient's tab in a single gesture
// @Tags Brain
// @Security BearerAuth
// @Produce json
// @Param patientNumber path string true "Patient Number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /brain/{patientNumber}/open [post]
func (h *BrainHandler) OpenPatient(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	patientNumber := mux.Vars(r)["patientNumber"]

	result, err := h.workspaceUsecase.OpenAndActivatePatient(r.Context(), user, patientNumber)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to open patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient opened successfully", result)
}
