package handler

import (
	"encoding/json"
	"net/http"

	"digital-hospital-sim/internal/delivery/http/middleware"
	"digital-hospital-sim/internal/domain/entity"
	"digital-hospital-sim/internal/usecase"
	"digital-hospital-sim/pkg/response"
	"digital-hospital-sim/pkg/validator"

	"github.com/gorilla/mux"
)

type openTabRequest struct {
	EntityID string `json:"entity_id" validate:"required"`
}

type WorkspaceHandler struct {
	workspaceUsecase usecase.WorkspaceUsecase
	validator        *validator.CustomValidator
}

func NewWorkspaceHandler(workspaceUsecase usecase.WorkspaceUsecase, validator *validator.CustomValidator) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceUsecase: workspaceUsecase,
		validator:        validator,
	}
}

// ListTabs handles listing a tab strip
// @Summary List open tabs
// @Description Get the open tabs of a strip in opening order with the active id
// @Tags Workspace
// @Security BearerAuth
// @Produce json
// @Param kind path string true "Tab Kind" Enums(patient, drug)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /workspace/{kind}/tabs [get]
func (h *WorkspaceHandler) ListTabs(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	kind := entity.TabKind(mux.Vars(r)["kind"])

	tabs, err := h.workspaceUsecase.ListTabs(user, kind)
	if err != nil {
		h.writeError(w, err, "Failed to list tabs")
		return
	}

	response.Success(w, http.StatusOK, "Tabs retrieved successfully", tabs)
}

// OpenTab handles opening a tab without activating it
// @Summary Open a tab
// @Description Ensure a tab exists for the entity; opening an open id is a no-op
// @Tags Workspace
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param kind path string true "Tab Kind" Enums(patient, drug)
// @Param request body openTabRequest true "Open Tab Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /workspace/{kind}/tabs [post]
func (h *WorkspaceHandler) OpenTab(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	kind := entity.TabKind(mux.Vars(r)["kind"])

	var req openTabRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tab, err := h.workspaceUsecase.OpenTab(r.Context(), user, kind, req.EntityID)
	if err != nil {
		h.writeError(w, err, "Failed to open tab")
		return
	}

	response.Success(w, http.StatusOK, "Tab opened successfully", tab)
}

// ActivateTab handles activating an open tab
// @Summary Activate a tab
// @Description Make the tab the strip's selection and render its detail pane
// @Tags Workspace
// @Security BearerAuth
// @Produce json
// @Param kind path string true "Tab Kind" Enums(patient, drug)
// @Param entityId path string true "Entity ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /workspace/{kind}/tabs/{entityId}/activate [put]
func (h *WorkspaceHandler) ActivateTab(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	vars := mux.Vars(r)
	kind := entity.TabKind(vars["kind"])

	result, err := h.workspaceUsecase.ActivateTab(r.Context(), user, kind, vars["entityId"])
	if err != nil {
		h.writeError(w, err, "Failed to activate tab")
		return
	}

	response.Success(w, http.StatusOK, "Tab activated successfully", result)
}

// CloseTab handles closing an open tab
// @Summary Close a tab
// @Description Remove the tab and report the replacement selection
// @Tags Workspace
// @Security BearerAuth
// @Produce json
// @Param kind path string true "Tab Kind" Enums(patient, drug)
// @Param entityId path string true "Entity ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /workspace/{kind}/tabs/{entityId} [delete]
func (h *WorkspaceHandler) CloseTab(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	vars := mux.Vars(r)
	kind := entity.TabKind(vars["kind"])

	selection, err := h.workspaceUsecase.CloseTab(r.Context(), user, kind, vars["entityId"])
	if err != nil {
		h.writeError(w, err, "Failed to close tab")
		return
	}

	response.Success(w, http.StatusOK, "Tab closed successfully", selection)
}

func (h *WorkspaceHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrInvalidTabKind:
		response.Error(w, http.StatusBadRequest, "Invalid tab kind", nil)
	case usecase.ErrTabNotOpen:
		response.NotFound(w, "Tab is not open")
	case usecase.ErrPatientNotFound:
		response.NotFound(w, "Patient not found")
	case usecase.ErrDrugNotFound:
		response.NotFound(w, "Drug not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
