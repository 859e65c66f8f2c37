package handler

import (
	"net/http"

	"digital-hospital-sim/internal/delivery/http/middleware"
	"digital-hospital-sim/internal/usecase"
	"digital-hospital-sim/pkg/response"

	"github.com/gorilla/mux"
)

type DrugHandler struct {
	drugUsecase usecase.DrugUsecase
}

func NewDrugHandler(drugUsecase usecase.DrugUsecase) *DrugHandler {
	return &DrugHandler{drugUsecase: drugUsecase}
}

// ListDrugs handles listing the drug manual index
// @Summary List drug manual
// @Description Get the drug index sorted by display name
// @Tags Drugs
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /drugs [get]
func (h *DrugHandler) ListDrugs(w http.ResponseWriter, r *http.Request) {
	rows := h.drugUsecase.ListDrugs()
	response.Success(w, http.StatusOK, "Drug index retrieved successfully", rows)
}

// GetDrug handles viewing a drug monograph
// @Summary Get drug monograph
// @Description Get the rendered monograph for a drug id
// @Tags Drugs
// @Security BearerAuth
// @Produce json
// @Param id path string true "Drug ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /drugs/{id} [get]
func (h *DrugHandler) GetDrug(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	id := mux.Vars(r)["id"]

	drug, err := h.drugUsecase.GetDrug(r.Context(), user, id)
	if err != nil {
		switch err {
		case usecase.ErrDrugNotFound:
			response.NotFound(w, "Drug not found")
		default:
			response.InternalServerError(w, "Failed to get drug")
		}
		return
	}

	response.Success(w, http.StatusOK, "Drug retrieved successfully", drug)
}
