package http

import (
	"net/http"

	"digital-hospital-sim/internal/delivery/http/handler"
	"digital-hospital-sim/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	patientHandler   *handler.PatientHandler
	drugHandler      *handler.DrugHandler
	workspaceHandler *handler.WorkspaceHandler
	brainHandler     *handler.BrainHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	drugHandler *handler.DrugHandler,
	workspaceHandler *handler.WorkspaceHandler,
	brainHandler *handler.BrainHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		patientHandler:   patientHandler,
		drugHandler:      drugHandler,
		workspaceHandler: workspaceHandler,
		brainHandler:     brainHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Session routes (protected)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Patient roster and charts
	protected.HandleFunc("/patients", r.patientHandler.ListRoster).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{patientNumber}/chart", r.patientHandler.GetChart).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{patientNumber}/assignment", r.patientHandler.ToggleAssignment).Methods(http.MethodPost)

	// Chart editing and export (admin only)
	adminPatients := api.PathPrefix("/patients").Subrouter()
	adminPatients.Use(r.authMiddleware.Authenticate)
	adminPatients.Use(middleware.RequireAdmin)
	adminPatients.HandleFunc("/{patientNumber}/chart", r.patientHandler.UpdateChart).Methods(http.MethodPut)
	adminPatients.HandleFunc("/{patientNumber}/export", r.patientHandler.ExportChart).Methods(http.MethodGet)

	// Drug manual
	protected.HandleFunc("/drugs", r.drugHandler.ListDrugs).Methods(http.MethodGet)
	protected.HandleFunc("/drugs/{id}", r.drugHandler.GetDrug).Methods(http.MethodGet)

	// Tab strips
	protected.HandleFunc("/workspace/{kind}/tabs", r.workspaceHandler.ListTabs).Methods(http.MethodGet)
	protected.HandleFunc("/workspace/{kind}/tabs", r.workspaceHandler.OpenTab).Methods(http.MethodPost)
	protected.HandleFunc("/workspace/{kind}/tabs/{entityId}/activate", r.workspaceHandler.ActivateTab).Methods(http.MethodPut)
	protected.HandleFunc("/workspace/{kind}/tabs/{entityId}", r.workspaceHandler.CloseTab).Methods(http.MethodDelete)

	// Assigned-patients dashboard
	protected.HandleFunc("/brain", r.brainHandler.GetAssigned).Methods(http.MethodGet)
	protected.HandleFunc("/brain/{patientNumber}/open", r.brainHandler.OpenPatient).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
