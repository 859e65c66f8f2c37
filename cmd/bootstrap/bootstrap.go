package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"digital-hospital-sim/config"
	deliveryHttp "digital-hospital-sim/internal/delivery/http"
	"digital-hospital-sim/internal/delivery/http/handler"
	"digital-hospital-sim/internal/delivery/http/middleware"
	"digital-hospital-sim/internal/infrastructure/cache"
	"digital-hospital-sim/internal/repository"
	"digital-hospital-sim/internal/service"
	"digital-hospital-sim/internal/usecase"
	"digital-hospital-sim/pkg/jwt"
	"digital-hospital-sim/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize fixture repositories and Redis-backed stores
	userRepo := repository.NewUserRepository(cfg.Data.UsersPath, log)
	rosterRepo := repository.NewRosterRepository(cfg.Data.RosterPath, log)
	chartRepo := repository.NewChartRepository(cfg.Data.ChartsDir, log)
	drugRepo := repository.NewDrugRepository(cfg.Data.DrugsDir, log)
	sessionStore := repository.NewSessionStore(redisClient)
	chartStore := repository.NewChartStore(redisClient)

	// Initialize services
	workspaces := service.NewWorkspaceManager(log)
	exportService := service.NewExportService(log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, sessionStore, jwtService, workspaces)
	patientUsecase := usecase.NewPatientUsecase(log, rosterRepo, chartRepo, chartStore, workspaces, exportService)
	drugUsecase := usecase.NewDrugUsecase(log, drugRepo, workspaces)
	workspaceUsecase := usecase.NewWorkspaceUsecase(log, rosterRepo, drugRepo, workspaces, patientUsecase, drugUsecase)
	brainUsecase := usecase.NewBrainUsecase(log, workspaces)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase)
	drugHandler := handler.NewDrugHandler(drugUsecase)
	workspaceHandler := handler.NewWorkspaceHandler(workspaceUsecase, customValidator)
	brainHandler := handler.NewBrainHandler(brainUsecase, workspaceUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessionStore)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, patientHandler, drugHandler, workspaceHandler, brainHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (redis, etc.)
func (app *App) Close() {
	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
