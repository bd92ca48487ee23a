package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"community-health-api/config"
	deliveryHttp "community-health-api/internal/delivery/http"
	"community-health-api/internal/delivery/http/handler"
	"community-health-api/internal/delivery/http/middleware"
	"community-health-api/internal/infrastructure/database"
	"community-health-api/internal/repository"
	"community-health-api/internal/usecase"
	"community-health-api/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *http.Server
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

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize all layers
	server := initializeServer(cfg, db)
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
func initializeServer(cfg *config.Config, db *gorm.DB) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	personRepo := repository.NewPersonRepository()
	surveyRepo := repository.NewHealthSurveyRepository()
	labTestRepo := repository.NewLabTestRepository()
	bpRepo := repository.NewBloodPressureRepository()
	metabolicRepo := repository.NewMetabolicRepository()
	doctorRepo := repository.NewDoctorRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	personResolver := usecase.NewPersonResolver(personRepo)
	surveyUsecase := usecase.NewHealthSurveyUsecase(db, log, personResolver, surveyRepo)
	labTestUsecase := usecase.NewLabTestUsecase(db, log, personRepo, labTestRepo)
	bpUsecase := usecase.NewBloodPressureUsecase(db, log, personResolver, bpRepo)
	metabolicUsecase := usecase.NewMetabolicUsecase(db, log, personResolver, metabolicRepo)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo)

	// Initialize handlers
	surveyHandler := handler.NewHealthSurveyHandler(surveyUsecase, customValidator)
	labTestHandler := handler.NewLabTestHandler(labTestUsecase, customValidator)
	bpHandler := handler.NewBloodPressureHandler(bpUsecase, customValidator)
	metabolicHandler := handler.NewMetabolicHandler(metabolicUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	requestIDMiddleware := middleware.NewRequestIDMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		surveyHandler,
		labTestHandler,
		bpHandler,
		metabolicHandler,
		doctorHandler,
		corsMiddleware,
		requestIDMiddleware,
	)
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
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

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

// Close closes all connections
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
