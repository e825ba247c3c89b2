package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/leapfroghealth/leapfrog/backend/internal/config"
	"github.com/leapfroghealth/leapfrog/backend/internal/handlers"
	"github.com/leapfroghealth/leapfrog/backend/internal/leapfrog"
	"github.com/leapfroghealth/leapfrog/backend/internal/logger"
	"github.com/leapfroghealth/leapfrog/backend/internal/middleware"
	"github.com/leapfroghealth/leapfrog/backend/internal/repository"
	"github.com/leapfroghealth/leapfrog/backend/internal/service"
	"github.com/leapfroghealth/leapfrog/backend/pkg/classifier"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var port string

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if port != "" {
		cfg.Server.Port = port
	}

	logCfg := logger.DefaultConfig()
	if cfg.Server.Env == "development" {
		logCfg.Level = logger.LevelDebug
		logCfg.Format = "text"
	}
	log := logger.NewZapLogger(logCfg)
	logger.SetDefault(log)
	defer log.Sync()

	log.Info("starting LeapFrog API server",
		logger.String("env", cfg.Server.Env),
		logger.String("port", cfg.Server.Port))

	db, err := sqlx.Connect("postgres", cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	// Initialize repositories
	patientRepo := repository.NewPatientRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	suggestionRepo := repository.NewSuggestionRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	recordRepo := repository.NewMedicalRecordRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Initialize the analytics engine
	engineCfg := leapfrog.DefaultConfig()
	engineCfg.ConfidenceThreshold = cfg.Analytics.ConfidenceThreshold
	engineCfg.MinimumDataPoints = cfg.Analytics.MinimumDataPoints
	engine := leapfrog.New(engineCfg)

	var classifierClient service.Classifier
	if cfg.Classifier.URL != "" {
		classifierClient = classifier.NewClient(cfg.Classifier.URL, cfg.Classifier.Timeout)
		log.Info("classifier service configured", logger.String("url", cfg.Classifier.URL))
	} else {
		log.Warn("no classifier service configured, recommendations will be rule-based")
	}

	// Initialize services
	patientService := service.NewPatientService(patientRepo, doctorRepo)
	doctorService := service.NewDoctorService(doctorRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, patientRepo, doctorRepo)
	recordService := service.NewMedicalRecordService(recordRepo, patientRepo, doctorRepo)
	messageService := service.NewMessageService(messageRepo)
	progressService := service.NewProgressService(progressRepo, patientRepo, doctorRepo)
	analysisService := service.NewAnalysisService(patientRepo, progressRepo, suggestionRepo,
		engine, cfg.Analytics.LookbackDays, log)
	recommendationService := service.NewRecommendationService(classifierClient, log)

	// Initialize handlers
	patientHandler := handlers.NewPatientHandler(patientService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	recordHandler := handlers.NewMedicalRecordHandler(recordService)
	messageHandler := handlers.NewMessageHandler(messageService)
	progressHandler := handlers.NewProgressHandler(progressService)
	aiHandler := handlers.NewAIHandler(analysisService, recommendationService)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "env": cfg.Server.Env})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/patients", patientHandler.ListPatients)
		v1.POST("/patients", patientHandler.CreatePatient)
		v1.GET("/patients/:id", patientHandler.GetPatient)
		v1.PUT("/patients/:id", patientHandler.UpdatePatient)
		v1.DELETE("/patients/:id", patientHandler.DeletePatient)
		v1.GET("/patients/:id/appointments", appointmentHandler.GetPatientAppointments)
		v1.GET("/patients/:id/records", recordHandler.GetPatientRecords)

		v1.GET("/doctors", doctorHandler.ListDoctors)
		v1.POST("/doctors", doctorHandler.CreateDoctor)
		v1.GET("/doctors/:id", doctorHandler.GetDoctor)

		v1.POST("/appointments", appointmentHandler.CreateAppointment)
		v1.GET("/appointments/:id", appointmentHandler.GetAppointment)
		v1.PUT("/appointments/:id", appointmentHandler.UpdateAppointment)
		v1.DELETE("/appointments/:id", appointmentHandler.CancelAppointment)

		v1.POST("/records", recordHandler.CreateRecord)
		v1.GET("/records/:id", recordHandler.GetRecord)

		v1.POST("/messages", messageHandler.SendMessage)
		v1.GET("/messages/conversation", messageHandler.GetConversation)
		v1.POST("/messages/:id/read", messageHandler.MarkMessageRead)

		progress := v1.Group("/progress")
		{
			progress.POST("/symptoms", progressHandler.LogSymptom)
			progress.POST("/moods", progressHandler.LogMood)
			progress.POST("/activities", progressHandler.LogActivity)
			progress.POST("/assessments", progressHandler.RecordAssessment)
			progress.POST("/goals", progressHandler.CreateGoal)
			progress.GET("/goals/:patient_id", progressHandler.GetGoals)
			progress.POST("/treatment-plans", progressHandler.CreateTreatmentPlan)
			progress.GET("/treatment-plans/:patient_id", progressHandler.GetTreatmentPlans)
		}

		// Goal progress updates address a goal, not a patient, so they live
		// outside the patient-keyed progress group.
		v1.PATCH("/goals/:goal_id/progress", progressHandler.UpdateGoalProgress)

		ai := v1.Group("/ai")
		ai.Use(middleware.RateLimitAnalysis())
		{
			ai.POST("/analyze/:patient_id", aiHandler.AnalyzeProgress)
			ai.GET("/suggestions/:patient_id", aiHandler.GetSuggestions)
			ai.POST("/suggestions/:patient_id", aiHandler.GenerateSuggestions)
			ai.GET("/insights/:patient_id", aiHandler.GetInsights)
			ai.GET("/risk-assessment/:patient_id", aiHandler.GetRiskAssessment)
			ai.POST("/recommendations", aiHandler.RecommendTreatments)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", logger.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info("shutting down", logger.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
