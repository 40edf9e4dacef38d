package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-records/internal/config"
	"hospital-records/internal/database"
	"hospital-records/internal/handler"
	"hospital-records/internal/logger"
	"hospital-records/internal/middleware"
	"hospital-records/internal/models"
	"hospital-records/internal/repository"
	"hospital-records/internal/seeder"
	"hospital-records/internal/service"
	"hospital-records/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const recordCountInterval = 30 * time.Second

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Initialize logger
	if err := logger.InitLogger(cfg.Log.Level, cfg.Server.GinMode == gin.DebugMode); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.L()

	// 3. Initialize JWT utilities with config
	utils.InitJWT(cfg.JWT.AccessSecret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// 4. Initialize database connection
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalw("database unavailable", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalw("migration failed", "error", err)
	}

	// 5. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	hospitalRepo := repository.NewHospitalRepo(db)
	wardRepo := repository.NewWardRepo(db)
	seedStore := repository.NewSeedStore(db, cfg.Seed.BatchSize)

	// 6. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo)
	hospitalService := service.NewHospitalService(hospitalRepo, wardRepo, auditRepo)
	seedService := service.NewSeedService(seeder.New(seedStore, seeder.WithLogger(log)), auditRepo)

	created, err := authService.EnsureAdmin(context.Background(), cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		log.Fatalw("failed to bootstrap admin account", "error", err)
	}
	if created {
		log.Infow("bootstrap admin account created", "username", cfg.Admin.Username)
	}

	// 7. Setup Gin router
	gin.SetMode(cfg.Server.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.Metrics(), middleware.CORS(cfg.CORS.AllowedOrigins))

	authHandler := handler.NewAuthHandler(authService)
	hospitalHandler := handler.NewHospitalHandler(hospitalService)
	seedHandler := handler.NewSeedHandler(seedService)

	// 8. Define routes
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hospital-records",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Record routes (authenticated)
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	counters := registerRecordRoutes(api, db, auditRepo)
	{
		api.POST("/hospitals", middleware.RequireAdmin(), hospitalHandler.CreateHospital)
		api.PUT("/hospitals/:id", middleware.RequireAdmin(), hospitalHandler.UpdateHospital)
		api.DELETE("/hospitals/:id", middleware.RequireAdmin(), hospitalHandler.DeleteHospital)
		api.GET("/hospitals/:id/wards", middleware.RequireAdmin(), hospitalHandler.GetHospitalWards)
		api.POST("/hospitals/:id/wards", middleware.RequireAdmin(), hospitalHandler.CreateHospitalWard)
	}

	// Seeding routes (admin only)
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		admin.POST("/seed/quick", seedHandler.SeedQuick)
		admin.POST("/seed/large", seedHandler.SeedLarge)
		admin.POST("/seed/custom", seedHandler.SeedCustom)
	}

	// 9. Start background worker
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.NewWorkerService(counters, recordCountInterval).Start(ctx)

	// 10. Serve with graceful shutdown
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Infow("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("forced shutdown", "error", err)
	}
	if err := database.Close(db); err != nil {
		log.Warnw("failed to close database", "error", err)
	}
	log.Info("server exited")
}

// registerRecordRoutes mounts the endpoints of every record kind and returns
// their row counters for the background worker. Hospitals are written through
// HospitalHandler; every other kind gets admin-only writes here.
func registerRecordRoutes(api *gin.RouterGroup, db *gorm.DB, auditRepo *repository.AuditRepository) map[string]service.RowCounter {
	hospitals := repository.NewRecordRepo[models.Hospital](db, "name ASC", "Wards")
	wards := repository.NewRecordRepo[models.Ward](db, "hospital_id ASC")
	doctors := repository.NewRecordRepo[models.Doctor](db, "name ASC")
	nurses := repository.NewRecordRepo[models.Nurse](db, "name ASC")
	patients := repository.NewPatientRepo(db)
	medications := repository.NewRecordRepo[models.Medication](db, "name ASC")
	diagnoses := repository.NewRecordRepo[models.Diagnosis](db, "diagnosis_date DESC")
	appointments := repository.NewRecordRepo[models.Appointment](db, "appointment_date DESC")
	prescriptions := repository.NewRecordRepo[models.Prescription](db, "start_date DESC")
	surgeries := repository.NewRecordRepo[models.Surgery](db, "surgery_date DESC")

	rules := &service.RecordRules{
		Hospitals:   hospitals,
		Wards:       wards,
		Doctors:     doctors,
		Nurses:      nurses,
		Patients:    patients,
		Medications: medications,
		Diagnoses:   diagnoses,
	}
	admin := middleware.RequireAdmin()

	handler.NewRecordHandler("hospitals", "Hospital",
		service.NewRecordService[models.Hospital](hospitals), nil).Register(api)
	handler.NewRecordHandler("wards", "Ward",
		service.NewRecordService[models.Ward](wards, service.WithRules(rules.PrepareWard), service.WithAudit[models.Ward]("ward", auditRepo)),
		handler.BindRequest[models.Ward, handler.WardRecordRequest]).Register(api, admin)
	handler.NewRecordHandler("doctors", "Doctor",
		service.NewRecordService[models.Doctor](doctors, service.WithRules(rules.PrepareDoctor), service.WithAudit[models.Doctor]("doctor", auditRepo)),
		handler.BindRequest[models.Doctor, handler.DoctorRequest]).Register(api, admin)
	handler.NewRecordHandler("nurses", "Nurse",
		service.NewRecordService[models.Nurse](nurses, service.WithRules(rules.PrepareNurse), service.WithAudit[models.Nurse]("nurse", auditRepo)),
		handler.BindRequest[models.Nurse, handler.NurseRequest]).Register(api, admin)
	handler.NewRecordHandler("patients", "Patient",
		service.NewRecordService[models.Patient](patients, service.WithRules(rules.PreparePatient), service.WithAudit[models.Patient]("patient", auditRepo)),
		handler.BindRequest[models.Patient, handler.PatientRequest]).Register(api, admin)
	handler.NewRecordHandler("medications", "Medication",
		service.NewRecordService[models.Medication](medications, service.WithAudit[models.Medication]("medication", auditRepo)),
		handler.BindRequest[models.Medication, handler.MedicationRequest]).Register(api, admin)
	handler.NewRecordHandler("diagnoses", "Diagnosis",
		service.NewRecordService[models.Diagnosis](diagnoses, service.WithRules(rules.PrepareDiagnosis), service.WithAudit[models.Diagnosis]("diagnosis", auditRepo)),
		handler.BindRequest[models.Diagnosis, handler.DiagnosisRequest]).Register(api, admin)
	handler.NewRecordHandler("appointments", "Appointment",
		service.NewRecordService[models.Appointment](appointments, service.WithRules(rules.PrepareAppointment), service.WithAudit[models.Appointment]("appointment", auditRepo)),
		handler.BindRequest[models.Appointment, handler.AppointmentRequest]).Register(api, admin)
	handler.NewRecordHandler("prescriptions", "Prescription",
		service.NewRecordService[models.Prescription](prescriptions, service.WithRules(rules.PreparePrescription), service.WithAudit[models.Prescription]("prescription", auditRepo)),
		handler.BindRequest[models.Prescription, handler.PrescriptionRequest]).Register(api, admin)
	handler.NewRecordHandler("surgeries", "Surgery",
		service.NewRecordService[models.Surgery](surgeries, service.WithRules(rules.PrepareSurgery), service.WithAudit[models.Surgery]("surgery", auditRepo)),
		handler.BindRequest[models.Surgery, handler.SurgeryRequest]).Register(api, admin)

	return map[string]service.RowCounter{
		seeder.KindHospitals:     hospitals,
		seeder.KindWards:         wards,
		seeder.KindDoctors:       doctors,
		seeder.KindNurses:        nurses,
		seeder.KindPatients:      patients,
		seeder.KindMedications:   medications,
		seeder.KindDiagnoses:     diagnoses,
		seeder.KindAppointments:  appointments,
		seeder.KindPrescriptions: prescriptions,
		seeder.KindSurgeries:     surgeries,
	}
}
