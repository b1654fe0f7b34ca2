package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gentlecare/internal/config"
	"gentlecare/internal/database"
	"gentlecare/internal/domain"
	"gentlecare/internal/middleware"
	"gentlecare/internal/modules/access"
	"gentlecare/internal/modules/appointment"
	"gentlecare/internal/modules/auth"
	"gentlecare/internal/modules/contact"
	"gentlecare/internal/modules/health"
	"gentlecare/internal/modules/location"
	"gentlecare/internal/modules/meal"
	"gentlecare/internal/modules/medication"
	"gentlecare/internal/modules/notification"
	"gentlecare/internal/notifier"
	jwtsvc "gentlecare/internal/pkg/jwt"
	"gentlecare/internal/realtime"
	"gentlecare/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.ElderProfile{},
		&domain.CaretakerProfile{},
		&domain.Medication{},
		&domain.MedicationLog{},
		&domain.Meal{},
		&domain.Appointment{},
		&domain.HealthRecord{},
		&domain.EmergencyContact{},
		&domain.LocationLog{},
		&domain.Notification{},
		&domain.KVEntry{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	medicationRepo := repository.NewMedicationRepository(db)
	mealRepo := repository.NewMealRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	healthRepo := repository.NewHealthRecordRepository(db)
	contactRepo := repository.NewContactRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	kvRepo := repository.NewKVRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := realtime.NewHub()
	wsHandler := realtime.NewWSHandler(hub, j)
	publisher := realtime.NewPublisher(hub)

	scope := access.NewResolver(profileRepo)

	authService := auth.NewService(userRepo, profileRepo, j, publisher)
	authHandler := auth.NewHandler(authService)

	medicationService := medication.NewService(medicationRepo, scope, notificationRepo, publisher)
	medicationHandler := medication.NewHandler(medicationService)

	mealService := meal.NewService(mealRepo, scope, notificationRepo, publisher)
	mealHandler := meal.NewHandler(mealService)

	appointmentService := appointment.NewService(appointmentRepo, scope, notificationRepo, publisher)
	appointmentHandler := appointment.NewHandler(appointmentService)

	healthService := health.NewService(healthRepo, scope, notificationRepo, publisher)
	healthHandler := health.NewHandler(healthService)

	contactService := contact.NewService(contactRepo, scope)
	contactHandler := contact.NewHandler(contactService)

	locationService := location.NewService(locationRepo, scope, publisher)
	locationHandler := location.NewHandler(locationService)

	// Notification engine: periodic evaluation over every elder, delivered
	// through the WebSocket hub and mirrored into per-user rolling logs.
	stores := notifier.NewStoreSet(kvRepo)
	sink := notifier.NewSink(realtime.NewHubDeliverer(hub), stores, kvRepo)
	source := notifier.NewRepoSource(profileRepo, medicationRepo, mealRepo, appointmentRepo, healthRepo)

	policy := notifier.DefaultPolicy()
	policy.CheckInterval = cfg.CheckInterval
	policy.UpcomingWindow = cfg.UpcomingWindow
	policy.MissedGrace = cfg.MissedGrace
	policy.CalorieFloor = cfg.CalorieFloor

	engine := notifier.NewEngine(source, sink, policy)

	notificationService := notification.NewService(notificationRepo, stores, sink)
	notificationHandler := notification.NewHandler(notificationService)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	wsHandler.RegisterRoutes(r)

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)

		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			medicationHandler.RegisterRoutes(protected)
			mealHandler.RegisterRoutes(protected)
			appointmentHandler.RegisterRoutes(protected)
			healthHandler.RegisterRoutes(protected)
			contactHandler.RegisterRoutes(protected)
			locationHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
		}
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.NotifierEnabled {
		engine.Start(ctx)
		log.Printf("notification engine started, interval=%s", policy.CheckInterval)
	}

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	go func() {
		log.Printf("listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	engine.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
