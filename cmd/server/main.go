package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesikahq/family-health/internal/activity"
	"github.com/mesikahq/family-health/internal/api"
	"github.com/mesikahq/family-health/internal/appointment"
	"github.com/mesikahq/family-health/internal/auth"
	"github.com/mesikahq/family-health/internal/config"
	"github.com/mesikahq/family-health/internal/family"
	"github.com/mesikahq/family-health/internal/healthrecord"
	"github.com/mesikahq/family-health/internal/medication"
	"github.com/mesikahq/family-health/internal/profile"
	"github.com/mesikahq/family-health/internal/seed"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Server-level settings come from viper so they can be overridden
	// without touching the typed config.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	if err := viper.ReadInConfig(); err != nil {
		logger.Fatal("Error reading config file", zap.Error(err))
	}
	if mode := viper.GetString("server.mode"); mode != "" {
		gin.SetMode(mode)
	}

	// Everything below is in-memory; state is lost on restart.
	activityService := activity.NewService(cfg.Activity.Capacity)
	profileService := profile.NewService(activityService)

	medicationStore := medication.NewStore()
	medicationService := medication.NewService(medicationStore, activityService)

	recordStore := healthrecord.NewStore()
	recordService := healthrecord.NewService(recordStore, activityService)

	familyStore := family.NewStore()
	appointmentStore := appointment.NewStore()

	// family and appointment services reference each other (derived counts
	// one way, denormalized member names the other), so the family service
	// is built first with a late-bound appointment counter.
	var appointmentService appointment.Service
	familyService := family.NewService(familyStore, activityService,
		recordService, medicationService,
		counterFunc(func(ctx context.Context, memberID int64) int {
			if appointmentService == nil {
				return 0
			}
			return appointmentService.CountByFamilyMember(ctx, memberID)
		}))
	appointmentService = appointment.NewService(appointmentStore, activityService, familyService)

	session := auth.NewSession()
	authService := auth.NewService(auth.Config{
		DemoEmail:        cfg.Auth.DemoEmail,
		DemoPasswordHash: cfg.Auth.DemoPasswordHash,
		JWTSecret:        cfg.Auth.JWTSecret,
		TokenExpiry:      cfg.Auth.TokenExpiry.Std(),
		LoginDelay:       cfg.Auth.LoginDelay.Std(),
	}, session, profileService, activityService)

	if cfg.Demo.Seed {
		data, err := seed.Load(cfg.Demo.SeedFile)
		if err != nil {
			logger.Fatal("Failed to load seed data", zap.Error(err))
		}
		if err := seed.Apply(context.Background(), data,
			profileService, familyService, medicationService,
			appointmentService, recordService); err != nil {
			logger.Fatal("Failed to apply seed data", zap.Error(err))
		}
		logger.Info("Demo data seeded",
			zap.Int("family_members", len(data.FamilyMembers)),
			zap.Int("medications", len(data.Medications)),
			zap.Int("appointments", len(data.Appointments)),
			zap.Int("health_records", len(data.HealthRecords)),
		)
	}

	handler := api.NewHandler(authService, familyService, medicationService,
		appointmentService, recordService, profileService, activityService)
	router := api.NewRouter(handler, authService)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupRouter(logger, cfg.Server.Timeout.Std()),
		ReadTimeout:  cfg.Server.Timeout.Std(),
		WriteTimeout: cfg.Server.Timeout.Std(),
	}

	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server stopped")
}

// counterFunc adapts a function to the family.Counter interface.
type counterFunc func(ctx context.Context, memberID int64) int

func (f counterFunc) CountByFamilyMember(ctx context.Context, memberID int64) int {
	return f(ctx, memberID)
}
