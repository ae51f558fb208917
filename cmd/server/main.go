// Command server runs the clinic portal gateway: the browser-facing service
// that owns sessions, composes role-aware views and consumes the remote
// clinic backend API.
//
// @title        Clinic Portal API
// @version      1.0
// @description  Browser-facing gateway for the clinic scheduling application.
// @BasePath     /
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smartclinic/portal/internal/api"
	"github.com/smartclinic/portal/internal/core/ports"
	"github.com/smartclinic/portal/internal/core/service"
	"github.com/smartclinic/portal/internal/infrastructure/clinic"
	redisdb "github.com/smartclinic/portal/internal/infrastructure/db/redis"
	"github.com/smartclinic/portal/internal/pkg/config"
	"github.com/smartclinic/portal/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	redisCfg := redisdb.Config{
		Addr:      cfg.Redis.Addr,
		DB:        cfg.Redis.DB,
		KeyPrefix: cfg.Redis.SessionKeyPrefix,
	}
	rdb, err := redisdb.Connect(ctx, redisCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	clinicClient := clinic.New(cfg.Clinic.BaseURL, cfg.Clinic.Timeout, log)
	sessionStore := redisdb.NewSessionStore(rdb, redisCfg)

	// --- Core services ---
	sessions := service.NewSessionContext(sessionStore, cfg.SessionTTL, log)
	directory := service.NewDirectory(clinicClient, log)
	admin := service.NewAdminDirectory(clinicClient, log)
	appointments := service.NewAppointments(clinicClient, log)
	workflows := ports.BookingWorkflowFactory(func() ports.BookingWorkflow {
		return service.NewBookingWorkflow(clinicClient, clinicClient, log)
	})

	e := api.NewRouter(api.Deps{
		Sessions:     sessions,
		Auth:         clinicClient,
		Directory:    directory,
		Admin:        admin,
		Appointments: appointments,
		Workflows:    workflows,
		Clinic:       clinicClient,
		Redis:        rdb,
		Log:          log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("clinic_api", cfg.Clinic.BaseURL).Msg("portal listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
