package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hirely-api/internal/config"
	dbpkg "github.com/BruksfildServices01/hirely-api/internal/db"
	infraRepo "github.com/BruksfildServices01/hirely-api/internal/infra/repository"
	"github.com/BruksfildServices01/hirely-api/internal/routes"
	"github.com/BruksfildServices01/hirely-api/internal/scheduler"
	ucAuth "github.com/BruksfildServices01/hirely-api/internal/usecase/auth"
	ucBooking "github.com/BruksfildServices01/hirely-api/internal/usecase/booking"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	infra := routes.NewInfra(cfg, db)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, infra)

	// ======================================================
	// BACKGROUND JOBS
	// ======================================================
	jobs, err := scheduler.New(
		cfg.Timezone,
		ucBooking.NewSendReminders(infraRepo.NewBookingGormRepository(db), infra.Notifier, cfg.Timezone),
		ucAuth.NewPurgeSessions(infraRepo.NewSessionGormRepository(db)),
	)
	if err != nil {
		log.Fatalf("failed to schedule jobs: %v", err)
	}
	jobs.Start()

	// ======================================================
	// SERVER
	// ======================================================
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	jobs.Stop(shutdownCtx)
	infra.Close()

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
