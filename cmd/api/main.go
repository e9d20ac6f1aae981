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

	"starcatalog/internal/config"
	"starcatalog/internal/database"
	"starcatalog/internal/router"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	dbOpts := database.Options{}
	if cfg.DBDebug {
		dbOpts.LogLevel = logger.Info
	}
	db, err := database.Open(cfg.DatabaseURL, dbOpts)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("close database: %v", err)
		}
	}()

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.Handler(db, router.Options{
			CurrentUserID: cfg.CurrentUserID,
			CORSOrigins:   cfg.CORSOrigins,
			AccessLog:     !cfg.IsProduction(),
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("server starting addr=%s env=%s current_user_id=%d", srv.Addr, cfg.AppEnv, cfg.CurrentUserID)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Println("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
		return
	}
	log.Println("server shutdown complete")
}
