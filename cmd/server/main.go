package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lehmann314159/flashdeck/internal/api"
	"github.com/lehmann314159/flashdeck/internal/config"
	"github.com/lehmann314159/flashdeck/internal/database"
	"github.com/lehmann314159/flashdeck/internal/logger"
	"github.com/lehmann314159/flashdeck/internal/repository"
	"github.com/lehmann314159/flashdeck/internal/services"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		zl.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.MigrationsPath); err != nil {
		zl.Fatal("failed to run migrations", zap.Error(err))
	}
	zl.Info("migrations completed")

	repo := repository.NewSQLiteRepository(db)
	svc := services.NewFlashcardService(repo)

	handler := api.NewHandler(svc, zl)
	webHandler, err := api.NewWebHandler(svc, zl, cfg.TemplatesPath)
	if err != nil {
		zl.Fatal("failed to load templates", zap.Error(err))
	}

	router := api.NewRouter(handler, webHandler, zl, cfg.StaticPath)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zl.Info("server starting", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zl.Error("shutdown failed", zap.Error(err))
	}
}
