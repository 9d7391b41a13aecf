package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/food-dashboard/internal/config"
	"github.com/Lixing-Zhang/food-dashboard/internal/dashboard"
	"github.com/Lixing-Zhang/food-dashboard/internal/foodapi"
	"github.com/Lixing-Zhang/food-dashboard/internal/handlers"
	"github.com/Lixing-Zhang/food-dashboard/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting food dashboard",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"foods_api", cfg.FoodsAPI.BaseURL,
		"log_level", cfg.LogLevel,
		"api_auth", len(cfg.Auth.APIKeys) > 0,
	)

	client := foodapi.NewClient(cfg.FoodsAPI.BaseURL,
		foodapi.WithAPIKey(cfg.FoodsAPI.APIKey),
		foodapi.WithTimeout(time.Duration(cfg.FoodsAPI.Timeout)*time.Second),
	)
	dash := dashboard.New(client, log)
	router := handlers.NewRouter(dash, cfg.Auth, log)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// let edit submissions that closed their modal reach the backend
	router.Page.Wait()

	log.Info("server stopped gracefully")
}
