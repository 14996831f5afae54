// backend-go/cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tokostock/backend-go/internal/api"
	"github.com/tokostock/backend-go/internal/cache"
	"github.com/tokostock/backend-go/internal/config"
	"github.com/tokostock/backend-go/internal/repository/postgres"
	"github.com/tokostock/backend-go/internal/service"
	"github.com/tokostock/backend-go/pkg/logger"
)

func main() {
	cfg := config.Load()

	if cfg.Server.Mode == "debug" {
		logger.SetLevel("debug")
		gin.SetMode(gin.DebugMode)
	} else {
		logger.SetLevel("info")
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	restockCache, err := cache.NewRestockCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Restock cache unavailable, continuing without caching")
		restockCache = cache.NewNoopRestockCache()
	}

	salesRepo := postgres.NewSalesRepository(db.DB)
	productRepo := postgres.NewProductRepository(db)
	runRepo := postgres.NewRunRepository(db.DB)

	services := &api.Services{
		SegmentationService: service.NewSegmentationService(salesRepo, productRepo, runRepo, restockCache),
		RestockService:      service.NewRestockService(productRepo, restockCache),
	}

	router := api.NewRouter(services, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
