package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"periscope/internal/config"
	"periscope/internal/handler"
	"periscope/internal/repository"
	"periscope/internal/service"
	"periscope/internal/upstream"
	"periscope/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Periscope API
// @version 1.0
// @description Proxy stats dashboard backend: queries, aggregates and archives per-host proxy network stats

// @contact.name API Support
// @contact.url http://www.example.com/support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Upstream stats API client
	fetcher := upstream.NewClient(&cfg.Upstream)

	// Cache backend
	cache := buildCache(cfg)
	defer cache.Close()

	// Archive is optional; without a DSN the nil repository degrades every
	// archive call to a no-op and the service runs cache-only
	var archive *repository.MySQLRepository
	if cfg.Archive.MySQL.DSN != "" {
		archive = repository.NewMySQLRepository(&cfg.Archive.MySQL)
		defer archive.Close()
	} else {
		log.Warn().Msg("No archive DSN configured, running without the archive fallback")
	}

	// Initialize services
	statsSvc := service.NewStatsService(fetcher, cache, archive, cfg)
	geoSvc := service.NewGeoService(fetcher, cache)

	// Background refresh
	refresher := service.NewRefresher(statsSvc, cfg.Refresh.Interval)
	refresher.Start()
	defer refresher.Stop()

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(corsMiddleware())

	statsHandler := handler.NewStatsHandler(statsSvc)
	geoHandler := handler.NewGeoHandler(geoSvc)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/stats", statsHandler.List)
		v1.GET("/stats/summary", statsHandler.Summary)
		v1.GET("/stats/timeseries", statsHandler.TimeSeries)
		v1.GET("/stats/top", statsHandler.Top)
		v1.GET("/stats/hosts/:host/activity", statsHandler.HostActivity)
		v1.GET("/stats/export", statsHandler.Export)
		v1.POST("/stats/refresh", statsHandler.Refresh)

		v1.GET("/geo", geoHandler.Geo)
		v1.GET("/geo/summary", geoHandler.GeoSummary)
	}

	// Swagger documentation
	setupSwagger(router)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// buildCache picks the configured cache backend
func buildCache(cfg *config.Config) repository.CacheRepository {
	if cfg.Cache.Backend == "redis" {
		return repository.NewRedisCache(&cfg.Cache.Redis, cfg.Cache.TTL)
	}
	return repository.NewMemoryCache(cfg.Cache.TTL)
}

// corsMiddleware adds CORS headers for the dashboard frontend
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
