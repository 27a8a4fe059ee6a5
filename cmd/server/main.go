package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	config "github.com/sre-monitoring/hello-world-app/configs"
	"github.com/sre-monitoring/hello-world-app/internal/application/services"
	"github.com/sre-monitoring/hello-world-app/internal/infrastructure/db"
	"github.com/sre-monitoring/hello-world-app/internal/infrastructure/health"
	"github.com/sre-monitoring/hello-world-app/internal/infrastructure/httpserver"
	"github.com/sre-monitoring/hello-world-app/internal/infrastructure/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger := newLogger(&cfg.Log)
	logger.Info("Starting hello world service...")

	// Open database pool; an unreachable server is reported by /health, not fatal
	database, err := db.NewDatabaseWithConfig(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to open database:", err)
	}
	defer database.Close()

	redisClient := redis.NewClient(&cfg.Redis)
	defer redisClient.Close()
	cache := redis.NewPinger(redisClient)

	healthService := services.NewHealthService(
		health.NewDBHealthChecker(database),
		health.NewRedisHealthChecker(cache),
		&services.HealthServiceConfig{ProbeTimeout: cfg.Health.ProbeTimeout},
		logger,
	)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), cfg.Health.ProbeTimeout)
	report := healthService.Report(startupCtx)
	cancelStartup()
	logger.WithFields(logrus.Fields{
		"database": report.Services["database"],
		"redis":    report.Services["redis"],
	}).Info("Initial dependency status")

	serverConfig := &httpserver.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		TLSCertFile:    cfg.Server.TLSCertFile,
		TLSKeyFile:     cfg.Server.TLSKeyFile,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}

	server, err := httpserver.NewServer(serverConfig, logger, httpserver.ServerDeps{
		HealthService: healthService,
		Greeting:      cfg.App.Greeting,
	})
	if err != nil {
		logger.Fatal("Failed to create server:", err)
	}

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}

func newLogger(cfg *config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	if strings.EqualFold(cfg.Format, "text") {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}
	return logger
}
