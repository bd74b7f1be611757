package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m7mdrf3t/LoadBalancer/adapters/redis"
	"github.com/m7mdrf3t/LoadBalancer/handlers"
	"github.com/m7mdrf3t/LoadBalancer/interfaces"
	"github.com/m7mdrf3t/LoadBalancer/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting LoadBalancer service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"redis_addr", config.Redis.Addr,
		"session_ttl", config.SessionTTL,
		"audit_log_limit", config.AuditLogLimit,
	)

	now := func() time.Time {
		return time.Now().UTC()
	}

	var (
		slotStore    interfaces.SlotStore
		slotCounters interfaces.SlotCounters
		sessionStore interfaces.SessionStore
		auditLog     interfaces.AuditLog
		pinger       interfaces.Pinger
	)
	{
		redisClient, err := redis.NewRedisUniversalClient(config.Redis.Addr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")

		store := redis.NewSlotStore(redisClient, logger)
		slotStore = store
		slotCounters = store
		sessionStore = redis.NewSessionStore(redisClient)
		auditLog = redis.NewAuditLog(redisClient, config.AuditLogLimit)
		pinger = redis.NewPinger(redisClient)
	}

	var (
		admission *service.Admission
		lifecycle *service.Lifecycle
		registry  *service.Registry
		monitor   *service.Monitor
	)
	{
		registry = service.NewRegistry(slotStore, logger)
		admission = service.NewAdmission(slotStore, slotCounters, sessionStore, auditLog, config.SessionTTL, now, logger)
		lifecycle = service.NewLifecycle(slotStore, slotCounters, sessionStore, auditLog, now, logger)
		monitor = service.NewMonitor(slotStore, slotCounters, logger)
	}

	// Seed the default slot before serving traffic (idempotent).
	if config.DefaultSlot != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := service.SeedDefaultSlot(ctx, registry, slotStore, *config.DefaultSlot, logger); err != nil {
			cancel()
			level.Error(logger).Log("msg", "Failed to seed default slot", "err", err)
			os.Exit(1)
		}
		cancel()
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		handlers.RegisterHandlers(e, handlers.NewHTTPServer(admission, lifecycle, registry, monitor, auditLog, pinger, logger))
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}
