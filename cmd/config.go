package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/m7mdrf3t/LoadBalancer/adapters/redis"
	"github.com/m7mdrf3t/LoadBalancer/domain"
)

type LoadBalancerConfig struct {
	Redis         redis.RedisConfig
	HTTPPort      int
	SessionTTL    time.Duration
	AuditLogLimit int64
	// DefaultSlot, when non-nil, is seeded into the registry on boot.
	DefaultSlot *domain.Slot
}

// LoadConfig loads configuration from environment variables.
// REDIS_ADDR and SERVICE_PORT_HTTP are required.
func LoadConfig() (*LoadBalancerConfig, error) {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is required")
	}

	httpPortStr := os.Getenv("SERVICE_PORT_HTTP")
	if httpPortStr == "" {
		return nil, fmt.Errorf("SERVICE_PORT_HTTP is required")
	}
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVICE_PORT_HTTP: %w", err)
	}

	config := &LoadBalancerConfig{
		Redis: redis.RedisConfig{
			Addr: redisAddr,
		},
		HTTPPort:      httpPort,
		SessionTTL:    15 * time.Minute,
		AuditLogLimit: 200,
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("SESSION_TTL must be positive")
		}
		config.SessionTTL = d
	}

	if v := os.Getenv("AUDIT_LOG_LIMIT"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid AUDIT_LOG_LIMIT: %w", err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("AUDIT_LOG_LIMIT must be positive")
		}
		config.AuditLogLimit = n
	}

	seed, err := loadDefaultSlot()
	if err != nil {
		return nil, err
	}
	config.DefaultSlot = seed

	return config, nil
}

// loadDefaultSlot reads the optional DEFAULT_SLOT_* variables. All of id,
// credential and target id must be set together; capacity defaults to 1.
func loadDefaultSlot() (*domain.Slot, error) {
	id := os.Getenv("DEFAULT_SLOT_ID")
	credential := os.Getenv("DEFAULT_SLOT_CREDENTIAL")
	targetID := os.Getenv("DEFAULT_SLOT_TARGET_ID")

	if id == "" && credential == "" && targetID == "" {
		return nil, nil
	}
	if id == "" || credential == "" || targetID == "" {
		return nil, fmt.Errorf("DEFAULT_SLOT_ID, DEFAULT_SLOT_CREDENTIAL and DEFAULT_SLOT_TARGET_ID must be set together")
	}

	capacity := int64(1)
	if v := os.Getenv("DEFAULT_SLOT_CAPACITY"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DEFAULT_SLOT_CAPACITY: %w", err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("DEFAULT_SLOT_CAPACITY must be positive")
		}
		capacity = n
	}

	return &domain.Slot{
		ID:         id,
		Credential: credential,
		TargetID:   targetID,
		Capacity:   capacity,
		Enabled:    true,
	}, nil
}
