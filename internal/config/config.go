package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultJWTAccessTTL    = "720h" // mobile sessions stay valid for 30 days
	defaultListenAddr      = ":5001"
	defaultDatabaseDSN     = "gentlecare.db"
	defaultCheckInterval   = "15m"
	defaultUpcomingWindow  = "15m"
	defaultMissedGrace     = "2h"
	defaultCalorieFloor    = "1500"
	defaultNotifierEnabled = "true"
)

type Config struct {
	AppEnv      string
	ListenAddr  string
	DatabaseDSN string
	JWTSecret   string
	JWTTTL      time.Duration

	NotifierEnabled bool
	CheckInterval   time.Duration
	UpcomingWindow  time.Duration
	MissedGrace     time.Duration
	CalorieFloor    int
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.DatabaseDSN = getEnv("DATABASE_URL", defaultDatabaseDSN)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}
	cfg.CheckInterval, err = parseDurationEnv("NOTIFIER_CHECK_INTERVAL", defaultCheckInterval)
	if err != nil {
		return nil, err
	}
	cfg.UpcomingWindow, err = parseDurationEnv("NOTIFIER_UPCOMING_WINDOW", defaultUpcomingWindow)
	if err != nil {
		return nil, err
	}
	cfg.MissedGrace, err = parseDurationEnv("NOTIFIER_MISSED_GRACE", defaultMissedGrace)
	if err != nil {
		return nil, err
	}
	cfg.CalorieFloor, err = parseIntEnv("NOTIFIER_CALORIE_FLOOR", defaultCalorieFloor)
	if err != nil {
		return nil, err
	}
	cfg.NotifierEnabled, err = parseBoolEnv("NOTIFIER_ENABLED", defaultNotifierEnabled)
	if err != nil {
		return nil, err
	}

	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, raw, err)
	}
	return d, nil
}

func parseIntEnv(key, fallback string) (int, error) {
	raw := getEnv(key, fallback)
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, raw, err)
	}
	return n, nil
}

func parseBoolEnv(key, fallback string) (bool, error) {
	raw := getEnv(key, fallback)
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("invalid %s=%q: %w", key, raw, err)
	}
	return b, nil
}
