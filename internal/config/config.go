package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	ServerPort string
	GinMode    string

	// Upstream services
	BackendURL     string
	BackendTimeout time.Duration
	ClassifierURL  string
	ClassifierMode string

	// State stores
	MongoURI      string
	MongoDatabase string
	RedisURI      string

	// Sessions
	SessionSecret string
	SessionTTL    time.Duration
	DisposalTTL   time.Duration
	AdminRoles    []string

	// Item image storage
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool

	// Disposal workflow
	DepositWeight   float64
	RewardPoints    int
	BinOpenDuration time.Duration
	MaxImageSize    int64

	// Reward reconciliation
	RewardWorkers   int
	RewardQueueSize int

	// Dashboards
	DashboardTimezone string
}

// Load reads configuration from .env file and environment variables
func Load() *Config {
	// Load .env file (ignore error if file doesn't exist - env vars may be set directly)
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		BackendURL:        strings.TrimRight(getEnv("BACKEND_URL", "https://ecobin-back.onrender.com"), "/"),
		BackendTimeout:    parseDuration(getEnv("BACKEND_TIMEOUT", "15s")),
		ClassifierURL:     getEnv("CLASSIFIER_URL", "https://geminiapp-dp6r.onrender.com/classify"),
		ClassifierMode:    getEnv("CLASSIFIER_MODE", "http"),
		MongoURI:          getEnvRequired("MONGO_URI"),
		MongoDatabase:     getEnvRequired("MONGO_DATABASE"),
		RedisURI:          getEnv("REDIS_URI", "localhost:6379"),
		SessionSecret:     getEnvRequired("SESSION_SECRET"),
		SessionTTL:        parseDuration(getEnv("SESSION_TTL", "24h")),
		DisposalTTL:       parseDuration(getEnv("DISPOSAL_TTL", "1h")),
		AdminRoles:        parseList(getEnv("ADMIN_ROLES", "admin")),
		S3Endpoint:        getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey:       getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey:       getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:          getEnv("S3_BUCKET", "disposal-items"),
		S3UseSSL:          getEnv("S3_USE_SSL", "false") == "true",
		DepositWeight:     parseFloat(getEnv("DEPOSIT_WEIGHT", "100")),
		RewardPoints:      parseInt(getEnv("REWARD_POINTS", "10")),
		BinOpenDuration:   parseDuration(getEnv("BIN_OPEN_DURATION", "4s")),
		MaxImageSize:      int64(parseInt(getEnv("MAX_IMAGE_SIZE", "10485760"))),
		RewardWorkers:     parseInt(getEnv("REWARD_WORKERS", "2")),
		RewardQueueSize:   parseInt(getEnv("REWARD_QUEUE_SIZE", "100")),
		DashboardTimezone: getEnv("DASHBOARD_TIMEZONE", "UTC"),
	}

	return cfg
}

// Location resolves the dashboard timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DashboardTimezone)
	if err != nil {
		log.Printf("Unknown DASHBOARD_TIMEZONE %q, using UTC", c.DashboardTimezone)
		return time.UTC
	}
	return loc
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable and exits if not set
func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

// parseDuration parses a duration string, exits on error
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("Invalid duration format: %s", s)
	}
	return d
}

// parseInt parses an integer, exits on error
func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("Invalid integer: %s", s)
	}
	return n
}

// parseFloat parses a float, exits on error
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid number: %s", s)
	}
	return f
}

// parseList splits a comma separated list, dropping blanks
func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
