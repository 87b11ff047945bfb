package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL   string
	AppEnv       string
	HTTPTimeout  time.Duration
	PollInterval time.Duration
	ClientUser   string
	ClientPass   string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:   os.Getenv("API_BASE_URL"),
		AppEnv:       os.Getenv("APP_ENV"),
		HTTPTimeout:  durationEnv("HTTP_TIMEOUT", 15*time.Second),
		PollInterval: durationEnv("POLL_INTERVAL", 5*time.Second),
		ClientUser:   os.Getenv("CLIENT_USER"),
		ClientPass:   os.Getenv("CLIENT_PASS"),
	}

	if cfg.APIBaseURL == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("invalid %s=%q, using default %s", key, raw, fallback)
		return fallback
	}
	return d
}
