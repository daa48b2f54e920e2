package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDSN         string
	LogFile       string
	TemplatesDir  string
	GeminiAPIKey  string
	GeminiBaseURL string
}

func Load() Config {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg := Config{
		Port:          getenv("PORT", "8080"),
		DBDSN:         getenv("DB_DSN", ":memory:"),
		LogFile:       os.Getenv("LOG_FILE"),
		TemplatesDir:  getenv("TEMPLATES_DIR", "./web/templates"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s GEMINI_API_KEY=%s",
		cfg.Port, cfg.DBDSN, cfg.LogFile, mask(cfg.GeminiAPIKey))
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mask(s string) string {
	if s == "" {
		return "(unset)"
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + strings.Repeat("*", 4)
}
