package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration for the report service.
type Config struct {
	ListenAddr      string
	MediaDir        string
	TmpDir          string
	PeriodLabel     string
	WkhtmltopdfPath string
	LogLevel        string
	DebugHTML       bool
}

// FromEnv creates a configuration instance sourced from environment variables.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:      getEnv("REPORT_LISTEN_ADDR", ":8080"),
		MediaDir:        getEnv("REPORT_MEDIA_DIR", "media"),
		TmpDir:          getEnv("REPORT_TMP_DIR", "tmp"),
		PeriodLabel:     getEnv("REPORT_PERIOD_LABEL", "за отчетный период"),
		WkhtmltopdfPath: getEnv("REPORT_WKHTMLTOPDF_PATH", ""),
		LogLevel:        getEnv("REPORT_LOG_LEVEL", "info"),
		DebugHTML:       os.Getenv("REPORT_DEBUG_HTML") != "",
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
