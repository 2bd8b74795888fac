package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	Timezone      string
	DBPath        string
	JWTSecret     string
	TokenTTLHours int
	UploadDir     string
	FeedbackRepo  string // owner/repo on the issue tracker
	FeedbackToken string
	EnableSignup  bool
	EnableExport  bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	cfg := AppConfig{
		Port:          get("PORT", "8080"),
		Timezone:      get("TZ", "UTC"),
		DBPath:        get("DB_PATH", "growlog.db"),
		JWTSecret:     get("JWT_SECRET", "dev-secret-change-me"),
		TokenTTLHours: getInt("TOKEN_TTL_HOURS", 72),
		UploadDir:     get("UPLOAD_DIR", "uploads"),
		FeedbackRepo:  get("FEEDBACK_REPO", ""),
		FeedbackToken: get("FEEDBACK_TOKEN", ""),
		EnableSignup:  get("ENABLE_SIGNUP", "true") == "true",
		EnableExport:  get("ENABLE_EXPORT", "true") == "true",
	}
	log.Printf("[cfg] port=%s db=%s uploads=%s signup=%v export=%v",
		cfg.Port, cfg.DBPath, cfg.UploadDir, cfg.EnableSignup, cfg.EnableExport)
	return cfg
}

// Features is the public feature-flag map served to the client.
func (c AppConfig) Features() map[string]bool {
	return map[string]bool{
		"signup":   c.EnableSignup,
		"export":   c.EnableExport,
		"feedback": c.FeedbackRepo != "" && c.FeedbackToken != "",
	}
}
