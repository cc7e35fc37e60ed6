package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DatabaseURL         string
	AlertScanInterval   time.Duration
	FirebaseCredentials string
	FCMTopic            string
	GoogleProjectID     string
	GooglePubSubTopic   string
	GoogleCredentials   string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	scanInterval := 1 * time.Minute
	if raw := os.Getenv("ALERT_SCAN_INTERVAL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			scanInterval = parsed
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=teamhub port=5432 sslmode=disable"),
		AlertScanInterval:   scanInterval,
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		FCMTopic:            getEnv("FCM_TOPIC", "reminders"),
		GoogleProjectID:     getEnv("GOOGLE_PROJECT_ID", ""),
		GooglePubSubTopic:   getEnv("GOOGLE_PUBSUB_TOPIC", "reminder-alerts"),
		GoogleCredentials:   getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
