// internal/config/config.go
package config

import (
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	CORSOrigin  string

	// SMTP settings for the operator template-preview mailer.
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string
	SMTPFrom     string
	SMTPFromName string
	SMTPTLS      bool

	// Review-platform console used for reputation snapshots.
	ConsoleBaseURL  string
	ConsoleUsername string
	ConsolePassword string
}

func Load() *Config {
	// A local .env is optional; real deployments use the environment.
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		host := getEnv("PSQL_HOST", "localhost")
		port := getEnv("PSQL_PORT", "5432")
		user := getEnv("PSQL_USER", "postgres")
		password := getEnv("PSQL_PASSWORD", "postgres")
		dbName := getEnv("PSQL_DB_NAME", "localboost")

		u := &url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(user, password),
			Host:   host + ":" + port,
			Path:   dbName,
		}
		q := u.Query()
		q.Set("sslmode", "disable")
		u.RawQuery = q.Encode()
		databaseURL = u.String()
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		DatabaseURL: databaseURL,
		CORSOrigin:  getEnv("CORS_ORIGIN", "http://localhost:5173"),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPass:     os.Getenv("SMTP_PASS"),
		SMTPFrom:     getEnv("SMTP_FROM", "no-reply@localboost.app"),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "LocalBoost"),
		SMTPTLS:      os.Getenv("SMTP_TLS") == "true",

		ConsoleBaseURL:  os.Getenv("REVIEW_CONSOLE_URL"),
		ConsoleUsername: os.Getenv("REVIEW_CONSOLE_USER"),
		ConsolePassword: os.Getenv("REVIEW_CONSOLE_PASSWORD"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
