package config

import "os"

// Config collects every environment setting the server reads. Exactly
// one storage backend is picked at startup: Google Sheets when a
// spreadsheet is configured, Postgres when a database URL is, and an
// in-memory store otherwise.
type Config struct {
	Port string

	// Storage backends, in order of preference.
	SpreadsheetID         string
	GoogleCredentialsFile string
	DatabaseURL           string

	// Admin surface.
	AdminEmail        string
	AdminPasswordHash string
	JWTSecret         string

	// Notifications.
	SMSEnabled bool
}

func Load() Config {
	return Config{
		Port:                  getenv("PORT", "8080"),
		SpreadsheetID:         os.Getenv("SPREADSHEET_ID"),
		GoogleCredentialsFile: os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		AdminEmail:            os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash:     os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		SMSEnabled:            os.Getenv("TWILIO_ACCOUNT_SID") != "",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
