package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Session  SessionConfig
	Admin    AdminConfig
	SMTP     SMTPConfig
	Sheets   SheetsConfig
	Offer    OfferConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// SessionConfig holds the admin session token configuration
type SessionConfig struct {
	Secret     string
	Expiration string
}

// AdminConfig holds the operator credentials. The password is stored as a
// bcrypt hash, never in plain text.
type AdminConfig struct {
	PasswordHash string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// SheetsConfig points at the two Google spreadsheets the importer reads.
type SheetsConfig struct {
	CredentialsFile       string
	CandidateSpreadsheet  string
	CandidateRange        string
	PreferenceSpreadsheet string
	PreferenceRange       string
}

// OfferConfig holds offer lifecycle settings. A single expiry window covers
// every creation and resend path.
type OfferConfig struct {
	Expiry time.Duration
}

func Load() (*Config, error) {
	// A missing .env file is fine in production, variables come from the
	// environment there.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "sandevex-hiring"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.Session = SessionConfig{
		Secret:     getEnv("SESSION_SECRET", ""),
		Expiration: getEnv("SESSION_EXPIRATION_TIME", "168h"),
	}

	config.Admin = AdminConfig{
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", ""),
		FromName: getEnv("SMTP_FROM_NAME", "Sandevex Hiring"),
	}

	config.Sheets = SheetsConfig{
		CredentialsFile:       getEnv("SHEETS_CREDENTIALS_FILE", ""),
		CandidateSpreadsheet:  getEnv("SHEETS_CANDIDATE_SPREADSHEET_ID", ""),
		CandidateRange:        getEnv("SHEETS_CANDIDATE_RANGE", "Form Responses 1!A2:P"),
		PreferenceSpreadsheet: getEnv("SHEETS_PREFERENCE_SPREADSHEET_ID", ""),
		PreferenceRange:       getEnv("SHEETS_PREFERENCE_RANGE", "Form Responses 1!A2:M"),
	}

	offerExpiry, err := time.ParseDuration(getEnv("OFFER_EXPIRY", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid OFFER_EXPIRY: %w", err)
	}
	config.Offer = OfferConfig{Expiry: offerExpiry}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if c.Admin.PasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if c.Offer.Expiry <= 0 {
		return fmt.Errorf("OFFER_EXPIRY must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
