package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Google Calendar
	CalendarID             string
	GoogleCredentialsJSON  string
	GoogleCredentialsFile  string
	CalendarRequestTimeout time.Duration

	// Gemini
	GeminiAPIKey      string
	GeminiModelID     string
	GeminiMaxTokens   int
	GeminiTemperature float64
	LLMRequestTimeout time.Duration

	// Scheduling
	BusinessTimezone string
	HorizonDays      int

	// Knowledge store
	RedisAddr     string
	RedisPassword string

	// Booking audit log (optional)
	DatabaseURL string

	// Front desk notifications (optional)
	SendGridAPIKey     string
	SendGridFromEmail  string
	SendGridFromName   string
	FrontDeskEmail     string
	FrontDeskEmailName string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		CalendarID:             getEnv("CALENDAR_ID", ""),
		GoogleCredentialsJSON:  getEnv("GOOGLE_CREDENTIALS_JSON", ""),
		GoogleCredentialsFile:  getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		CalendarRequestTimeout: getEnvAsDuration("CALENDAR_REQUEST_TIMEOUT", 10*time.Second),

		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModelID:     getEnv("GEMINI_MODEL_ID", "gemini-2.0-flash"),
		GeminiMaxTokens:   getEnvAsInt("GEMINI_MAX_TOKENS", 1024),
		GeminiTemperature: getEnvAsFloat("GEMINI_TEMPERATURE", 0.7),
		LLMRequestTimeout: getEnvAsDuration("LLM_REQUEST_TIMEOUT", 30*time.Second),

		BusinessTimezone: getEnv("BUSINESS_TIMEZONE", "America/New_York"),
		HorizonDays:      getEnvAsInt("HORIZON_DAYS", 21),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		SendGridAPIKey:     getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail:  getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:   getEnv("SENDGRID_FROM_NAME", "Avalon Dental Scheduler"),
		FrontDeskEmail:     getEnv("FRONT_DESK_EMAIL", ""),
		FrontDeskEmailName: getEnv("FRONT_DESK_EMAIL_NAME", "Avalon Dental Front Desk"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
