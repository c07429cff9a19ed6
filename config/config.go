package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"nailstudio-backend/models"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	PublicBaseURL string

	DBDriver string
	DBURL    string

	AdminPIN       string
	JWTSecret      string
	JWTExpiryHours int

	BusinessPhone       string
	BusinessName        string
	Timezone            string
	OpeningHour         int
	ClosingHour         int
	DefaultSlotInterval int
	ThankYouDelay       time.Duration

	CORSOrigins []string

	RedisAddr          string
	RedisPassword      string
	RateLimitPerMinute int

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioWhatsAppNumber string
	ReminderCron         string
	RemindersEnabled     bool

	AWSRegion     string
	ReportsBucket string

	WebhookTimeout time.Duration

	OTelEnabled      bool
	OTelEndpoint     string
	OTelSampleRatio  float64
	OTelServiceName  string
	SlowRequestLimit time.Duration
}

// Load reads configuration from the environment. Call godotenv.Load first to
// pick up a local .env file.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),

		DBDriver: strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBURL:    getEnv("DB_URL", ""),

		AdminPIN:       getEnv("ADMIN_PIN", "2024"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 24),

		BusinessPhone:       getEnv("BUSINESS_PHONE", "595992698406"),
		BusinessName:        getEnv("BUSINESS_NAME", "Nails by Diva"),
		Timezone:            getEnv("TIMEZONE", "America/Asuncion"),
		OpeningHour:         getEnvAsInt("OPENING_HOUR", 8),
		ClosingHour:         getEnvAsInt("CLOSING_HOUR", 21),
		DefaultSlotInterval: getEnvAsInt("DEFAULT_SLOT_INTERVAL", 90),
		ThankYouDelay:       getEnvAsDuration("THANK_YOU_DELAY", 150*time.Minute),

		CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),

		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 20),

		TwilioAccountSID:     getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:      getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioWhatsAppNumber: getEnv("TWILIO_WHATSAPP_NUMBER", ""),
		ReminderCron:         getEnv("REMINDER_CRON", "0 9 * * *"),
		RemindersEnabled:     getEnvAsBool("REMINDERS_ENABLED", true),

		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		ReportsBucket: getEnv("REPORTS_BUCKET", ""),

		WebhookTimeout: getEnvAsDuration("WEBHOOK_TIMEOUT", 10*time.Second),

		OTelEnabled:      getEnvAsBool("OTEL_ENABLED", false),
		OTelEndpoint:     getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		OTelSampleRatio:  getEnvAsFloat("OTEL_SAMPLING_RATIO", 1),
		OTelServiceName:  getEnv("OTEL_SERVICE_NAME", "nailstudio-backend"),
		SlowRequestLimit: getEnvAsDuration("SLOW_REQUEST_THRESHOLD", 200*time.Millisecond),
	}
}

// Validate rejects schedule settings that would leave the salon without slots.
func (c *Config) Validate() error {
	if !models.ValidSlotInterval(c.DefaultSlotInterval) {
		return fmt.Errorf("config: DEFAULT_SLOT_INTERVAL must be 60 or 90, got %d", c.DefaultSlotInterval)
	}
	if !models.ValidHours(c.OpeningHour, c.ClosingHour) {
		return fmt.Errorf("config: invalid OPENING_HOUR/CLOSING_HOUR %d-%d", c.OpeningHour, c.ClosingHour)
	}
	return nil
}

// IsDevelopment reports whether the service runs in a local environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == "local"
}

// TwilioEnabled is true when automated WhatsApp sends can go through Twilio.
func (c *Config) TwilioEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioWhatsAppNumber != ""
}

// Location resolves the salon timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

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

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
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

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
