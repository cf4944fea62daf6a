package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Dispatch modes supported by the form submitter
const (
	DispatchModeWebhook  = "webhook"
	DispatchModeWhatsApp = "whatsapp"
	DispatchModeEmail    = "email"
)

type Config struct {
	ServerPort     string
	Environment    string
	AppURL         string
	AllowedOrigins []string
	Timezone       string
	// Form dispatch
	DispatchMode           string
	ConsultationWebhookURL string
	ContactWebhookURL      string
	WebhookRatePerMinute   int
	WhatsAppNumber         string
	WhatsAppDomain         string
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	NotifyEmail   string
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Logging
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:             getEnv("SERVER_PORT", "8080"),
		Environment:            getEnv("ENVIRONMENT", "development"),
		AppURL:                 strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		AllowedOrigins:         strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		Timezone:               getEnv("TIMEZONE", "America/New_York"),
		DispatchMode:           strings.ToLower(getEnv("DISPATCH_MODE", DispatchModeWebhook)),
		ConsultationWebhookURL: getEnv("CONSULTATION_WEBHOOK_URL", ""),
		ContactWebhookURL:      getEnv("CONTACT_WEBHOOK_URL", ""),
		WebhookRatePerMinute:   getEnvInt("WEBHOOK_RATE_PER_MINUTE", 30),
		WhatsAppNumber:         getEnv("WHATSAPP_NUMBER", "+1 (419) 607-7952"),
		WhatsAppDomain:         getEnv("WHATSAPP_DOMAIN", "wa.me"),
		ResendAPIKey:           getEnv("RESEND_API_KEY", ""),
		EmailFrom:              getEnv("EMAIL_FROM", "noreply@mjohnabraham.law"),
		EmailFromName:          getEnv("EMAIL_FROM_NAME", "M. John Abraham Website"),
		EmailTestMode:          getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		NotifyEmail:            getEnv("NOTIFY_EMAIL", "martezjohnabraham@gmail.com"),
		TurnstileSiteKey:       getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey:     getEnv("TURNSTILE_SECRET_KEY", ""),
		LogFile:                getEnv("LOG_FILE", ""),
		LogMaxSizeMB:           getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups:          getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays:          getEnvInt("LOG_MAX_AGE_DAYS", 28),
	}
}

// Validate reports configuration problems for the selected dispatch mode.
// Problems are returned rather than fatal: a missing webhook URL is answered
// per request with a server configuration error.
func (c *Config) Validate() []string {
	var problems []string

	switch c.DispatchMode {
	case DispatchModeWebhook:
		if c.ConsultationWebhookURL == "" {
			problems = append(problems, "CONSULTATION_WEBHOOK_URL is not set")
		}
		if c.ContactWebhookURL == "" {
			problems = append(problems, "CONTACT_WEBHOOK_URL is not set")
		}
	case DispatchModeWhatsApp:
		if c.WhatsAppNumber == "" {
			problems = append(problems, "WHATSAPP_NUMBER is not set")
		}
	case DispatchModeEmail:
		if c.NotifyEmail == "" {
			problems = append(problems, "NOTIFY_EMAIL is not set")
		}
		if c.ResendAPIKey == "" && !c.EmailTestMode {
			problems = append(problems, "RESEND_API_KEY is not set and EMAIL_TEST_MODE is off")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown DISPATCH_MODE %q", c.DispatchMode))
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("invalid TIMEZONE %q: %v", c.Timezone, err))
	}

	return problems
}

// Location returns the configured timezone, falling back to UTC
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[WARNING] Invalid integer for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
