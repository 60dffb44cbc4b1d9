package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultOfferings are the service names accepted by the contact form when
// SERVICE_OFFERINGS is not set. They match the pricing tier identifiers.
var DefaultOfferings = []string{"Starter Forge", "Master Forge", "Hive-Mind Waitlist"}

type Config struct {
	Port     string
	GinMode  string
	SiteURL  string
	LogLevel string
	// Offerings is the fixed set of values accepted for serviceInterest
	Offerings []string
	// SMTP Configuration
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string // Verified sender email (different from SMTP login)
	ContactEmailTo string
	// Mailgun Configuration (alternative to SMTP)
	MailgunDomain   string
	MailgunAPIKey   string
	MailgunFromName string
	// Lead store (optional)
	DBUrl string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	ContactRateLimit         int
	RateLimitGlobalThreshold int
	// Flash cookie signing key
	FlashSecret    string
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	// Only effective locally; production injects env vars directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", "debug"),
		SiteURL:   strings.TrimRight(getEnv("SITE_URL", "http://localhost:8080"), "/"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		Offerings: getEnvList("SERVICE_OFFERINGS", DefaultOfferings),
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", "noreply@northern-forge.com"),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "alex@northern-forge.com"),
		// Mailgun Configuration
		MailgunDomain:   getEnv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey:   getEnv("MAILGUN_API_KEY", ""),
		MailgunFromName: getEnv("MAILGUN_FROM_NAME", "Northern Forge AI"),
		DBUrl:           getEnv("DATABASE_URL", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		ContactRateLimit:         getEnvInt("CONTACT_RATE_LIMIT", 5),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 120),
		FlashSecret:              getEnv("FLASH_SECRET", ""),
		AllowedOrigins:           getEnvList("ALLOWED_ORIGINS", []string{"https://northern-forge.com", "https://www.northern-forge.com"}),
	}

	if cfg.FlashSecret == "" {
		log.Println("WARNING: FLASH_SECRET is missing. Using an insecure development key.")
		cfg.FlashSecret = "northern-forge-dev-flash-key"
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether gin runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blank entries.
// An unset or all-blank variable yields the fallback.
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
