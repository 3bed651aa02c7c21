package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Mail transports selectable with MAIL_TRANSPORT.
const (
	TransportSMTP       = "smtp"
	TransportMailerSend = "mailersend"
	TransportLog        = "log"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// Origins allowed to call the API from a browser
	AllowedOrigins []string
	// Mail transport
	MailTransport    string
	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	MailerSendAPIKey string
	MailSendTimeout  time.Duration
	// Sender and business mailbox
	MailFrom       string
	MailFromName   string
	ContactEmailTo string
	// Branding used in the emails and the form page
	BrandName     string
	BusinessPhone string
	// Optional files
	AuditLogFile   string
	SiteConfigFile string
}

// LoadConfig reads .env (if present) and the environment. It fails when the
// selected mail transport is missing credentials so the process never starts
// half-configured.
func LoadConfig() (*Config, error) {
	// .env is a local convenience; production sets real environment variables
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "debug"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		AllowedOrigins:   getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		MailTransport:    strings.ToLower(getEnv("MAIL_TRANSPORT", TransportSMTP)),
		SMTPHost:         getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		MailerSendAPIKey: getEnv("MAILERSEND_API_KEY", ""),
		MailSendTimeout:  time.Duration(getEnvInt("MAIL_SEND_TIMEOUT_SECONDS", 10)) * time.Second,
		MailFrom:         strings.TrimSpace(getEnv("MAIL_FROM", "")),
		BrandName:        getEnv("BRAND_NAME", "Dev Scholar"),
		BusinessPhone:    getEnv("BUSINESS_PHONE", ""),
		AuditLogFile:     getEnv("AUDIT_LOG_FILE", ""),
		SiteConfigFile:   getEnv("SITE_CONFIG_FILE", ""),
	}
	cfg.MailFromName = getEnv("MAIL_FROM_NAME", cfg.BrandName)
	cfg.ContactEmailTo = strings.TrimSpace(getEnv("CONTACT_EMAIL_TO", cfg.MailFrom))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the mail settings are complete.
func (c *Config) Validate() error {
	var errs []error

	if c.MailFrom == "" {
		errs = append(errs, errors.New("MAIL_FROM is required"))
	}
	if c.ContactEmailTo == "" {
		errs = append(errs, errors.New("CONTACT_EMAIL_TO is required when MAIL_FROM is empty"))
	}

	switch c.MailTransport {
	case TransportSMTP:
		if c.SMTPHost == "" || c.SMTPPort == "" {
			errs = append(errs, errors.New("SMTP_HOST and SMTP_PORT are required for the smtp transport"))
		}
		if c.SMTPUsername == "" || c.SMTPPassword == "" {
			errs = append(errs, errors.New("SMTP_USERNAME and SMTP_PASSWORD are required for the smtp transport"))
		}
	case TransportMailerSend:
		if c.MailerSendAPIKey == "" {
			errs = append(errs, errors.New("MAILERSEND_API_KEY is required for the mailersend transport"))
		}
	case TransportLog:
		if c.IsProduction() {
			errs = append(errs, errors.New("the log transport cannot be used with GIN_MODE=release"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown MAIL_TRANSPORT %q", c.MailTransport))
	}

	if c.MailSendTimeout <= 0 {
		errs = append(errs, errors.New("MAIL_SEND_TIMEOUT_SECONDS must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// IsProduction reports whether gin runs in release mode.
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

// getEnvList splits a comma separated variable, dropping empty entries
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimRight(strings.TrimSpace(part), "/"); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
