package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Email providers understood by Load.
const (
	EmailProviderSMTP     = "smtp"
	EmailProviderSendGrid = "sendgrid"
	EmailProviderSES      = "ses"
	EmailProviderStub     = "stub"
)

// Config holds application configuration
type Config struct {
	Port      string
	Env       string
	LogLevel  string
	LogFormat string

	// Google Sheets
	SheetID               string
	SheetRange            string
	GoogleClientEmail     string
	GooglePrivateKey      string
	GoogleCredentialsFile string
	GoogleSheetsEndpoint  string

	// Notification email
	EmailProvider     string
	EmailUser         string
	EmailPass         string
	EmailFromName     string
	SMTPHost          string
	SMTPPort          int
	LeadReceiverEmail string
	LeadCCEmail       string
	LeadEmailSubject  string
	LeadTimezone      string

	// SendGrid Email Configuration
	SendGridAPIKey string

	// AWS (SES provider)
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "4000"),
		Env:       getEnv("ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		SheetID:               getEnv("GOOGLE_SHEET_ID", ""),
		SheetRange:            getEnv("GOOGLE_SHEET_RANGE", "Sheet1!A:E"),
		GoogleClientEmail:     getEnv("GOOGLE_CLIENT_EMAIL", ""),
		GooglePrivateKey:      getEnv("GOOGLE_PRIVATE_KEY", ""),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		GoogleSheetsEndpoint:  getEnv("GOOGLE_SHEETS_ENDPOINT", ""),

		EmailProvider:     strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", EmailProviderSMTP))),
		EmailUser:         getEnv("EMAIL_USER", ""),
		EmailPass:         getEnv("EMAIL_PASS", ""),
		EmailFromName:     getEnv("EMAIL_FROM_NAME", "SkillupX Leads"),
		SMTPHost:          getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:          getEnvAsInt("SMTP_PORT", 587),
		LeadReceiverEmail: getEnv("LEAD_RECEIVER_EMAIL", ""),
		LeadCCEmail:       getEnv("LEAD_CC_EMAIL", ""),
		LeadEmailSubject:  getEnv("LEAD_EMAIL_SUBJECT", "New SkillupX Lead"),
		LeadTimezone:      getEnv("LEAD_TIMEZONE", "Asia/Kolkata"),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),

		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),
	}
}

// HasServiceAccountKey reports whether inline service-account credentials were supplied.
func (c *Config) HasServiceAccountKey() bool {
	return strings.TrimSpace(c.GoogleClientEmail) != "" && strings.TrimSpace(c.GooglePrivateKey) != ""
}

// Validate reports every missing setting the selected providers need.
func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.SheetID) == "" {
		missing = append(missing, "GOOGLE_SHEET_ID")
	}
	if !c.HasServiceAccountKey() {
		path := strings.TrimSpace(c.GoogleCredentialsFile)
		if path == "" {
			missing = append(missing, "GOOGLE_CLIENT_EMAIL/GOOGLE_PRIVATE_KEY or GOOGLE_CREDENTIALS_FILE")
		} else if _, err := os.Stat(path); err != nil {
			missing = append(missing, fmt.Sprintf("GOOGLE_CLIENT_EMAIL/GOOGLE_PRIVATE_KEY or GOOGLE_CREDENTIALS_FILE (%s not readable)", path))
		}
	}
	if strings.TrimSpace(c.LeadReceiverEmail) == "" {
		missing = append(missing, "LEAD_RECEIVER_EMAIL")
	}
	if strings.TrimSpace(c.EmailUser) == "" {
		missing = append(missing, "EMAIL_USER")
	}

	switch c.EmailProvider {
	case EmailProviderSMTP:
		if strings.TrimSpace(c.EmailPass) == "" {
			missing = append(missing, "EMAIL_PASS")
		}
	case EmailProviderSendGrid:
		if strings.TrimSpace(c.SendGridAPIKey) == "" {
			missing = append(missing, "SENDGRID_API_KEY")
		}
	case EmailProviderSES, EmailProviderStub:
	default:
		return fmt.Errorf("config: unknown EMAIL_PROVIDER %q", c.EmailProvider)
	}

	if len(missing) > 0 {
		return errors.New("config: missing " + strings.Join(missing, ", "))
	}
	return nil
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
