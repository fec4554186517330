package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Email  EmailConfig
	Log    LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Port            string   `envconfig:"PORT" default:"8000"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	BodyLimit       string   `envconfig:"BODY_LIMIT" default:"10M"`
	SwaggerEnabled  bool     `envconfig:"SWAGGER_ENABLED" default:"true"`
	MetricsEnabled  bool     `envconfig:"METRICS_ENABLED" default:"true"`
}

// GeminiConfig holds Google Gemini API configuration
type GeminiConfig struct {
	APIKey  string        `envconfig:"GOOGLE_API_KEY"`
	Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`
	BaseURL string        `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	Timeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"60s"`
}

// EmailConfig holds the sender credentials and the SMTP relay used for summary mails.
// Credentials are optional at startup; the email endpoint refuses to send without them.
type EmailConfig struct {
	SenderEmail       string        `envconfig:"SENDER_EMAIL"`
	SenderAppPassword string        `envconfig:"SENDER_APP_PASSWORD"`
	ReceiverEmail     string        `envconfig:"RECEIVER_EMAIL"`
	SMTPHost          string        `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort          int           `envconfig:"SMTP_PORT" default:"587"`
	SMTPTimeout       time.Duration `envconfig:"SMTP_TIMEOUT" default:"30s"`
	Subject           string        `envconfig:"EMAIL_SUBJECT" default:"AI-Generated Meeting Summary"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	File       string `envconfig:"LOG_FILE"`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"10"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"30"`
}

// Configured reports whether sender address, app password and receiver address are all set.
func (e EmailConfig) Configured() bool {
	return e.SenderEmail != "" && e.SenderAppPassword != "" && e.ReceiverEmail != ""
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	return FromEnv()
}

// FromEnv builds the configuration from the current process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	sections := []struct {
		name   string
		target interface{}
	}{
		{"server", &cfg.Server},
		{"gemini", &cfg.Gemini},
		{"email", &cfg.Email},
		{"log", &cfg.Log},
	}
	for _, s := range sections {
		if err := envconfig.Process("", s.target); err != nil {
			return nil, fmt.Errorf("failed to load %s config: %w", s.name, err)
		}
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Email.SMTPPort <= 0 {
		return fmt.Errorf("SMTP_PORT must be positive, got %d", c.Email.SMTPPort)
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("GEMINI_MODEL is required")
	}
	return nil
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
