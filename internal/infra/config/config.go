package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

// DefaultEndpoint is the Practicum homework statuses API.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

const (
	defaultRetryInterval = 10 * time.Minute
	defaultHTTPTimeout   = 30 * time.Second
	minRetryInterval     = time.Second
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID int64
	Endpoint       string
	RetryInterval  time.Duration // Pause between poll cycles, constant
	LookbackWindow time.Duration // How far back the first poll reaches
	HTTPTimeout    time.Duration
	LogLevel       string
	Environment    string
}

// MissingError reports required environment variables that are not set.
type MissingError struct {
	Names []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("required environment variables are not set: %s", strings.Join(e.Names, ", "))
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from a lookup function.
// All missing required variables are reported together.
func FromEnv(getenv func(string) string) (*AppConfig, error) {
	cfg := &AppConfig{}
	var err error

	missing := &MissingError{}
	required := func(name string) string {
		v := strings.TrimSpace(getenv(name))
		if v == "" {
			missing.Names = append(missing.Names, name)
		}
		return v
	}

	cfg.PracticumToken = required("PRACTICUM_TOKEN")
	cfg.TelegramToken = required("TELEGRAM_TOKEN")
	chatIDStr := required("TELEGRAM_CHAT_ID")
	if len(missing.Names) > 0 {
		return nil, missing
	}

	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}

	cfg.Endpoint = getenv("PRACTICUM_ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	if cfg.RetryInterval, err = duration(getenv, "RETRY_INTERVAL", defaultRetryInterval); err != nil {
		return nil, err
	}
	if cfg.RetryInterval < minRetryInterval {
		return nil, fmt.Errorf("invalid RETRY_INTERVAL: must be at least %s", minRetryInterval)
	}

	// Zero means polling starts from the current moment.
	if cfg.LookbackWindow, err = duration(getenv, "LOOKBACK_WINDOW", 0); err != nil {
		return nil, err
	}
	if cfg.LookbackWindow < 0 {
		return nil, fmt.Errorf("invalid LOOKBACK_WINDOW: must not be negative")
	}

	if cfg.HTTPTimeout, err = duration(getenv, "HTTP_TIMEOUT", defaultHTTPTimeout); err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

func duration(getenv func(string) string, name string, def time.Duration) (time.Duration, error) {
	raw := getenv(name)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}
