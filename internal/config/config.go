// Package config loads the application settings from VITEBRIDGE_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/vitebridge/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

const prefix = "vitebridge"

type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// Wallet tool.
	NodeBinary      string `envconfig:"NODE_BINARY" default:"node" validate:"required"`
	ScriptPath      string `envconfig:"SCRIPT_PATH" default:"vitejs/api_handler.js" validate:"required"`
	ForwardToolLogs bool   `envconfig:"FORWARD_TOOL_LOGS" default:"true"`

	// Retry.
	MaxAttempts     int           `envconfig:"MAX_ATTEMPTS" default:"3" validate:"gte=0"`
	RetryDelay      time.Duration `envconfig:"RETRY_DELAY" default:"0s" validate:"gte=0"`
	SendRetryDelay  time.Duration `envconfig:"SEND_RETRY_DELAY" default:"1s" validate:"gte=0"`
	TxStateAttempts uint          `envconfig:"TX_STATE_ATTEMPTS" default:"10" validate:"gte=1"`
	TxStateDelay    time.Duration `envconfig:"TX_STATE_DELAY" default:"1s" validate:"gte=0"`

	// Listener.
	ListenerClaimTTL time.Duration `envconfig:"LISTENER_CLAIM_TTL" default:"5m" validate:"gt=0"`

	// Telemetry.
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"vitebridge" validate:"required"`
	ServiceVersion   string `envconfig:"SERVICE_VERSION"`

	// Redis backs the listener idempotency guard when RedisAddr is set.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`

	// Listener deliveries are POSTed here when set.
	WebhookURL     string        `envconfig:"WEBHOOK_URL" validate:"omitempty,url"`
	WebhookTimeout time.Duration `envconfig:"WEBHOOK_TIMEOUT" default:"10s" validate:"gt=0"`
}

// Load reads and validates the configuration.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}
