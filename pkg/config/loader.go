package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// Load reads config.yaml (if present) and APP_* environment variables.
func Load() (*Config, error) {
	return load(viper.New(), "./configs", ".", "/app/configs")
}

func load(v *viper.Viper, paths ...string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Allow common env vars without APP_ prefix for Docker/VM deploys
	v.BindEnv("http.port", "HTTP_PORT", "APP_HTTP_PORT")
	v.BindEnv("queue.url", "QUEUE_URL", "APP_QUEUE_URL")
	v.BindEnv("redis.url", "REDIS_URL", "APP_REDIS_URL")
	v.BindEnv("region.timezone", "TZ_NAME", "APP_REGION_TIMEZONE")
	v.BindEnv("dialogflow.project_id", "DIALOGFLOW_PROJECT_ID", "APP_DIALOGFLOW_PROJECT_ID")
	v.BindEnv("dialogflow.credentials_file", "GOOGLE_APPLICATION_CREDENTIALS", "APP_DIALOGFLOW_CREDENTIALS_FILE")
	v.BindEnv("twilio.account_sid", "TWILIO_ACCOUNT_SID", "APP_TWILIO_ACCOUNT_SID")
	v.BindEnv("twilio.auth_token", "TWILIO_AUTH_TOKEN", "APP_TWILIO_AUTH_TOKEN")
	v.BindEnv("app.environment", "APP_ENVIRONMENT")
	v.BindEnv("logging.level", "LOG_LEVEL")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "concierge-bot")
	v.SetDefault("app.version", "v1.0.0")
	v.SetDefault("app.environment", "development")

	v.SetDefault("http.port", 8080)
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.body_limit", 64*1024)

	v.SetDefault("region.timezone", "America/New_York")
	v.SetDefault("region.locale", "en-US")

	v.SetDefault("pricing.per_char", 5)

	v.SetDefault("queue.driver", "nats")
	v.SetDefault("queue.url", "nats://localhost:4222")
	v.SetDefault("queue.subject", "dining.suggestions")
	v.SetDefault("queue.publish_timeout", 2*time.Second)

	v.SetDefault("redis.dial_timeout", 5*time.Second)
	v.SetDefault("redis.read_timeout", 3*time.Second)
	v.SetDefault("redis.write_timeout", 3*time.Second)

	v.SetDefault("dialogflow.language_code", "en-US")
	v.SetDefault("dialogflow.timeout", 5*time.Second)

	v.SetDefault("circuit_breaker.enabled", true)
	v.SetDefault("circuit_breaker.max_requests", 3)
	v.SetDefault("circuit_breaker.min_requests", 3)
	v.SetDefault("circuit_breaker.interval", time.Minute)
	v.SetDefault("circuit_breaker.timeout", 30*time.Second)
	v.SetDefault("circuit_breaker.failure_threshold", 0.6)

	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetDefault("notifier.http_port", 9091)
	v.SetDefault("notifier.dedupe_ttl", 24*time.Hour)
	v.SetDefault("notifier.send_timeout", 10*time.Second)

	v.SetDefault("opentelemetry.jaeger_endpoint", "http://jaeger:14268/api/traces")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if _, err := time.LoadLocation(c.Region.Timezone); err != nil {
		return fmt.Errorf("config: invalid region.timezone %q: %w", c.Region.Timezone, err)
	}
	switch c.Queue.Driver {
	case "nats", "rabbitmq":
	default:
		return fmt.Errorf("config: unsupported queue.driver %q", c.Queue.Driver)
	}
	if c.Pricing.PerChar < 0 {
		return fmt.Errorf("config: pricing.per_char must not be negative")
	}
	return nil
}
