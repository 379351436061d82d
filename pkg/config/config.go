package config

import "time"

type Config struct {
	App            AppConfig            `mapstructure:"app"`
	HTTP           HTTPConfig           `mapstructure:"http"`
	Region         RegionConfig         `mapstructure:"region"`
	Pricing        PricingConfig        `mapstructure:"pricing"`
	Queue          QueueConfig          `mapstructure:"queue"`
	Redis          RedisConfig          `mapstructure:"redis"`
	Dialogflow     DialogflowConfig     `mapstructure:"dialogflow"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
	CORS           CORSConfig           `mapstructure:"cors"`
	Twilio         TwilioConfig         `mapstructure:"twilio"`
	Notifier       NotifierConfig       `mapstructure:"notifier"`
	OpenTelemetry  OpenTelemetryConfig  `mapstructure:"opentelemetry"`
	Logging        LoggingConfig        `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	BodyLimit    int           `mapstructure:"body_limit"`
}

// RegionConfig decides which calendar the date rules use.
type RegionConfig struct {
	Timezone string `mapstructure:"timezone"`
	Locale   string `mapstructure:"locale"`
}

type PricingConfig struct {
	PerChar int `mapstructure:"per_char"`
}

type QueueConfig struct {
	Driver         string        `mapstructure:"driver"` // nats or rabbitmq
	URL            string        `mapstructure:"url"`
	Subject        string        `mapstructure:"subject"`
	PublishTimeout time.Duration `mapstructure:"publish_timeout"`
}

type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DialogflowConfig struct {
	ProjectID       string        `mapstructure:"project_id"`
	CredentialsFile string        `mapstructure:"credentials_file"`
	LanguageCode    string        `mapstructure:"language_code"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

type CircuitBreakerConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// MaxRequests is the number of trial calls let through while half-open.
	MaxRequests int `mapstructure:"max_requests"`
	// MinRequests is the sample size the failure ratio needs before tripping.
	MinRequests      int           `mapstructure:"min_requests"`
	Interval         time.Duration `mapstructure:"interval"`
	Timeout          time.Duration `mapstructure:"timeout"`
	FailureThreshold float64       `mapstructure:"failure_threshold"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
	ExposeHeaders  []string `mapstructure:"expose_headers"`
	MaxAge         int      `mapstructure:"max_age"`
	Credentials    bool     `mapstructure:"credentials"`
}

type TwilioConfig struct {
	AccountSID string `mapstructure:"account_sid"`
	AuthToken  string `mapstructure:"auth_token"`
	From       string `mapstructure:"from"`
}

type NotifierConfig struct {
	// HTTPPort serves /metrics and the health probes of the notifier process.
	HTTPPort    int           `mapstructure:"http_port"`
	DedupeTTL   time.Duration `mapstructure:"dedupe_ttl"`
	SendTimeout time.Duration `mapstructure:"send_timeout"`
}

type OpenTelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
