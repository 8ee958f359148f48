package config

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"beautyhub/shared/constant"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"     default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"10"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey  string `envconfig:"API_KEY"`
		Booking struct {
			HorizonDays            int `envconfig:"HORIZON_DAYS"`
			SlotGranularityMinutes int `envconfig:"SLOT_GRANULARITY_MINUTES"`
			MinAdvanceMinutes      int `envconfig:"MIN_ADVANCE_MINUTES"      default:"30"`
			CartTTLSeconds         int `envconfig:"CART_TTL_SECONDS"`
			CommitMaxRetry         int `envconfig:"COMMIT_MAX_RETRY"`
			CommitRetryWaitMillis  int `envconfig:"COMMIT_RETRY_WAIT_MILLIS"`
			DefaultCommission      int `envconfig:"DEFAULT_COMMISSION"`
		} `envconfig:"BOOKING"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"     default:"8080"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
			PoolSize           int `envconfig:"POOL_SIZE"`
			DialTimeoutSeconds int `envconfig:"DIAL_TIMEOUT_SECONDS" default:"5"`
			ReadTimeoutSeconds int `envconfig:"READ_TIMEOUT_SECONDS" default:"3"`
			ConnectMaxAttempts int `envconfig:"CONNECT_MAX_ATTEMPTS" default:"5"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"  default:"15"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN" default:"10080"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int              `envconfig:"MAX_RETRY"       default:"5"`
			RetryWaitTime  int              `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MaxOpenConns   int              `envconfig:"MAX_OPEN_CONNS"  default:"10"`
			MigrationTable string           `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool             `envconfig:"AUTO_MIGRATE"`
			Prefix         string           `envconfig:"PREFIX"`
			Read           PostgresEndpoint `envconfig:"READ"`
			Write          PostgresEndpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Kafka struct {
		Brokers []string `envconfig:"BROKERS"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		ConsumerGroup    string `envconfig:"CONSUMER_GROUP"    default:"beautyhub-notifier"`
		ReservationTopic string `envconfig:"RESERVATION_TOPIC"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint    string  `envconfig:"ENDPOINT"`
			SampleRatio float64 `envconfig:"SAMPLE_RATIO" default:"1"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`

	Metrics struct {
		Namespace string `envconfig:"NAMESPACE"`
	} `envconfig:"METRICS"`
}

// PostgresEndpoint is one side of the read/write database split.
type PostgresEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

const (
	defaultHorizonDays            = 30
	defaultSlotGranularityMinutes = 30
	defaultCartTTLSeconds         = 3600
	defaultCommitMaxRetry         = 3
	defaultCommitRetryWaitMillis  = 50
	defaultCommission             = 30
)

var current = sync.OnceValues(Load)

// Load reads .env (when present) and the process environment into a fresh
// Config. Most callers want the shared instance from Get.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded, using the process environment")
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	cfg.applyBookingDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func Get() *Config {
	cfg, err := current()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize configuration")
	}

	return cfg
}

// Validate rejects settings that would let the service run insecurely. Most
// checks only apply in production so local setups can start from an empty
// environment.
func (c *Config) Validate() error {
	var errs []error

	if c.JWT.AccessSecret != "" && c.JWT.AccessSecret == c.JWT.RefreshSecret {
		errs = append(errs, errors.New("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ"))
	}

	if c.Server.Env == constant.ServerEnvProduction {
		if c.JWT.AccessSecret == "" || c.JWT.RefreshSecret == "" {
			errs = append(errs, errors.New("JWT secrets are required in production"))
		}

		if c.App.CORS.Enable && c.App.CORS.AllowCredentials && slices.Contains(c.App.CORS.AllowedOrigins, "*") {
			errs = append(errs, errors.New("CORS cannot allow credentials for every origin"))
		}
	}

	return errors.Join(errs...)
}

func (c *Config) applyBookingDefaults() {
	booking := &c.App.Booking

	booking.HorizonDays = positiveOr(booking.HorizonDays, defaultHorizonDays)
	booking.SlotGranularityMinutes = positiveOr(booking.SlotGranularityMinutes, defaultSlotGranularityMinutes)
	booking.CartTTLSeconds = positiveOr(booking.CartTTLSeconds, defaultCartTTLSeconds)
	booking.CommitMaxRetry = positiveOr(booking.CommitMaxRetry, defaultCommitMaxRetry)
	booking.CommitRetryWaitMillis = positiveOr(booking.CommitRetryWaitMillis, defaultCommitRetryWaitMillis)
	booking.DefaultCommission = positiveOr(booking.DefaultCommission, defaultCommission)
}

func positiveOr(value, fallback int) int {
	if value <= 0 {
		return fallback
	}

	return value
}

// WithBookingDefaults returns a copy of the configuration with unset booking settings filled in.
func (c Config) WithBookingDefaults() *Config {
	c.applyBookingDefaults()

	return &c
}
