package redis

import (
	"context"
	"net"
	"time"

	"beautyhub/config"

	"github.com/cenkalti/backoff/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const connectMaxElapsed = 30 * time.Second

// Options maps the cache configuration onto go-redis options.
func Options(cfg *config.Config) *goRedis.Options {
	redis := cfg.Cache.Redis

	return &goRedis.Options{
		Addr:        net.JoinHostPort(redis.Primary.Host, redis.Primary.Port),
		Password:    redis.Primary.Password,
		DB:          redis.Primary.DB,
		PoolSize:    redis.PoolSize,
		DialTimeout: time.Duration(redis.DialTimeoutSeconds) * time.Second,
		ReadTimeout: time.Duration(redis.ReadTimeoutSeconds) * time.Second,
	}
}

// New connects to the primary and pings it with exponential backoff, so the
// app can start alongside a Redis container that is still booting.
func New(cfg *config.Config) *goRedis.Client {
	opts := Options(cfg)
	client := goRedis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), connectMaxElapsed)
	defer cancel()

	_, err := backoff.Retry(ctx, func() (string, error) {
		return client.Ping(ctx).Result() //nolint:wrapcheck
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(uint(max(cfg.Cache.Redis.ConnectMaxAttempts, 1))),
		backoff.WithNotify(func(err error, wait time.Duration) {
			log.Warn().Err(err).Str("addr", opts.Addr).Dur("retry_in", wait).Msg("Redis not ready")
		}),
	)
	if err != nil {
		log.Fatal().Err(err).Str("addr", opts.Addr).Msg("Failed to connect to Redis")
	}

	log.Info().Str("addr", opts.Addr).Int("db", opts.DB).Msg("Connected to Redis")

	return client
}
