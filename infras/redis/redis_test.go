package redis_test

import (
	"testing"
	"time"

	"beautyhub/config"
	"beautyhub/infras/redis"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = "cache"
	cfg.Cache.Redis.Primary.Port = "6380"
	cfg.Cache.Redis.Primary.DB = 2
	cfg.Cache.Redis.PoolSize = 20
	cfg.Cache.Redis.DialTimeoutSeconds = 5

	opts := redis.Options(cfg)

	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 20, opts.PoolSize)
	assert.Equal(t, 5*time.Second, opts.DialTimeout)
}
