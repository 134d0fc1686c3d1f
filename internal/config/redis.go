package config

import (
	"crypto/tls"
	"os"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

const (
	redisAddrEnv      = "REDIS_ADDR"
	redisPasswordEnv  = "REDIS_PASSWORD"
	redisDBEnv        = "REDIS_DB"
	redisTLSEnv       = "REDIS_TLS"
	redisPoolSizeEnv  = "REDIS_POOL_SIZE"
	redisKeyPrefixEnv = "REDIS_KEY_PREFIX"

	defaultRedisAddr      = "localhost:6379"
	defaultRedisDB        = 0
	defaultRedisKeyPrefix = "scheduler"
)

// RedisConfig configures the run summary store connection. KeyPrefix
// namespaces every summary key so several deployments can share one instance.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	TLS       bool
	PoolSize  int
	KeyPrefix string
}

func LoadRedisConfig() (*RedisConfig, error) {
	addr := os.Getenv(redisAddrEnv)
	if addr == "" {
		addr = defaultRedisAddr
	}

	db, err := intFromEnv(redisDBEnv, defaultRedisDB)
	if err != nil {
		return nil, ErrInvalidRedisDB
	}

	// 0 keeps the go-redis default of 10 per CPU.
	poolSize, err := intFromEnv(redisPoolSizeEnv, 0)
	if err != nil || poolSize < 0 {
		return nil, ErrInvalidRedisPoolSize
	}

	useTLS, _ := strconv.ParseBool(os.Getenv(redisTLSEnv))

	prefix := strings.Trim(os.Getenv(redisKeyPrefixEnv), ": ")
	if prefix == "" {
		prefix = defaultRedisKeyPrefix
	}

	return &RedisConfig{
		Addr:      addr,
		Password:  os.Getenv(redisPasswordEnv),
		DB:        db,
		TLS:       useTLS,
		PoolSize:  poolSize,
		KeyPrefix: prefix,
	}, nil
}

func (c *RedisConfig) Validate() error {
	if c == nil || c.Addr == "" {
		return ErrRedisAddrMissing
	}
	return nil
}

func (c *RedisConfig) Options() *redis.Options {
	opts := &redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
		PoolSize: c.PoolSize,
	}
	if c.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return opts
}

func intFromEnv(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}
