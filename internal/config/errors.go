package config

import "errors"

var (
	ErrRedisAddrMissing     = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB       = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidRedisPoolSize = errors.New("REDIS_POOL_SIZE must be a non-negative integer")
	ErrDatabaseMissing      = errors.New("DATABASE_URL or DB_HOST is required")
	ErrInvalidDatabasePort  = errors.New("DB_PORT must be a valid integer")
	ErrInvalidScheduleValue = errors.New("invalid schedule configuration")
	ErrUnknownTimezone      = errors.New("SCHEDULE_TIMEZONE is not a known location")
)
