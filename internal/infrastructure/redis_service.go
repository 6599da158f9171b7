package infrastructure

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisOptions struct {
	URL      string
	Addr     string
	Password string
	DB       int
}

// RedisService wraps an optional Redis client. When Redis is not
// configured or unreachable the client is nil and callers fall back to
// in-process behavior.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(ctx context.Context, opts RedisOptions) *RedisService {
	var options *redis.Options
	switch {
	case opts.URL != "":
		parsed, err := redis.ParseURL(opts.URL)
		if err != nil {
			log.Printf("Warning: invalid REDIS_URL, Redis disabled: %v", err)
			return &RedisService{}
		}
		options = parsed
	case opts.Addr != "":
		options = &redis.Options{
			Addr:         opts.Addr,
			Password:     opts.Password,
			DB:           opts.DB,
			PoolSize:     10,
			MinIdleConns: 5,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}
	default:
		return &RedisService{}
	}

	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Redis connection failed, Redis disabled: %v", err)
		client.Close()
		return &RedisService{}
	}

	log.Printf("Connected to Redis at %s", options.Addr)
	return &RedisService{client: client}
}

func (r *RedisService) Enabled() bool {
	return r != nil && r.client != nil
}

// CountAttempt increments the counter for key and returns its new value.
// The counter expires one window after the first attempt.
func (r *RedisService) CountAttempt(ctx context.Context, key string, window time.Duration) (int64, error) {
	if !r.Enabled() {
		return 0, nil
	}
	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (r *RedisService) Close() error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Close()
}

// RedisRateLimiter is a fixed window limiter backed by Redis counters.
// Requires Redis 7 for EXPIRE NX.
type RedisRateLimiter struct {
	redis  *RedisService
	window time.Duration
	limit  int
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.redis.CountAttempt(ctx, "login_attempts:"+key, l.window)
	if err != nil {
		return false, err
	}
	return count <= int64(l.limit), nil
}

// NewLoginLimiter returns a Redis backed limiter when Redis is enabled and
// an in-process one otherwise.
func NewLoginLimiter(redisService *RedisService, window time.Duration, limit int) AttemptLimiter {
	if redisService.Enabled() {
		return &RedisRateLimiter{redis: redisService, window: window, limit: limit}
	}
	return NewRateLimiter(window, limit)
}
