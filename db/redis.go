// db/redis.go
package db

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	feed_errors "github.com/dev-mohitbeniwal/bookfeed/errors"
	logger "github.com/dev-mohitbeniwal/bookfeed/logging"
)

type RedisOptions struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	// OpTimeout bounds every command so a hung store reads as a miss.
	OpTimeout time.Duration

	ReconnectInitial time.Duration
	ReconnectMax     time.Duration

	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

func RedisOptionsFromConfig() RedisOptions {
	return RedisOptions{
		Addr:             viper.GetString("redis.addr"),
		Password:         viper.GetString("redis.password"),
		DB:               viper.GetInt("redis.db"),
		DialTimeout:      viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:      viper.GetDuration("redis.readTimeout"),
		WriteTimeout:     viper.GetDuration("redis.writeTimeout"),
		PoolSize:         viper.GetInt("redis.poolSize"),
		OpTimeout:        viper.GetDuration("redis.opTimeout"),
		ReconnectInitial: viper.GetDuration("redis.reconnect.initialInterval"),
		ReconnectMax:     viper.GetDuration("redis.reconnect.maxInterval"),
		BreakerFailures:  uint32(viper.GetInt("redis.breaker.failureThreshold")),
		BreakerTimeout:   viper.GetDuration("redis.breaker.timeout"),
	}
}

func (o RedisOptions) withDefaults() RedisOptions {
	if o.DialTimeout <= 0 {
		o.DialTimeout = time.Second
	}
	if o.OpTimeout <= 0 {
		o.OpTimeout = 250 * time.Millisecond
	}
	if o.ReconnectInitial <= 0 {
		o.ReconnectInitial = 100 * time.Millisecond
	}
	if o.ReconnectMax <= 0 {
		o.ReconnectMax = 5 * time.Second
	}
	if o.BreakerFailures == 0 {
		o.BreakerFailures = 5
	}
	if o.BreakerTimeout <= 0 {
		o.BreakerTimeout = 10 * time.Second
	}
	return o
}

// RedisStore is a string key/value store that connects on first use and
// keeps retrying on later calls. Every failure surfaces as
// ErrCacheUnavailable and nothing here panics or exits the process.
type RedisStore struct {
	opts RedisOptions

	mu         sync.Mutex
	client     *redis.Client
	connecting bool
	retryAt    time.Time
	reconnect  *backoff.ExponentialBackOff

	breaker *gobreaker.CircuitBreaker[any]
	now     func() time.Time
}

func NewRedisStore(opts RedisOptions) *RedisStore {
	opts = opts.withDefaults()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = opts.ReconnectInitial
	b.MaxInterval = opts.ReconnectMax
	b.MaxElapsedTime = 0
	b.Reset()

	s := &RedisStore{opts: opts, reconnect: b, now: time.Now}
	s.breaker = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:    "redis",
		Timeout: opts.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.BreakerFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, redis.Nil)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Cache store circuit breaker changed state",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	return s
}

// conn returns the live client, dialing when the backoff window allows
// and the breaker is not open. Callers arriving while another dial is in
// flight get ErrCacheUnavailable instead of waiting on it.
func (s *RedisStore) conn(ctx context.Context) (*redis.Client, error) {
	s.mu.Lock()
	if s.client != nil {
		c := s.client
		s.mu.Unlock()
		return c, nil
	}
	if s.connecting || s.now().Before(s.retryAt) || s.breaker.State() == gobreaker.StateOpen {
		s.mu.Unlock()
		return nil, feed_errors.ErrCacheUnavailable
	}
	s.connecting = true
	s.mu.Unlock()

	c := redis.NewClient(&redis.Options{
		Addr:                  s.opts.Addr,
		Password:              s.opts.Password,
		DB:                    s.opts.DB,
		DialTimeout:           s.opts.DialTimeout,
		ReadTimeout:           s.opts.ReadTimeout,
		WriteTimeout:          s.opts.WriteTimeout,
		PoolSize:              s.opts.PoolSize,
		ContextTimeoutEnabled: true,
		MaxRetries:            -1,
	})

	// A store that accepts connections but never answers must still read
	// as a miss within the op timeout, and count towards the breaker.
	pingCtx, cancel := context.WithTimeout(ctx, min(s.opts.DialTimeout, s.opts.OpTimeout))
	defer cancel()
	_, err := s.breaker.Execute(func() (any, error) {
		return nil, c.Ping(pingCtx).Err()
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.connecting = false
	if err != nil {
		_ = c.Close()
		wait := s.reconnect.NextBackOff()
		s.retryAt = s.now().Add(wait)
		logger.Warn("Cache store not available, bypassing cache",
			zap.String("addr", s.opts.Addr),
			zap.Duration("retryIn", wait),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", feed_errors.ErrCacheUnavailable, err)
	}

	s.reconnect.Reset()
	s.retryAt = time.Time{}
	s.client = c
	logger.Info("Connected to cache store", zap.String("addr", s.opts.Addr))
	return c, nil
}

func (s *RedisStore) execute(ctx context.Context, op func(ctx context.Context, c *redis.Client) (any, error)) (any, error) {
	c, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, s.opts.OpTimeout)
	defer cancel()

	v, err := s.breaker.Execute(func() (any, error) {
		return op(opCtx, c)
	})
	if err == nil || errors.Is(err, redis.Nil) {
		return v, err
	}
	// Includes gobreaker.ErrOpenState while the breaker is open.
	return nil, fmt.Errorf("%w: %v", feed_errors.ErrCacheUnavailable, err)
}

// Get returns the value under key; found is false when the key is absent.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.execute(ctx, func(ctx context.Context, c *redis.Client) (any, error) {
		return c.Get(ctx, key).Result()
	})
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v.(string), true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	_, err := s.execute(ctx, func(ctx context.Context, c *redis.Client) (any, error) {
		return c.Set(ctx, key, value, ttl).Result()
	})
	return err
}

func (s *RedisStore) Del(ctx context.Context, key string) error {
	_, err := s.execute(ctx, func(ctx context.Context, c *redis.Client) (any, error) {
		return c.Del(ctx, key).Result()
	})
	return err
}

// RateLimit counts a hit in a sliding window of length per and reports
// whether the caller is still within limit.
func (s *RedisStore) RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	key = fmt.Sprintf("ratelimit:%s", key)
	v, err := s.execute(ctx, func(ctx context.Context, c *redis.Client) (any, error) {
		now := time.Now().UnixNano()
		pipe := c.Pipeline()
		pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-per.Nanoseconds()))
		member := fmt.Sprintf("%d-%s", now, uuid.NewString())
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: member})
		card := pipe.ZCard(ctx, key)
		pipe.Expire(ctx, key, per)
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, err
		}
		return card.Val(), nil
	})
	if err != nil {
		return false, err
	}

	count := v.(int64)
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}

// Status reports "up" when the store answers a ping within a second.
func (s *RedisStore) Status(ctx context.Context) string {
	c, err := s.conn(ctx)
	if err != nil {
		return "down"
	}
	pingCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		logger.Warn("Error checking cache store status", zap.Error(err))
		return "down"
	}
	return "up"
}

func (s *RedisStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		if err := s.client.Close(); err != nil {
			logger.Error("Error closing cache store connection", zap.Error(err))
		}
		s.client = nil
	}
}
