package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/m04kA/heal-booking-service/internal/config"
)

// Token bucket в redis hash: tokens и время последнего пополнения.
// Возвращает {allowed, remaining, retry_after_ms}.
var tokenBucketScript = goredis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// Decision результат проверки лимита
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int64
	RetryAfter time.Duration
}

// TokenBucket ограничитель частоты запросов поверх redis
type TokenBucket struct {
	client goredis.Scripter
	cfg    config.RateLimitConfig
	now    func() time.Time
}

// NewTokenBucket создает ограничитель. Некорректные значения конфигурации
// приводятся к минимально допустимым.
func NewTokenBucket(client goredis.Scripter, cfg config.RateLimitConfig) *TokenBucket {
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.RefillTokens < 1 {
		cfg.RefillTokens = 1
	}
	if cfg.RefillIntervalSeconds < 1 {
		cfg.RefillIntervalSeconds = 1
	}
	if minTTL := 5 * cfg.RefillIntervalSeconds; cfg.TTLSeconds < minTTL {
		cfg.TTLSeconds = minTTL
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "rl"
	}

	return &TokenBucket{client: client, cfg: cfg, now: time.Now}
}

// Allow списывает один токен для ключа
func (b *TokenBucket) Allow(ctx context.Context, key string) (Decision, error) {
	args := []interface{}{
		b.now().UnixMilli(),
		b.cfg.Capacity,
		b.cfg.RefillTokens,
		b.cfg.RefillInterval().Milliseconds(),
		b.cfg.TTLSeconds,
	}

	vals, err := tokenBucketScript.Run(ctx, b.client, []string{b.cfg.Prefix + ":" + key}, args...).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("redis: token bucket %s: %w", key, err)
	}

	return parseDecision(vals, b.cfg.Capacity)
}

func parseDecision(vals interface{}, limit int) (Decision, error) {
	arr, ok := vals.([]interface{})
	if !ok || len(arr) != 3 {
		return Decision{}, fmt.Errorf("redis: unexpected token bucket result %#v", vals)
	}

	return Decision{
		Allowed:    asInt64(arr[0]) == 1,
		Limit:      limit,
		Remaining:  asInt64(arr[1]),
		RetryAfter: time.Duration(asInt64(arr[2])) * time.Millisecond,
	}, nil
}

func asInt64(v interface{}) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}
	return 0
}
