package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistKeyPrefix = "blacklist:"

// TokenBlacklist is a redis-backed set of revoked tokens. A nil blacklist is
// valid and treats every token as live, so the service can run without redis.
type TokenBlacklist struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTokenBlacklist connects to redis and verifies the connection. Entries
// expire after ttl, which should be at least the refresh token lifetime.
func NewTokenBlacklist(redisURL string, ttl time.Duration) (*TokenBlacklist, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &TokenBlacklist{client: client, ttl: ttl}, nil
}

// Add revokes the given tokens.
func (tb *TokenBlacklist) Add(ctx context.Context, tokens ...string) error {
	if tb == nil || tb.client == nil {
		return nil
	}

	for _, token := range tokens {
		if token == "" {
			continue
		}
		if err := tb.client.Set(ctx, blacklistKeyPrefix+token, "1", tb.ttl).Err(); err != nil {
			return fmt.Errorf("failed to blacklist token: %w", err)
		}
	}
	return nil
}

// IsBlacklisted reports whether the token has been revoked. Redis errors are
// treated as "not revoked" so an outage does not lock everyone out.
func (tb *TokenBlacklist) IsBlacklisted(ctx context.Context, token string) bool {
	if tb == nil || tb.client == nil {
		return false
	}

	n, err := tb.client.Exists(ctx, blacklistKeyPrefix+token).Result()
	if err != nil {
		return false
	}
	return n > 0
}

// Close releases the redis connection.
func (tb *TokenBlacklist) Close() error {
	if tb == nil || tb.client == nil {
		return nil
	}
	return tb.client.Close()
}
