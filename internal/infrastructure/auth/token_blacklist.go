package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"

	appidentity "github.com/storekit/backend/internal/application/identity"
	"github.com/storekit/backend/internal/infrastructure/config"
)

const blacklistKeyPrefix = "storekit:token:revoked:"

// RedisTokenBlacklist revokes tokens in redis until their natural
// expiry. Tokens are stored hashed; the raw token never reaches redis.
type RedisTokenBlacklist struct {
	client *redis.Client
}

// NewRedisTokenBlacklist creates a blacklist backed by the given redis
// settings
func NewRedisTokenBlacklist(cfg config.RedisConfig) *RedisTokenBlacklist {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return &RedisTokenBlacklist{client: client}
}

// NewRedisTokenBlacklistWithClient wraps an existing client, used in tests
func NewRedisTokenBlacklistWithClient(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{client: client}
}

// Revoke marks a token revoked until the given time
func (b *RedisTokenBlacklist) Revoke(ctx context.Context, token string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return b.client.Set(ctx, blacklistKey(token), "1", ttl).Err()
}

// IsRevoked reports whether a token has been revoked
func (b *RedisTokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := b.client.Get(ctx, blacklistKey(token)).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Close releases the underlying redis connection
func (b *RedisTokenBlacklist) Close() error {
	return b.client.Close()
}

func blacklistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return blacklistKeyPrefix + hex.EncodeToString(sum[:])
}

var _ appidentity.TokenBlacklist = (*RedisTokenBlacklist)(nil)
