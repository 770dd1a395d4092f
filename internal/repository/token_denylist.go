package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist records revoked refresh token ids until they expire.
type TokenDenylist interface {
	// TryRevoke atomically marks jti revoked. It reports false when jti was
	// already revoked or has already expired.
	TryRevoke(ctx context.Context, jti string, expiresAt time.Time) (bool, error)
}

type redisTokenDenylist struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisTokenDenylist stores revocations under auth:revoked:<jti>.
func NewRedisTokenDenylist(client *redis.Client) TokenDenylist {
	return &redisTokenDenylist{client: client, now: time.Now}
}

func revokedKey(jti string) string {
	return "auth:revoked:" + jti
}

func (d *redisTokenDenylist) TryRevoke(ctx context.Context, jti string, expiresAt time.Time) (bool, error) {
	ttl := expiresAt.Sub(d.now())
	if ttl <= 0 {
		return false, nil
	}
	return d.client.SetNX(ctx, revokedKey(jti), "1", ttl).Result()
}
