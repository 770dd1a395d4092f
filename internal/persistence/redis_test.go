package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Avangel08/furniro-sub001/internal/config"
)

func TestNewRedisUnreachable(t *testing.T) {
	r, err := NewRedis(context.Background(), config.RedisConfig{Addr: "127.0.0.1:1", DB: 3}, zap.NewNop())
	require.Error(t, err)
	assert.Nil(t, r)
	assert.Contains(t, err.Error(), "127.0.0.1:1 db 3")
}

func TestNilRedisPing(t *testing.T) {
	var r *Redis
	assert.ErrorIs(t, r.Ping(context.Background()), ErrNotConfigured)
	assert.NotPanics(t, r.Close)
}
