package lock

import (
	"context"
	"net"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func TestRedisLocker_BackendUnavailable(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	client := redis.NewClient(&redis.Options{Addr: addr, MaxRetries: -1})
	defer client.Close()

	locker := NewRedisLocker(client, "mercearia:drain", 0, nopLogger{})
	assert.Equal(t, DefaultTTL, locker.ttl)

	unlock, acquired, err := locker.TryLock(context.Background())
	require.ErrorIs(t, err, ErrLock)
	assert.False(t, acquired)
	assert.Nil(t, unlock)
}
