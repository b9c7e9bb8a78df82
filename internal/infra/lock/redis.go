package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL время жизни блокировки, если владелец упал и не снял её
const DefaultTTL = 5 * time.Minute

// releaseScript удаляет ключ, только если он принадлежит владельцу токена
var releaseScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end
	return 0
`)

// RedisLocker блокировка прохода по офлайн очереди, общая для нескольких экземпляров
type RedisLocker struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
	logger Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// NewRedisLocker создает блокировку на ключе key
func NewRedisLocker(client redis.UniversalClient, key string, ttl time.Duration, logger Logger) *RedisLocker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisLocker{
		client: client,
		key:    key,
		ttl:    ttl,
		logger: logger,
	}
}

// TryLock пытается взять блокировку без ожидания
func (l *RedisLocker) TryLock(ctx context.Context) (func(), bool, error) {
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("%w: SETNX %s: %v", ErrLock, l.key, err)
	}
	if !acquired {
		return nil, false, nil
	}

	unlock := func() {
		// Контекст вызова мог уже завершиться, снимаем блокировку в своем
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := releaseScript.Run(releaseCtx, l.client, []string{l.key}, token).Err(); err != nil {
			l.logger.Warn("RedisLocker: failed to release %s: %v", l.key, err)
		}
	}
	return unlock, true, nil
}
