package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mtrevino/BarberPro-SchedulingService/pkg/types"
)

// ErrLockNotAcquired возвращается, когда слот уже бронируется другим запросом
var ErrLockNotAcquired = errors.New("slot lock not acquired")

// SlotLocker сериализует критические секции бронирования одного слота
// Сериализуемая транзакция БД остается последней линией защиты; блокировка
// убирает ожидаемые конфликты сериализации при конкурентной брони
type SlotLocker interface {
	WithSlotLock(ctx context.Context, barberID int64, date time.Time, startTime types.TimeString, fn func(ctx context.Context) error) error
}

// RedisSlotLocker реализация SlotLocker на ключах Redis (SET NX + Lua unlock)
type RedisSlotLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSlotLocker создает блокировщик слотов поверх Redis
func NewRedisSlotLocker(client *redis.Client, ttl time.Duration) *RedisSlotLocker {
	return &RedisSlotLocker{
		client: client,
		ttl:    ttl,
	}
}

// NewRedisClient создает и проверяет подключение к Redis
func NewRedisClient(addr, username, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Username:     username,
		Password:     password,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}

// WithSlotLock выполняет fn под блокировкой слота (barber, date, start)
// Токен uuid гарантирует, что блокировку снимает только её владелец
func (l *RedisSlotLocker) WithSlotLock(ctx context.Context, barberID int64, date time.Time, startTime types.TimeString, fn func(ctx context.Context) error) error {
	key := fmt.Sprintf("lock:slot:%d:%s:%s", barberID, date.Format("2006-01-02"), startTime)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire slot lock: %w", err)
	}
	if !ok {
		return ErrLockNotAcquired
	}

	defer func() {
		_ = l.release(ctx, key, token)
	}()

	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(ctxWithTimeout)
}

var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *RedisSlotLocker) release(ctx context.Context, key, token string) error {
	_, err := unlockScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release slot lock: %w", err)
	}
	return nil
}

// NoopSlotLocker пропускает блокировку (redis.enabled=false в конфиге)
type NoopSlotLocker struct{}

// WithSlotLock сразу выполняет fn без блокировки
func (NoopSlotLocker) WithSlotLock(ctx context.Context, _ int64, _ time.Time, _ types.TimeString, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
