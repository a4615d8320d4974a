package assetlock

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrLocked возвращается, если актив уже заблокирован другой операцией
	ErrLocked = errors.New("assetlock: asset is locked by another operation")

	// ErrLockFailed возвращается при ошибках Redis
	ErrLockFailed = errors.New("assetlock: failed to acquire lock")
)

const defaultKeyPrefix = "adplacement:asset-lock"

// releaseScript удаляет ключ, только если он всё ещё принадлежит нашему токену
var releaseScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// Unlock освобождает захваченные блокировки
type Unlock func()

// RedisLocker эксклюзивная блокировка актива на время "проверка -> запись"
// Блокировка не ждёт: если актив занят, сразу возвращается ErrLocked
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisLocker создает блокировщик поверх Redis
func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client: client,
		ttl:    ttl,
		prefix: defaultKeyPrefix,
	}
}

// Lock захватывает блокировки для всех переданных активов
// Идентификаторы сортируются, дубликаты отбрасываются
func (l *RedisLocker) Lock(ctx context.Context, assetIDs ...int64) (Unlock, error) {
	ids := normalizeIDs(assetIDs)
	token := uuid.NewString()

	acquired := make([]string, 0, len(ids))
	release := func() {
		// Освобождение не должно зависеть от отменённого контекста запроса
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		for _, key := range acquired {
			_ = releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err()
		}
	}

	for _, id := range ids {
		key := l.key(id)
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			release()
			return nil, fmt.Errorf("%w: asset_id=%d: %v", ErrLockFailed, id, err)
		}
		if !ok {
			release()
			return nil, fmt.Errorf("%w: asset_id=%d", ErrLocked, id)
		}
		acquired = append(acquired, key)
	}

	return release, nil
}

func (l *RedisLocker) key(assetID int64) string {
	return fmt.Sprintf("%s:%d", l.prefix, assetID)
}

// NoopLocker используется, когда Redis отключён
// Защиту от гонок в этом случае обеспечивает только сериализуемая транзакция
type NoopLocker struct{}

func (NoopLocker) Lock(context.Context, ...int64) (Unlock, error) {
	return func() {}, nil
}

func normalizeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
