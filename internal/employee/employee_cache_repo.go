package employee

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	CacheKeyPrefix  = "employees:"
	DefaultCacheTTL = 5 * time.Minute
)

func CacheKey(id int64) string {
	return CacheKeyPrefix + strconv.FormatInt(id, 10)
}

// CachedRepository is a read-through Redis cache in front of another Repository.
// Redis failures are logged and fall back to the inner repository.
type CachedRepository struct {
	inner  Repository
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewCachedRepository(inner Repository, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) *CachedRepository {
	l := zap.L().Named("employee.cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.cache")
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedRepository{
		inner:  inner,
		rdb:    rdb,
		ttl:    ttl,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (r *CachedRepository) FindByID(ctx context.Context, id int64) (Employee, bool, error) {
	key := CacheKey(id)

	cached, err := r.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		var e Employee
		jsonErr := json.Unmarshal([]byte(cached), &e)
		if jsonErr == nil {
			return e, true, nil
		}
		r.logger.Warn("decode cached employee failed", zap.String("key", key), zap.Error(jsonErr))
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("read employee cache failed", zap.String("key", key), zap.Error(err))
	}

	// The load is shared by every waiter on key, so one caller cancelling must not fail the others.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := r.sf.Do(key, func() (any, error) {
		e, found, err := r.inner.FindByID(loadCtx, id)
		if err != nil || !found {
			return nil, err
		}

		payload, err := json.Marshal(e)
		if err != nil {
			r.logger.Warn("encode employee for cache failed", zap.Int64("employee_id", id), zap.Error(err))
			return e, nil
		}
		if err := r.rdb.Set(loadCtx, key, string(payload), r.ttl).Err(); err != nil {
			r.logger.Warn("write employee cache failed", zap.String("key", key), zap.Error(err))
		}
		return e, nil
	})
	if err != nil {
		return Employee{}, false, err
	}

	e, ok := v.(Employee)
	return e, ok, nil
}

func (r *CachedRepository) Save(ctx context.Context, e Employee) error {
	if err := r.inner.Save(ctx, e); err != nil {
		return err
	}

	key := CacheKey(e.ID)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		r.logger.Error("invalidate employee cache failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}
