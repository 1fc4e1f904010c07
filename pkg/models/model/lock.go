package model

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

const retryInterval = time.Second / 5

// RedisLock serializes writers of one redis key across processes.
type RedisLock struct {
	*redis.RedisLock
}

func NewLock(rds *redis.Redis, lockName string) *RedisLock {
	return &RedisLock{
		RedisLock: redis.NewRedisLock(rds, lockName),
	}
}

// Do runs f while holding the lock. The lock is released even when f fails.
func (l *RedisLock) Do(ctx context.Context, f func() error) (err error) {
	if err = l.Lock(ctx); err != nil {
		return err
	}

	defer func() {
		if unlockErr := l.UnLock(ctx); err == nil {
			err = unlockErr
		}
	}()

	return f()
}

func (l *RedisLock) Lock(ctx context.Context) error {
	return retry(ctx, l.AcquireCtx)
}

func (l *RedisLock) UnLock(ctx context.Context) error {
	return retry(ctx, l.ReleaseCtx)
}

func retry(ctx context.Context, f func(context.Context) (bool, error)) error {
	for {
		ok, err := f(ctx)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}
