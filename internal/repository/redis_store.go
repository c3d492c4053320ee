package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "crosspost:"

type redisStore struct {
	rdb *redis.Client
}

// NewRedisStore accepts either a redis:// URL or a bare host:port.
func NewRedisStore(uri string) (KVStore, error) {
	opt, err := redis.ParseURL(uri)
	if err != nil {
		opt = &redis.Options{Addr: uri}
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis is unreachable: %w", err)
	}
	return &redisStore{rdb: rdb}, nil
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return value, true, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (s *redisStore) Close() error {
	return s.rdb.Close()
}
