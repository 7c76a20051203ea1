package rstore

import (
	"context"
	"errors"

	"github.com/ValentinKolb/kvprobe/lib/common"
	"github.com/ValentinKolb/kvprobe/lib/store"
	"github.com/redis/go-redis/v9"
)

type connImpl struct {
	client *redis.Client
}

// NewRedisConn creates a connection handle for a Redis-protocol server.
// It implements store.ConnFactory. The client dials lazily, so nothing is sent before the first command.
// Retries inside the driver are disabled; retrying is left to the caller.
func NewRedisConn(config common.ClientConfig) (store.IConn, error) {
	if config.Host == "" {
		return nil, store.ErrNoHost
	}

	dialTimeout := config.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = common.DefaultTimeout
	}
	opTimeout := config.OpTimeout
	if opTimeout <= 0 {
		opTimeout = common.DefaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:             config.Addr(),
		Password:         config.Password,
		Protocol:         2,
		DialTimeout:      dialTimeout,
		ReadTimeout:      opTimeout,
		WriteTimeout:     opTimeout,
		MaxRetries:       -1,
		PoolSize:         1,
		DisableIndentity: true,
	})

	return &connImpl{client: client}, nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store.IConn)
// --------------------------------------------------------------------------

func (c *connImpl) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *connImpl) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *connImpl) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, key, value, 0).Err()
}

func (c *connImpl) Delete(ctx context.Context, key string) (int64, error) {
	return c.client.Del(ctx, key).Result()
}

func (c *connImpl) Close() error {
	return c.client.Close()
}
