package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"garmentsync/internal/dto"
)

const (
	// KeyOrderDetail maps an order id to its serialized detail view.
	KeyOrderDetail = "order_detail:%s"
	// KeyOrderVersion counts invalidations of an order's detail view.
	KeyOrderVersion = "order_version:%s"
)

// OrderCache stores order detail views. A miss is (nil, nil).
//
// Fills are versioned: read Version before loading the view from the store
// and pass it to Set. Set drops the view when Invalidate ran in between.
type OrderCache interface {
	Get(ctx context.Context, orderID string) (*dto.OrderDetail, error)
	Version(ctx context.Context, orderID string) (int64, error)
	Set(ctx context.Context, detail *dto.OrderDetail, version int64) error
	Invalidate(ctx context.Context, orderID string) error
}

type Noop struct{}

func (Noop) Get(context.Context, string) (*dto.OrderDetail, error) { return nil, nil }
func (Noop) Version(context.Context, string) (int64, error)        { return 0, nil }
func (Noop) Set(context.Context, *dto.OrderDetail, int64) error    { return nil }
func (Noop) Invalidate(context.Context, string) error              { return nil }

const defaultTTL = 5 * time.Minute

// setIfVersion writes KEYS[1] only while KEYS[2] still holds ARGV[1].
var setIfVersion = redis.NewScript(`
local current = redis.call("GET", KEYS[2]) or "0"
if current ~= ARGV[1] then
	return 0
end
redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
return 1
`)

type RedisOrderCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisOrderCache(client redis.Cmdable, ttl time.Duration, logger *zap.Logger) *RedisOrderCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisOrderCache{client: client, ttl: ttl, logger: logger.Named("order_cache")}
}

func key(orderID string) string {
	return fmt.Sprintf(KeyOrderDetail, orderID)
}

func versionKey(orderID string) string {
	return fmt.Sprintf(KeyOrderVersion, orderID)
}

func (c *RedisOrderCache) Get(ctx context.Context, orderID string) (*dto.OrderDetail, error) {
	raw, err := c.client.Get(ctx, key(orderID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cached order %s: %w", orderID, err)
	}

	var detail dto.OrderDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		c.logger.Warn("discarding unreadable cache entry", zap.String("orderId", orderID), zap.Error(err))
		return nil, nil
	}
	return &detail, nil
}

func (c *RedisOrderCache) Version(ctx context.Context, orderID string) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(orderID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading cache version of order %s: %w", orderID, err)
	}
	return version, nil
}

// Set stores detail unless the order was invalidated after version was read.
func (c *RedisOrderCache) Set(ctx context.Context, detail *dto.OrderDetail, version int64) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("encoding order detail: %w", err)
	}

	written, err := setIfVersion.Run(ctx, c.client,
		[]string{key(detail.ID), versionKey(detail.ID)},
		strconv.FormatInt(version, 10), raw, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return fmt.Errorf("caching order %s: %w", detail.ID, err)
	}
	if written == 0 {
		c.logger.Debug("skipped stale cache fill", zap.String("orderId", detail.ID), zap.Int64("version", version))
	}
	return nil
}

// Invalidate drops the cached view and bumps the version so fills that
// started earlier are discarded.
func (c *RedisOrderCache) Invalidate(ctx context.Context, orderID string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey(orderID))
		pipe.Del(ctx, key(orderID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidating order %s: %w", orderID, err)
	}
	return nil
}

// NewRedisClient connects to addr and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 2 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}
	return client, nil
}
