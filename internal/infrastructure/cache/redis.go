// Package cache provides the Redis-backed statement cache. Reconciled
// statements are stored under a book version that every write bumps, so a
// cached statement can never outlive the book state it was computed from.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/infrastructure/config"
)

const (
	versionKey    = "koperasi:statement:version"
	keyTimeLayout = "20060102150405"

	defaultTTL = 24 * time.Hour
)

var _ port.StatementCache = (*RedisStatementCache)(nil)

// RedisStatementCache keeps balanced period statements in Redis. Entries are
// keyed by the current book version plus the period bounds; Bump moves the
// version forward and strands every older entry until its TTL reaps it.
type RedisStatementCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStatementCache creates a cache over the given client. A
// non-positive ttl falls back to the default of one day.
func NewRedisStatementCache(client *redis.Client, ttl time.Duration) *RedisStatementCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisStatementCache{client: client, ttl: ttl}
}

// Connect dials Redis and verifies the connection with a ping.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// Get returns the statement cached for [start, end) at the current book
// version, or nil on a miss.
func (c *RedisStatementCache) Get(ctx context.Context, start, end time.Time) (*model.PeriodStatement, error) {
	version, err := c.version(ctx)
	if err != nil {
		return nil, fmt.Errorf("read cache version: %w", err)
	}

	payload, err := c.client.Get(ctx, statementKey(version, start, end)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cached statement: %w", err)
	}

	var snap statementSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("decode cached statement: %w", err)
	}
	statement := snap.statement()
	return &statement, nil
}

// Put stores a statement under the current book version. The version is read
// before the write, so a bump landing mid-put leaves the entry stranded on
// the old version rather than visible on the new one.
func (c *RedisStatementCache) Put(ctx context.Context, statement model.PeriodStatement) error {
	version, err := c.version(ctx)
	if err != nil {
		return fmt.Errorf("read cache version: %w", err)
	}

	payload, err := json.Marshal(snapshotOf(statement))
	if err != nil {
		return fmt.Errorf("encode statement: %w", err)
	}

	key := statementKey(version, statement.PeriodStart, statement.PeriodEnd)
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("store statement: %w", err)
	}
	return nil
}

// Bump advances the book version, invalidating every cached statement.
func (c *RedisStatementCache) Bump(ctx context.Context) error {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		return fmt.Errorf("bump cache version: %w", err)
	}
	return nil
}

func (c *RedisStatementCache) version(ctx context.Context) (int64, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

func statementKey(version int64, start, end time.Time) string {
	return fmt.Sprintf("koperasi:statement:v%d:%s:%s",
		version, start.UTC().Format(keyTimeLayout), end.UTC().Format(keyTimeLayout))
}
