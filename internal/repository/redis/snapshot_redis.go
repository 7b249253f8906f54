// Package redis stores short-lived search snapshots in Redis hashes.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cast"

	"github.com/maxviazov/jobbot-gateway/internal/config"
	"github.com/maxviazov/jobbot-gateway/internal/model"
	"github.com/maxviazov/jobbot-gateway/internal/repository"
)

const keyPrefix = "jobbot:snapshot:"

// hash fields
const (
	fieldID        = "id"
	fieldQuery     = "query"
	fieldCreatedAt = "created_at"
	fieldItems     = "items"
)

// NewClient opens a Redis client and verifies it answers.
func NewClient(ctx context.Context, cfg config.RedisConfig) (goredis.UniversalClient, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeoutMs) * time.Millisecond,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutMs) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.WriteTimeoutMs) * time.Millisecond,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed opening connection to redis: %w", err)
	}
	return rdb, nil
}

type snapshotRepository struct {
	client goredis.UniversalClient
}

func NewSnapshotRepository(client goredis.UniversalClient) repository.SnapshotRepository {
	return &snapshotRepository{client: client}
}

func snapshotKey(key string) string { return keyPrefix + key }

func (r *snapshotRepository) Save(ctx context.Context, key string, s model.SearchSnapshot, ttl time.Duration) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return fmt.Errorf("encode snapshot items: %w", err)
	}
	k := snapshotKey(key)
	// Replace the whole hash atomically so stale fields never mix with fresh ones.
	_, err = r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, k)
		pipe.HSet(ctx, k,
			fieldID, s.ID,
			fieldQuery, s.Query,
			fieldCreatedAt, s.CreatedAt.UnixMilli(),
			fieldItems, items,
		)
		if ttl > 0 {
			pipe.Expire(ctx, k, ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepository) Load(ctx context.Context, key string) (model.SearchSnapshot, error) {
	res, err := r.client.HGetAll(ctx, snapshotKey(key)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return model.SearchSnapshot{}, repository.ErrNotFound
		}
		return model.SearchSnapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	if len(res) == 0 {
		return model.SearchSnapshot{}, repository.ErrNotFound
	}

	createdMs, err := cast.ToInt64E(res[fieldCreatedAt])
	if err != nil {
		return model.SearchSnapshot{}, fmt.Errorf("decode snapshot created_at: %w", err)
	}
	out := model.SearchSnapshot{
		ID:        cast.ToString(res[fieldID]),
		Query:     cast.ToString(res[fieldQuery]),
		CreatedAt: time.UnixMilli(createdMs).UTC(),
	}
	if raw := res[fieldItems]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &out.Items); err != nil {
			return model.SearchSnapshot{}, fmt.Errorf("decode snapshot items: %w", err)
		}
	}
	return out, nil
}

type pinger struct{ client goredis.UniversalClient }

// NewPinger adapts a Redis client to repository.Pinger.
func NewPinger(client goredis.UniversalClient) repository.Pinger { return &pinger{client: client} }

func (p *pinger) Ping(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}

var _ repository.SnapshotRepository = (*snapshotRepository)(nil)
