package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"guardpost/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// CheckpointCache holds the active-checkpoint set consulted on every patrol
// check-in and by the overdue monitor. Admin mutations invalidate it.
type CheckpointCache struct {
	client *goredis.Client
	key    string
}

func NewCheckpointCache(r *Redis) *CheckpointCache {
	return &CheckpointCache{
		client: r.Client,
		key:    "checkpoints:active",
	}
}

func (c *CheckpointCache) GetActive(ctx context.Context) ([]*domain.Checkpoint, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var checkpoints []*domain.Checkpoint
	if err := json.Unmarshal(data, &checkpoints); err != nil {
		return nil, err
	}

	return checkpoints, nil
}

func (c *CheckpointCache) SetActive(ctx context.Context, checkpoints []*domain.Checkpoint, ttl time.Duration) error {
	b, err := json.Marshal(checkpoints)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

func (c *CheckpointCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
