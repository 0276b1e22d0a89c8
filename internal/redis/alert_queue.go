package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"guardpost/internal/domain"
	"guardpost/pkg/e"

	"github.com/redis/go-redis/v9"
)

// AlertQueue buffers overdue-checkpoint alerts between the monitor and the
// webhook sender.
type AlertQueue struct {
	client *redis.Client
	key    string
}

func NewAlertQueue(client *redis.Client, key string) *AlertQueue {
	return &AlertQueue{client: client, key: key}
}

func (q *AlertQueue) Enqueue(ctx context.Context, alert domain.OverdueAlert) error {
	b, err := json.Marshal(alert)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *AlertQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.OverdueAlert, error) {
	var a domain.OverdueAlert

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return a, e.ErrQueueEmpty
		}
		return a, err
	}
	if len(res) < 2 {
		return a, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &a); err != nil {
		return a, err
	}
	return a, nil
}
