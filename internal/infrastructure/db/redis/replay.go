package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const replayTTL = 24 * time.Hour

// OrderReplayStore maps order idempotency keys to the order they produced,
// so a resubmitted request returns the original order instead of writing a
// duplicate. Key format: order_replay:<idempotency_key>
type OrderReplayStore struct {
	client *redis.Client
}

func NewOrderReplayStore(client *redis.Client) *OrderReplayStore {
	return &OrderReplayStore{client: client}
}

// Lookup returns the order id previously recorded for key, if any.
func (s *OrderReplayStore) Lookup(ctx context.Context, key string) (string, bool, error) {
	orderID, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("replay lookup: %w", err)
	}
	return orderID, true, nil
}

// Remember records that key produced orderID (expires after replayTTL).
func (s *OrderReplayStore) Remember(ctx context.Context, key, orderID string) error {
	return s.client.Set(ctx, s.key(key), orderID, replayTTL).Err()
}

func (s *OrderReplayStore) key(k string) string {
	return "order_replay:" + k
}
