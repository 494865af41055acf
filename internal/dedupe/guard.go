// Package dedupe suppresses redelivered form submissions.
package dedupe

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "rosterd:submission:"

// Guard is a redis-backed idempotency check on submission IDs. Form platforms
// redeliver webhooks, so each submission is processed at most once per TTL
// window. A nil Guard (redis unconfigured) lets everything through.
type Guard struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Guard {
	if client == nil {
		return nil
	}
	return &Guard{client: client, ttl: ttl}
}

// FirstSeen reports whether this submission ID is new, reserving it when so.
func (g *Guard) FirstSeen(ctx context.Context, submissionID string) (bool, error) {
	if g == nil {
		return true, nil
	}
	fresh, err := g.client.SetNX(ctx, keyPrefix+submissionID, 1, g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("reserve submission %s: %w", submissionID, err)
	}
	return fresh, nil
}
