package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Registry implements last-search-wins correlation: it remembers only the
// most recent search id per client so a caller can discard results of a
// search that was superseded while in flight. No result data is stored.
type Registry struct {
	redis RedisClient
	ttl   time.Duration
}

func NewRegistry(redis RedisClient, ttl time.Duration) *Registry {
	return &Registry{
		redis: redis,
		ttl:   ttl,
	}
}

func (r *Registry) key(clientKey string) string {
	return fmt.Sprintf("search:latest:%s", clientKey)
}

// Begin records searchID as the client's current search.
func (r *Registry) Begin(ctx context.Context, clientKey, searchID string) error {
	if err := r.redis.Set(ctx, r.key(clientKey), searchID, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to register search: %w", err)
	}

	return nil
}

// Latest returns the client's most recently registered search id.
func (r *Registry) Latest(ctx context.Context, clientKey string) (string, error) {
	id, err := r.redis.Get(ctx, r.key(clientKey)).Result()
	if err != nil {
		return "", fmt.Errorf("failed to get latest search: %w", err)
	}

	return id, nil
}

// Superseded reports whether a newer search replaced searchID. A lookup
// failure counts as not superseded so a flaky redis never drops results.
func (r *Registry) Superseded(ctx context.Context, clientKey, searchID string) bool {
	latest, err := r.Latest(ctx, clientKey)
	if err != nil {
		return false
	}

	return latest != searchID
}
