package knowledge

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const factsKey = "facts:avalon"

// Repository provides the fact corpus the retriever searches.
type Repository interface {
	GetFacts(ctx context.Context) ([]string, error)
	ReplaceFacts(ctx context.Context, facts []string) error
}

// RedisRepository stores facts in a Redis list so the front desk can update
// office information without a redeploy.
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository creates a Redis-backed fact repo.
func NewRedisRepository(client *redis.Client) *RedisRepository {
	if client == nil {
		panic("knowledge: redis client cannot be nil")
	}
	return &RedisRepository{client: client}
}

// Seed loads the static corpus into Redis if no facts are stored yet.
func (r *RedisRepository) Seed(ctx context.Context, facts []string) error {
	n, err := r.client.LLen(ctx, factsKey).Result()
	if err != nil {
		return fmt.Errorf("knowledge: check fact count: %w", err)
	}
	if n > 0 {
		return nil
	}
	return r.ReplaceFacts(ctx, facts)
}

// GetFacts retrieves all facts in stored order.
func (r *RedisRepository) GetFacts(ctx context.Context) ([]string, error) {
	facts, err := r.client.LRange(ctx, factsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("knowledge: fetch facts: %w", err)
	}
	return facts, nil
}

// ReplaceFacts overwrites the whole corpus atomically.
func (r *RedisRepository) ReplaceFacts(ctx context.Context, facts []string) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, factsKey)
	if len(facts) > 0 {
		args := make([]interface{}, len(facts))
		for i, f := range facts {
			args[i] = f
		}
		pipe.RPush(ctx, factsKey, args...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("knowledge: replace facts: %w", err)
	}
	return nil
}

// StaticRepository serves the embedded corpus. Used when Redis is not
// configured.
type StaticRepository struct {
	facts []string
}

// NewStaticRepository creates a repo over a fixed corpus.
func NewStaticRepository(facts []string) *StaticRepository {
	return &StaticRepository{facts: facts}
}

// GetFacts returns the embedded corpus.
func (r *StaticRepository) GetFacts(ctx context.Context) ([]string, error) {
	return r.facts, nil
}

// ReplaceFacts is unsupported for the static repo.
func (r *StaticRepository) ReplaceFacts(ctx context.Context, facts []string) error {
	return fmt.Errorf("knowledge: static repository is read-only")
}
