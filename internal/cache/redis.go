package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"mealplanner/internal/models"

	"github.com/redis/go-redis/v9"
)

const recipeListKeyPrefix = "recipes:list:"

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// StoreRecipeList caches one catalog listing under its filter key.
func (r *RedisClient) StoreRecipeList(key string, recipes []models.Recipe, ttl time.Duration) error {
	jsonData, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe list: %w", err)
	}

	if err := r.client.Set(r.ctx, key, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store recipe list in Redis: %w", err)
	}
	return nil
}

// GetRecipeList returns a cached listing and whether the key existed.
func (r *RedisClient) GetRecipeList(key string) ([]models.Recipe, bool, error) {
	data, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil // Key doesn't exist
		}
		return nil, false, fmt.Errorf("failed to get recipe list from Redis: %w", err)
	}

	var recipes []models.Recipe
	if err := json.Unmarshal([]byte(data), &recipes); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal recipe list: %w", err)
	}
	return recipes, true, nil
}

// InvalidateRecipeLists drops every cached listing. Called after any recipe
// mutation.
func (r *RedisClient) InvalidateRecipeLists() error {
	iter := r.client.Scan(r.ctx, 0, recipeListKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(r.ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan recipe list keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(r.ctx, keys...).Err()
}

// GetStatus reports connection pool statistics for the debug endpoint.
func (r *RedisClient) GetStatus() (map[string]interface{}, error) {
	if err := r.client.Ping(r.ctx).Err(); err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()

	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
	}, nil
}
