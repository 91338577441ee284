package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"recipebox/internal/model"
)

// RecipeCache keeps recently read recipes in redis. Writers invalidate the
// entry, readers refill it on the next miss.
type RecipeCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewRecipeCache(client *redisv9.Client, ttl time.Duration) *RecipeCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &RecipeCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RecipeCache) GetRecipe(ctx context.Context, id string) (*model.Recipe, bool, error) {
	raw, err := c.client.Get(ctx, c.recipeKey(id)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get recipe failed: %w", err)
	}

	var recipe model.Recipe
	if err := json.Unmarshal([]byte(raw), &recipe); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached recipe failed: %w", err)
	}
	return &recipe, true, nil
}

func (c *RecipeCache) SetRecipe(ctx context.Context, recipe *model.Recipe) error {
	payload, err := json.Marshal(recipe)
	if err != nil {
		return fmt.Errorf("marshal recipe cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.recipeKey(recipe.ID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set recipe failed: %w", err)
	}
	return nil
}

func (c *RecipeCache) DeleteRecipe(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, c.recipeKey(id)).Err(); err != nil {
		return fmt.Errorf("redis delete recipe failed: %w", err)
	}
	return nil
}

func (c *RecipeCache) recipeKey(id string) string {
	return fmt.Sprintf("recipe:%s", id)
}
