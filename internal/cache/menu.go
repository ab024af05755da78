package cache

import (
	"context"
	"encoding/json"
	"time"

	"bistro_back_end/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	MenuCacheTTL = 10 * time.Minute

	menuKey = "menu:all"
)

// MenuCache met le menu complet en cache Redis. Toute erreur Redis est
// traitée comme un cache miss : la base reste la source de vérité.
type MenuCache struct {
	rdb *redis.Client
}

func NewMenuCache(rdb *redis.Client) *MenuCache {
	return &MenuCache{rdb: rdb}
}

func (c *MenuCache) Get(ctx context.Context) ([]models.MenuItem, bool) {
	data, err := c.rdb.Get(ctx, menuKey).Result()
	if err != nil {
		return nil, false
	}

	var items []models.MenuItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *MenuCache) Set(ctx context.Context, items []models.MenuItem) {
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, menuKey, data, MenuCacheTTL)
}

// Invalidate est appelé par toutes les mutations admin du menu.
func (c *MenuCache) Invalidate(ctx context.Context) {
	c.rdb.Del(ctx, menuKey)
}
