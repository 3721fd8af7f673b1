package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/portfolio-cms/domain"
	"github.com/Guyuepp/portfolio-cms/internal/repository/cache"
)

const (
	KeyContentItem = "content:%s:%s"
)

type contentCache struct {
	client *redis.Client
}

var _ domain.ContentCache = (*contentCache)(nil)

func NewContentCache(client *redis.Client) *contentCache {
	return &contentCache{
		client,
	}
}

func itemKey(kind domain.Kind, id string) string {
	return fmt.Sprintf(KeyContentItem, kind, id)
}

func (c *contentCache) GetItem(ctx context.Context, kind domain.Kind, id string) (domain.ContentItem, bool, error) {
	data, err := c.client.Get(ctx, itemKey(kind, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ContentItem{}, false, domain.ErrCacheMiss
	} else if err != nil {
		return domain.ContentItem{}, false, err
	}

	var entry cache.Entry[domain.ContentItem]
	if err = json.Unmarshal(data, &entry); err != nil {
		return domain.ContentItem{}, false, err
	}
	return entry.Data, entry.IsLogicalExpired(), nil
}

func (c *contentCache) SetItem(ctx context.Context, item *domain.ContentItem, ttl time.Duration) error {
	data, err := json.Marshal(cache.NewEntry(*item, ttl))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, itemKey(item.Kind, item.ID), data, 0).Err()
}

func (c *contentCache) DeleteItem(ctx context.Context, kind domain.Kind, id string) error {
	return c.client.Del(ctx, itemKey(kind, id)).Err()
}
