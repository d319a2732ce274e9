package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/backend-pos/internal/checkout"
)

// RedisCheckout stores checkout items in a Redis hash so several registers
// can share one checkout. Id assignment rides on INCR, which keeps ids
// unique without any locking on this side.
type RedisCheckout struct {
	Client *redis.Client
	Prefix string
}

func (r *RedisCheckout) itemsKey() string   { return r.Prefix + "checkout:items" }
func (r *RedisCheckout) counterKey() string { return r.Prefix + "checkout:next_id" }

// AddItem assigns an id via INCR and stores the item as JSON.
func (r *RedisCheckout) AddItem(ctx context.Context, item checkout.Item) (checkout.Item, error) {
	id, err := r.Client.Incr(ctx, r.counterKey()).Result()
	if err != nil {
		return checkout.Item{}, fmt.Errorf("assign checkout item id: %w", err)
	}
	item.ID = id
	data, err := json.Marshal(item)
	if err != nil {
		return checkout.Item{}, err
	}
	if err := r.Client.HSet(ctx, r.itemsKey(), strconv.FormatInt(id, 10), data).Err(); err != nil {
		return checkout.Item{}, fmt.Errorf("store checkout item: %w", err)
	}
	return item, nil
}

// GetItem looks up an item by id.
func (r *RedisCheckout) GetItem(ctx context.Context, id int64) (checkout.Item, bool, error) {
	data, err := r.Client.HGet(ctx, r.itemsKey(), strconv.FormatInt(id, 10)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return checkout.Item{}, false, nil
		}
		return checkout.Item{}, false, err
	}
	var item checkout.Item
	if err := json.Unmarshal(data, &item); err != nil {
		return checkout.Item{}, false, err
	}
	return item, true, nil
}

// DeleteItem removes an item by id, reporting whether it existed.
func (r *RedisCheckout) DeleteItem(ctx context.Context, id int64) (bool, error) {
	removed, err := r.Client.HDel(ctx, r.itemsKey(), strconv.FormatInt(id, 10)).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}

// ListItems returns all items ordered by id, which matches insertion order
// because ids are monotonically increasing.
func (r *RedisCheckout) ListItems(ctx context.Context) ([]checkout.Item, error) {
	entries, err := r.Client.HGetAll(ctx, r.itemsKey()).Result()
	if err != nil {
		return nil, err
	}
	items := make([]checkout.Item, 0, len(entries))
	for _, raw := range entries {
		var item checkout.Item
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}
