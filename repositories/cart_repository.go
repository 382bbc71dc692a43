package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"nexus-storefront/cart"
	"nexus-storefront/models"
)

const cartKeyPrefix = "cart_session_"

type persistedLine struct {
	ProductID string       `json:"product_id"`
	Name      string       `json:"name"`
	Price     models.Cents `json:"price"`
	ImageRef  string       `json:"image_ref"`
	Quantity  int          `json:"quantity"`
}

// CartRepository persists session carts in redis with a TTL, implementing
// cart.Persister. A corrupt value hydrates as an empty cart.
type CartRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCartRepository(rdb *redis.Client, ttl time.Duration) *CartRepository {
	return &CartRepository{rdb: rdb, ttl: ttl}
}

func (r *CartRepository) Load(ctx context.Context, sessionID string) ([]cart.Line, error) {
	raw, err := r.rdb.Get(ctx, cartKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stored []persistedLine
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, nil
	}

	lines := make([]cart.Line, 0, len(stored))
	for _, l := range stored {
		lines = append(lines, cart.Line{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			ImageRef:  l.ImageRef,
			Quantity:  l.Quantity,
		})
	}
	return lines, nil
}

func (r *CartRepository) Save(ctx context.Context, sessionID string, lines []cart.Line) error {
	stored := make([]persistedLine, 0, len(lines))
	for _, l := range lines {
		stored = append(stored, persistedLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			ImageRef:  l.ImageRef,
			Quantity:  l.Quantity,
		})
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, cartKeyPrefix+sessionID, raw, r.ttl).Err()
}

func (r *CartRepository) Delete(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx, cartKeyPrefix+sessionID).Err()
}
