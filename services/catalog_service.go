package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"nexus-storefront/models"
	"nexus-storefront/repositories"
)

const catalogCacheKey = "catalog_items"

// CatalogService serves the product listing, caching the upstream catalog in
// redis so a burst of listing views does not hammer the marketplace API.
// Without redis every call goes upstream.
type CatalogService struct {
	itemRepo *repositories.ItemRepository
	cacheTTL time.Duration
}

func NewCatalogService(itemRepo *repositories.ItemRepository, cacheTTL time.Duration) *CatalogService {
	return &CatalogService{
		itemRepo: itemRepo,
		cacheTTL: cacheTTL,
	}
}

func (s *CatalogService) GetItems(ctx context.Context) ([]models.Item, error) {
	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, catalogCacheKey).Result()
		if err == nil {
			items := []models.Item{}
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := s.itemRepo.GetAllItems(ctx)
	if err != nil {
		return nil, err
	}

	if models.RedisClient != nil {
		raw, err := json.Marshal(items)
		if err == nil {
			if err := models.RedisClient.Set(ctx, catalogCacheKey, raw, s.cacheTTL).Err(); err != nil {
				log.Println("catalog cache write failed:", err)
			}
		}
	}
	return items, nil
}

// InvalidateCache drops the cached listing after an admin mutation so the
// next view reflects the change.
func (s *CatalogService) InvalidateCache(ctx context.Context) {
	if models.RedisClient == nil {
		return
	}
	if err := models.RedisClient.Del(ctx, catalogCacheKey).Err(); err != nil {
		log.Println("catalog cache invalidate failed:", err)
	}
}
