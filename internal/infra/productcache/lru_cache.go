package productcache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/yanqian/product-reviews/internal/domain/catalog"
)

const defaultSize = 1024

// LRUCache is a bounded in-process product cache.
type LRUCache struct {
	items *lru.Cache[int64, catalog.Product]
}

// NewLRUCache builds a cache holding at most size products.
func NewLRUCache(size int) (*LRUCache, error) {
	if size <= 0 {
		size = defaultSize
	}
	items, err := lru.New[int64, catalog.Product](size)
	if err != nil {
		return nil, fmt.Errorf("create product lru: %w", err)
	}
	return &LRUCache{items: items}, nil
}

// Get implements catalog.Cache.
func (c *LRUCache) Get(_ context.Context, id int64) (catalog.Product, bool, error) {
	p, ok := c.items.Get(id)
	return p, ok, nil
}

// Set implements catalog.Cache.
func (c *LRUCache) Set(_ context.Context, p catalog.Product) error {
	c.items.Add(p.ID, p)
	return nil
}

var _ catalog.Cache = (*LRUCache)(nil)
