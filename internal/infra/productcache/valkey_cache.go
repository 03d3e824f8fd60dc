package productcache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/product-reviews/internal/domain/catalog"
)

// ValkeyCache stores product snapshots as JSON strings in Valkey.
type ValkeyCache struct {
	client valkey.Client
	prefix string
	ttl    time.Duration
}

// NewValkeyCache constructs a cache backed by Valkey. A zero ttl keeps
// entries until evicted by the server.
func NewValkeyCache(client valkey.Client, prefix string, ttl time.Duration) *ValkeyCache {
	if prefix == "" {
		prefix = "product"
	}
	return &ValkeyCache{client: client, prefix: prefix, ttl: ttl}
}

// Get implements catalog.Cache.
func (c *ValkeyCache) Get(ctx context.Context, id int64) (catalog.Product, bool, error) {
	payload, err := c.client.Do(ctx, c.client.B().Get().Key(c.key(id)).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return catalog.Product{}, false, nil
		}
		return catalog.Product{}, false, err
	}
	var p catalog.Product
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return catalog.Product{}, false, err
	}
	return p, true, nil
}

// Set implements catalog.Cache.
func (c *ValkeyCache) Set(ctx context.Context, p catalog.Product) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	builder := c.client.B().Set().Key(c.key(p.ID)).Value(string(payload))
	var cmd valkey.Completed
	if c.ttl > 0 {
		ttl := c.ttl
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return c.client.Do(ctx, cmd).Error()
}

func (c *ValkeyCache) key(id int64) string {
	return c.prefix + ":" + strconv.FormatInt(id, 10)
}

var _ catalog.Cache = (*ValkeyCache)(nil)
