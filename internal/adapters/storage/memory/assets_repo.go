package memory

import (
	"context"
	"strings"
	"sync"

	"paw-connects/internal/domain/assets"
)

type assetCatalog struct {
	mu    sync.RWMutex
	byKey map[string]assets.Asset
}

func NewAssetCatalog(items []assets.Asset) assets.Catalog {
	c := &assetCatalog{byKey: make(map[string]assets.Asset, len(items))}
	for _, a := range items {
		key := strings.TrimSpace(a.Key)
		if key == "" {
			continue
		}
		c.byKey[key] = a
	}
	return c
}

func (c *assetCatalog) Lookup(ctx context.Context, key string) (assets.Asset, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a, ok := c.byKey[strings.TrimSpace(key)]
	if !ok {
		return assets.Asset{}, assets.ErrNotFound
	}
	return a, nil
}
