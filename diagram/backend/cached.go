package backend

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/viant/phpgraph/inspector/graph"
)

// Cached keeps rendered outputs keyed by markup fingerprint
type Cached struct {
	backend Backend
	cache   *lru.Cache[uint64, []byte]
}

// NewCached decorates a backend with an LRU cache
func NewCached(backend Backend, size int) (*Cached, error) {
	cache, err := lru.New[uint64, []byte](size)
	if err != nil {
		return nil, err
	}
	return &Cached{backend: backend, cache: cache}, nil
}

func (c *Cached) Render(ctx context.Context, markup string) ([]byte, error) {
	key, err := graph.Hash([]byte(markup))
	if err != nil {
		return c.backend.Render(ctx, markup)
	}
	if output, ok := c.cache.Get(key); ok {
		return output, nil
	}
	output, err := c.backend.Render(ctx, markup)
	if err != nil || len(output) == 0 {
		return output, err
	}
	c.cache.Add(key, output)
	return output, nil
}

// Len returns number of cached outputs
func (c *Cached) Len() int {
	return c.cache.Len()
}
