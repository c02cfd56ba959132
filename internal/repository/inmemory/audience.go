package inmemory

import (
	"sync"
	"time"

	"campus-portal-go/internal/domain/audience"
)

// InMemoryAudienceCache keeps resolved recipient sets per directive until
// their ttl passes.
type InMemoryAudienceCache struct {
	mu    sync.RWMutex
	items map[audience.Directive]audienceItem
	now   func() time.Time
}

type audienceItem struct {
	ids       []string
	expiresAt time.Time
}

func NewInMemoryAudienceCache() *InMemoryAudienceCache {
	return &InMemoryAudienceCache{
		items: make(map[audience.Directive]audienceItem),
		now:   time.Now,
	}
}

func (c *InMemoryAudienceCache) Get(directive audience.Directive) ([]string, bool) {
	now := c.now()

	c.mu.RLock()
	item, ok := c.items[directive]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		item, ok = c.items[directive]
		if ok && !item.expiresAt.After(now) {
			delete(c.items, directive)
		}
		c.mu.Unlock()
		return nil, false
	}

	return append([]string(nil), item.ids...), true
}

func (c *InMemoryAudienceCache) Set(directive audience.Directive, ids []string, ttl time.Duration) {
	if ttl <= 0 {
		c.Delete(directive)
		return
	}

	c.mu.Lock()
	c.items[directive] = audienceItem{
		ids:       append([]string(nil), ids...),
		expiresAt: c.now().Add(ttl),
	}
	c.mu.Unlock()
}

func (c *InMemoryAudienceCache) Delete(directive audience.Directive) {
	c.mu.Lock()
	delete(c.items, directive)
	c.mu.Unlock()
}

func (c *InMemoryAudienceCache) Clear() {
	c.mu.Lock()
	c.items = make(map[audience.Directive]audienceItem)
	c.mu.Unlock()
}
