package synccache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"campus-portal-go/pkg/logger"
)

const (
	DefaultInterval        = 15 * time.Second
	DefaultMutationTimeout = 30 * time.Second
)

type Options[T any] struct {
	// Key identifies an item. Required.
	Key func(T) string
	// Fetch loads the full resource list. Required.
	Fetch func(ctx context.Context) ([]T, error)

	Interval        time.Duration
	MutationTimeout time.Duration
	Clock           Clock
	Log             logger.Logger
	// OnRollback is called after a failed mutation has been undone.
	OnRollback func(key string, err error)
}

type deferredItem[T any] struct {
	item    T
	present bool
}

type Cache[T any] struct {
	key             func(T) string
	fetch           func(ctx context.Context) ([]T, error)
	interval        time.Duration
	mutationTimeout time.Duration
	clock           Clock
	log             logger.Logger
	onRollback      func(key string, err error)

	mu          sync.Mutex
	items       []T
	pending     map[string]*Pending[T]
	deferred    map[string]deferredItem[T]
	// resolved maps a key to the refresh generation current when its
	// mutation committed or rolled back.
	resolved    map[string]uint64
	seq         uint64
	generation  uint64
	lastRefresh time.Time
	closed      bool
	cancel      context.CancelFunc
	done        chan struct{}
}

func New[T any](opts Options[T]) *Cache[T] {
	if opts.Key == nil || opts.Fetch == nil {
		panic("synccache: Key and Fetch are required")
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.MutationTimeout <= 0 {
		opts.MutationTimeout = DefaultMutationTimeout
	}
	if opts.Clock == nil {
		opts.Clock = RealClock()
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}

	return &Cache[T]{
		key:             opts.Key,
		fetch:           opts.Fetch,
		interval:        opts.Interval,
		mutationTimeout: opts.MutationTimeout,
		clock:           opts.Clock,
		log:             opts.Log,
		onRollback:      opts.OnRollback,
		pending:         make(map[string]*Pending[T]),
		deferred:        make(map[string]deferredItem[T]),
		resolved:        make(map[string]uint64),
	}
}

// Snapshot returns a copy of the cached list in server order.
func (c *Cache[T]) Snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(key)
	if idx < 0 {
		var zero T
		return zero, false
	}
	return c.items[idx], true
}

// IsPending reports whether key has a mutation in flight.
func (c *Cache[T]) IsPending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[key]
	return ok
}

func (c *Cache[T]) LastRefresh() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastRefresh
}

// Apply changes the cached item synchronously and marks it pending. Only
// one mutation per key may be in flight.
func (c *Cache[T]) Apply(m Mutation[T]) (*Pending[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}
	if _, busy := c.pending[m.Key]; busy {
		return nil, ErrMutationPending
	}
	idx := c.indexOf(m.Key)
	if idx < 0 {
		return nil, ErrUnknownKey
	}

	prior := c.items[idx]
	next := m.Apply(prior)
	c.items[idx] = next
	c.seq++

	p := &Pending[T]{
		ID:         c.seq,
		Key:        m.Key,
		prior:      prior,
		optimistic: next,
		state:      StatePending,
	}
	c.pending[m.Key] = p
	return p, nil
}

// Reconcile commits p with the server's authoritative item, replacing the
// optimistic guess when they differ.
func (c *Cache[T]) Reconcile(p *Pending[T], server T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending[p.Key] != p {
		return ErrNotPending
	}
	delete(c.pending, p.Key)
	delete(c.deferred, p.Key)
	c.resolved[p.Key] = c.generation

	if idx := c.indexOf(p.Key); idx >= 0 {
		c.items[idx] = server
	}
	p.setState(StateCommitted)
	return nil
}

// Rollback restores the item p changed. A refresh that arrived while p was
// pending wins over the prior value. The returned error wraps both
// ErrRolledBack and cause.
func (c *Cache[T]) Rollback(p *Pending[T], cause error) error {
	c.mu.Lock()
	if c.pending[p.Key] != p {
		c.mu.Unlock()
		return ErrNotPending
	}
	delete(c.pending, p.Key)

	if idx := c.indexOf(p.Key); idx >= 0 {
		c.items[idx] = p.prior
		if held, ok := c.deferred[p.Key]; ok {
			if held.present {
				c.items[idx] = held.item
			} else {
				c.items = append(c.items[:idx], c.items[idx+1:]...)
			}
		}
	}
	delete(c.deferred, p.Key)
	c.resolved[p.Key] = c.generation
	p.setState(StateRolledBack)
	closed := c.closed
	c.mu.Unlock()

	if cause == nil {
		cause = errors.New("unknown failure")
	}
	c.log.Warn("synccache.rollback: optimistic change undone", "key", p.Key, "mutation_id", p.ID, "err", cause)
	if c.onRollback != nil && !closed {
		c.onRollback(p.Key, cause)
	}
	return fmt.Errorf("%w: %w", ErrRolledBack, cause)
}

// Do applies m, sends it and resolves the mutation with the result. The
// send runs detached from ctx cancellation so a dismissed caller cannot
// leave an optimistic value behind; it is bounded by the mutation timeout.
func (c *Cache[T]) Do(ctx context.Context, m Mutation[T], send func(ctx context.Context, optimistic T) (T, error)) (T, error) {
	p, err := c.Apply(m)
	if err != nil {
		var zero T
		return zero, err
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.mutationTimeout)
	defer cancel()

	server, err := send(sendCtx, p.Optimistic())
	if err != nil {
		return p.Prior(), c.Rollback(p, err)
	}
	if err := c.Reconcile(p, server); err != nil {
		return server, err
	}
	return server, nil
}

// Refresh re-fetches the full list and replaces the snapshot. Pending
// items keep their optimistic value. A refresh overtaken by a later one,
// or whose ctx ends before it lands, is discarded.
func (c *Cache[T]) Refresh(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	c.generation++
	generation := c.generation
	c.mu.Unlock()

	items, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	if generation != c.generation {
		return nil, ErrSuperseded
	}

	c.merge(items, generation)
	c.lastRefresh = c.clock.Now()
	return append([]T(nil), c.items...), nil
}

// Start runs the poller until ctx ends or Close is called. The first
// refresh happens immediately.
func (c *Cache[T]) Start(ctx context.Context) {
	c.mu.Lock()
	if c.closed || c.done != nil {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	done := c.done
	c.mu.Unlock()

	go c.poll(ctx, done)
}

// Close stops the poller and drops the cached list. Mutations still in
// flight resolve without touching the cache.
func (c *Cache[T]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.items = nil
	c.deferred = make(map[string]deferredItem[T])
	clear(c.resolved)
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (c *Cache[T]) poll(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := c.clock.NewTicker(c.interval)
	defer ticker.Stop()

	c.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			c.tick(ctx)
		}
	}
}

func (c *Cache[T]) tick(ctx context.Context) {
	_, err := c.Refresh(ctx)
	if err == nil || ctx.Err() != nil || errors.Is(err, ErrSuperseded) || errors.Is(err, ErrClosed) {
		return
	}
	c.log.Warn("synccache.poll: refresh failed", "err", err)
}

// merge installs fresh, fetched by the refresh of the given generation, as
// the snapshot. Items with a pending mutation keep their optimistic value
// and the fetched value is held in deferred. Items whose mutation resolved
// after that refresh started keep the resolved value.
func (c *Cache[T]) merge(fresh []T, generation uint64) {
	next := make([]T, 0, len(fresh)+len(c.pending))
	seen := make(map[string]struct{}, len(fresh))
	stale := func(key string) bool {
		at, ok := c.resolved[key]
		return ok && at >= generation
	}

	for _, item := range fresh {
		key := c.key(item)
		seen[key] = struct{}{}
		if p, ok := c.pending[key]; ok {
			c.deferred[key] = deferredItem[T]{item: item, present: true}
			next = append(next, p.optimistic)
			continue
		}
		if stale(key) {
			if idx := c.indexOf(key); idx >= 0 {
				next = append(next, c.items[idx])
				continue
			}
		}
		next = append(next, item)
	}

	for _, item := range c.items {
		key := c.key(item)
		if _, ok := seen[key]; ok {
			continue
		}
		if _, ok := c.pending[key]; ok {
			c.deferred[key] = deferredItem[T]{present: false}
			next = append(next, item)
			continue
		}
		if stale(key) {
			next = append(next, item)
		}
	}

	c.items = next
	// Later refreshes carry a higher generation.
	clear(c.resolved)
}

func (c *Cache[T]) indexOf(key string) int {
	for i, item := range c.items {
		if c.key(item) == key {
			return i
		}
	}
	return -1
}
