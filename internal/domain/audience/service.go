package audience

import (
	"context"
	"fmt"
	"sort"
	"time"
)

type Resolver struct {
	directory Directory
	cache     Cache
	ttl       time.Duration
}

func NewResolver(directory Directory) *Resolver {
	return &Resolver{directory: directory, cache: noopCache{}}
}

// NewResolverWithCache keeps resolved recipient sets for ttl. A zero ttl
// disables caching.
func NewResolverWithCache(directory Directory, cache Cache, ttl time.Duration) *Resolver {
	if cache == nil || ttl <= 0 {
		return NewResolver(directory)
	}
	return &Resolver{directory: directory, cache: cache, ttl: ttl}
}

// Resolve returns the sorted, de-duplicated principal ids addressed by the
// directive. An empty result is not an error.
func (r *Resolver) Resolve(ctx context.Context, directive Directive) ([]string, error) {
	roles, err := directive.Roles()
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAudience, string(directive))
	}

	if cached, ok := r.cache.Get(directive); ok {
		return cached, nil
	}

	ids, err := r.directory.ListIDsByRoles(ctx, roles)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}

	result := dedupe(ids)
	r.cache.Set(directive, result, r.ttl)
	return result, nil
}

// Invalidate drops cached recipient sets, e.g. after a role change.
func (r *Resolver) Invalidate() {
	r.cache.Clear()
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	sort.Strings(result)
	return result
}
