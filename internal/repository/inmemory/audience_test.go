package inmemory

import (
	"testing"
	"time"

	"campus-portal-go/internal/domain/audience"
)

func TestAudienceCacheExpires(t *testing.T) {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	cache := NewInMemoryAudienceCache()
	cache.now = func() time.Time { return now }

	cache.Set(audience.Students, []string{"stu-1", "stu-2"}, time.Minute)
	ids, ok := cache.Get(audience.Students)
	if !ok || len(ids) != 2 {
		t.Fatalf("expected cached ids, got %v %v", ids, ok)
	}

	ids[0] = "mutated"
	again, _ := cache.Get(audience.Students)
	if again[0] != "stu-1" {
		t.Fatalf("expected cache to hold its own copy, got %v", again)
	}

	now = now.Add(2 * time.Minute)
	if _, ok := cache.Get(audience.Students); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestAudienceCacheClear(t *testing.T) {
	cache := NewInMemoryAudienceCache()
	cache.Set(audience.All, []string{"stu-1"}, time.Hour)
	cache.Set(audience.Faculty, []string{"fac-1"}, 0)

	if _, ok := cache.Get(audience.Faculty); ok {
		t.Fatalf("expected zero ttl to skip caching")
	}

	cache.Clear()
	if _, ok := cache.Get(audience.All); ok {
		t.Fatalf("expected cache cleared")
	}
}
