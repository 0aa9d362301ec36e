package lookup

import (
	"testing"
	"time"

	"github.com/avolosh/weather-lookup/internal/provider"
)

func TestCacheKey(t *testing.T) {
	if cacheKey("  London ") != "london" {
		t.Errorf("cacheKey(\"  London \") = %q, want %q", cacheKey("  London "), "london")
	}
}

func TestReadingCache(t *testing.T) {
	cache := newReadingCache(time.Minute)

	if cache.get("london") != nil {
		t.Error("cache should be empty initially")
	}

	result := &Result{Reading: provider.Reading{City: "London"}}
	cache.set("london", result)

	cached := cache.get("london")
	if cached == nil {
		t.Fatal("expected to find cached result")
	}
	if cached.Reading.City != "London" {
		t.Errorf("cached city = %q, want London", cached.Reading.City)
	}
	if cache.size() != 1 {
		t.Errorf("cache size = %d, want 1", cache.size())
	}
}

func TestReadingCacheExpiration(t *testing.T) {
	cache := newReadingCache(time.Millisecond)

	cache.set("london", &Result{Reading: provider.Reading{City: "London"}})

	time.Sleep(10 * time.Millisecond)

	if cache.get("london") != nil {
		t.Error("cache entry should have expired")
	}
}

func TestReadingCacheDisabled(t *testing.T) {
	cache := newReadingCache(0)

	cache.set("london", &Result{Reading: provider.Reading{City: "London"}})

	if cache.get("london") != nil {
		t.Error("disabled cache should never return entries")
	}
	if cache.size() != 0 {
		t.Errorf("disabled cache size = %d, want 0", cache.size())
	}
}

func TestReadingCacheClear(t *testing.T) {
	cache := newReadingCache(time.Minute)

	cache.set("london", &Result{})
	cache.set("tokyo", &Result{})
	cache.clear()

	if cache.size() != 0 {
		t.Errorf("cache size after clear = %d, want 0", cache.size())
	}
}
