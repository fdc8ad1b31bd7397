package text

import (
	"sync"
	"testing"
)

func TestCacheGetOrCreate(t *testing.T) {
	c := newCache[string, int](0)
	calls := 0
	create := func() int { calls++; return 42 }

	if got := c.getOrCreate("a", create); got != 42 {
		t.Errorf("getOrCreate() = %d, want 42", got)
	}
	if got := c.getOrCreate("a", create); got != 42 || calls != 1 {
		t.Errorf("second getOrCreate() = %d after %d calls, want cached", got, calls)
	}
	c.clear()
	if c.len() != 0 {
		t.Errorf("len() after clear = %d", c.len())
	}
}

func TestCacheEviction(t *testing.T) {
	c := newCache[int, int](10)
	for i := range 100 {
		c.getOrCreate(i, func() int { return i })
		if n := c.len(); n > 10 {
			t.Fatalf("len() = %d after %d inserts, want <= 10", n, i+1)
		}
	}
	// The most recent entry survives.
	hit := true
	c.getOrCreate(99, func() int { hit = false; return 0 })
	if !hit {
		t.Error("most recent entry was evicted")
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := newCache[int, int](64)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := (i * (g + 1)) % 128
				if got := c.getOrCreate(k, func() int { return k * 2 }); got != k*2 {
					t.Errorf("getOrCreate(%d) = %d", k, got)
				}
			}
		}()
	}
	wg.Wait()
}
